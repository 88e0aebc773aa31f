package memory

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func detachIdea(i models.ProjectIdea) models.ProjectIdea {
	i.SupervisorID = copyUUID(i.SupervisorID)
	i.CompletedAt = copyTime(i.CompletedAt)
	i.TechStack = copyStrings(i.TechStack)
	i.Team = models.Team{}
	i.Supervisor = nil
	i.Requests = nil
	return i
}

func ideaBase(i models.ProjectIdea) models.BaseModel { return i.BaseModel }

type projectIdeaRepository struct {
	h *handle
}

func (r *projectIdeaRepository) Create(idea *models.ProjectIdea) error {
	return r.h.write(func(st *state) error {
		r.h.stamp(&idea.BaseModel)
		st.ideas[idea.ID] = detachIdea(*idea)
		return nil
	})
}

func (r *projectIdeaRepository) GetByID(id uuid.UUID) (*models.ProjectIdea, error) {
	var out models.ProjectIdea
	err := r.h.read(func(st *state) error {
		idea, err := lookup(st.ideas, id)
		out = detachIdea(idea)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *projectIdeaRepository) GetByIDForUpdate(id uuid.UUID) (*models.ProjectIdea, error) {
	return r.GetByID(id)
}

func (r *projectIdeaRepository) GetByTeamID(teamID uuid.UUID) ([]models.ProjectIdea, error) {
	return r.filter(func(i models.ProjectIdea) bool { return i.TeamID == teamID })
}

func (r *projectIdeaRepository) GetAcceptedByTeamID(teamID uuid.UUID) (*models.ProjectIdea, error) {
	ideas, err := r.filter(func(i models.ProjectIdea) bool {
		return i.TeamID == teamID && i.Status == models.ApprovalStatusAccepted
	})
	if err != nil {
		return nil, err
	}
	if len(ideas) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &ideas[0], nil
}

func (r *projectIdeaRepository) GetBySupervisorID(supervisorID uuid.UUID) ([]models.ProjectIdea, error) {
	return r.filter(func(i models.ProjectIdea) bool {
		return i.SupervisorID != nil && *i.SupervisorID == supervisorID
	})
}

func (r *projectIdeaRepository) filter(keep func(models.ProjectIdea) bool) ([]models.ProjectIdea, error) {
	var ideas []models.ProjectIdea
	err := r.h.read(func(st *state) error {
		for _, i := range collect(st.ideas, ideaBase, keep) {
			ideas = append(ideas, detachIdea(i))
		}
		return nil
	})
	return ideas, err
}

func (r *projectIdeaRepository) Update(idea *models.ProjectIdea) error {
	return r.h.write(func(st *state) error {
		if _, err := lookup(st.ideas, idea.ID); err != nil {
			return err
		}
		r.h.touch(&idea.BaseModel)
		st.ideas[idea.ID] = detachIdea(*idea)
		return nil
	})
}

func (r *projectIdeaRepository) Delete(id uuid.UUID) error {
	return r.h.write(func(st *state) error {
		delete(st.ideas, id)
		return nil
	})
}
