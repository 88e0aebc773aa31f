package memory

import (
	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func detachTeam(t models.Team) models.Team {
	t.SupervisorID = copyUUID(t.SupervisorID)
	t.TechStack = copyStrings(t.TechStack)
	t.Supervisor = nil
	t.Members = nil
	t.ProjectIdeas = nil
	t.Tasks = nil
	t.JoinRequests = nil
	return t
}

func teamBase(t models.Team) models.BaseModel { return t.BaseModel }

type teamRepository struct {
	h *handle
}

func (r *teamRepository) Create(team *models.Team) error {
	return r.h.write(func(st *state) error {
		for _, existing := range st.teams {
			if existing.Name == team.Name {
				return gorm.ErrDuplicatedKey
			}
		}
		r.h.stamp(&team.BaseModel)
		st.teams[team.ID] = detachTeam(*team)
		return nil
	})
}

func (r *teamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var out models.Team
	err := r.h.read(func(st *state) error {
		team, err := lookup(st.teams, id)
		out = detachTeam(team)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *teamRepository) GetByIDForUpdate(id uuid.UUID) (*models.Team, error) {
	return r.GetByID(id)
}

func (r *teamRepository) GetByName(name string) (*models.Team, error) {
	var out *models.Team
	err := r.h.read(func(st *state) error {
		for _, team := range st.teams {
			if team.Name == name {
				t := detachTeam(team)
				out = &t
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r *teamRepository) List(filter repository.TeamFilter, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64
	err := r.h.read(func(st *state) error {
		all := collect(st.teams, teamBase, func(t models.Team) bool {
			if filter.OpenOnly && !t.IsOpenToJoin {
				return false
			}
			return filter.Department == "" || t.Department == filter.Department
		})
		total = int64(len(all))
		for _, t := range paginate(all, limit, offset) {
			teams = append(teams, detachTeam(t))
		}
		return nil
	})
	return teams, total, err
}

func (r *teamRepository) GetBySupervisorID(supervisorID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.h.read(func(st *state) error {
		for _, t := range collect(st.teams, teamBase, func(t models.Team) bool { return t.IsSupervisedBy(supervisorID) }) {
			teams = append(teams, detachTeam(t))
		}
		return nil
	})
	return teams, err
}

func (r *teamRepository) CountBySupervisorID(supervisorID uuid.UUID) (int64, error) {
	var count int64
	err := r.h.read(func(st *state) error {
		for _, t := range st.teams {
			if t.IsSupervisedBy(supervisorID) {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *teamRepository) Update(team *models.Team) error {
	return r.h.write(func(st *state) error {
		if _, err := lookup(st.teams, team.ID); err != nil {
			return err
		}
		for id, existing := range st.teams {
			if id != team.ID && existing.Name == team.Name {
				return gorm.ErrDuplicatedKey
			}
		}
		r.h.touch(&team.BaseModel)
		st.teams[team.ID] = detachTeam(*team)
		return nil
	})
}

func (r *teamRepository) Delete(id uuid.UUID) error {
	return r.h.write(func(st *state) error {
		delete(st.teams, id)
		return nil
	})
}
