package memory

import (
	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func detachJoinRequest(r models.TeamJoinRequest) models.TeamJoinRequest {
	r.RespondedByID = copyUUID(r.RespondedByID)
	r.RespondedAt = copyTime(r.RespondedAt)
	r.Team = models.Team{}
	r.Student = models.Student{}
	return r
}

func joinRequestBase(r models.TeamJoinRequest) models.BaseModel { return r.BaseModel }

type joinRequestRepository struct {
	h *handle
}

func (r *joinRequestRepository) Create(request *models.TeamJoinRequest) error {
	return r.h.write(func(st *state) error {
		r.h.stamp(&request.BaseModel)
		st.joinRequests[request.ID] = detachJoinRequest(*request)
		return nil
	})
}

func (r *joinRequestRepository) GetByID(id uuid.UUID) (*models.TeamJoinRequest, error) {
	var out models.TeamJoinRequest
	err := r.h.read(func(st *state) error {
		request, err := lookup(st.joinRequests, id)
		out = detachJoinRequest(request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *joinRequestRepository) GetByIDForUpdate(id uuid.UUID) (*models.TeamJoinRequest, error) {
	return r.GetByID(id)
}

func (r *joinRequestRepository) GetPending(teamID, studentID uuid.UUID) (*models.TeamJoinRequest, error) {
	var out *models.TeamJoinRequest
	err := r.h.read(func(st *state) error {
		matches := collect(st.joinRequests, joinRequestBase, func(jr models.TeamJoinRequest) bool {
			return jr.TeamID == teamID && jr.StudentID == studentID && jr.Status == models.ApprovalStatusPending
		})
		if len(matches) == 0 {
			return gorm.ErrRecordNotFound
		}
		jr := detachJoinRequest(matches[0])
		out = &jr
		return nil
	})
	return out, err
}

func (r *joinRequestRepository) GetByTeamID(teamID uuid.UUID, status *models.ApprovalStatus) ([]models.TeamJoinRequest, error) {
	return r.filter(func(jr models.TeamJoinRequest) bool {
		return jr.TeamID == teamID && (status == nil || jr.Status == *status)
	})
}

func (r *joinRequestRepository) GetByStudentID(studentID uuid.UUID, status *models.ApprovalStatus) ([]models.TeamJoinRequest, error) {
	return r.filter(func(jr models.TeamJoinRequest) bool {
		return jr.StudentID == studentID && (status == nil || jr.Status == *status)
	})
}

func (r *joinRequestRepository) filter(keep func(models.TeamJoinRequest) bool) ([]models.TeamJoinRequest, error) {
	var requests []models.TeamJoinRequest
	err := r.h.read(func(st *state) error {
		for _, jr := range collect(st.joinRequests, joinRequestBase, keep) {
			requests = append(requests, detachJoinRequest(jr))
		}
		return nil
	})
	return requests, err
}

func (r *joinRequestRepository) Update(request *models.TeamJoinRequest) error {
	return r.h.write(func(st *state) error {
		if _, err := lookup(st.joinRequests, request.ID); err != nil {
			return err
		}
		r.h.touch(&request.BaseModel)
		st.joinRequests[request.ID] = detachJoinRequest(*request)
		return nil
	})
}

func (r *joinRequestRepository) DeleteByTeamID(teamID uuid.UUID) error {
	return r.h.write(func(st *state) error {
		for id, jr := range st.joinRequests {
			if jr.TeamID == teamID {
				delete(st.joinRequests, id)
			}
		}
		return nil
	})
}

func (r *joinRequestRepository) DeleteByStudentID(studentID uuid.UUID) error {
	return r.h.write(func(st *state) error {
		for id, jr := range st.joinRequests {
			if jr.StudentID == studentID {
				delete(st.joinRequests, id)
			}
		}
		return nil
	})
}

func detachIdeaRequest(r models.ProjectIdeaRequest) models.ProjectIdeaRequest {
	r.RespondedAt = copyTime(r.RespondedAt)
	r.ProjectIdea = models.ProjectIdea{}
	r.Supervisor = models.Supervisor{}
	return r
}

func ideaRequestBase(r models.ProjectIdeaRequest) models.BaseModel { return r.BaseModel }

type projectIdeaRequestRepository struct {
	h *handle
}

func (r *projectIdeaRequestRepository) Create(request *models.ProjectIdeaRequest) error {
	return r.h.write(func(st *state) error {
		r.h.stamp(&request.BaseModel)
		st.ideaRequests[request.ID] = detachIdeaRequest(*request)
		return nil
	})
}

func (r *projectIdeaRequestRepository) GetByID(id uuid.UUID) (*models.ProjectIdeaRequest, error) {
	var out models.ProjectIdeaRequest
	err := r.h.read(func(st *state) error {
		request, err := lookup(st.ideaRequests, id)
		out = detachIdeaRequest(request)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *projectIdeaRequestRepository) GetByIDForUpdate(id uuid.UUID) (*models.ProjectIdeaRequest, error) {
	return r.GetByID(id)
}

func (r *projectIdeaRequestRepository) GetPending(ideaID, supervisorID uuid.UUID) (*models.ProjectIdeaRequest, error) {
	var out *models.ProjectIdeaRequest
	err := r.h.read(func(st *state) error {
		matches := collect(st.ideaRequests, ideaRequestBase, func(ir models.ProjectIdeaRequest) bool {
			return ir.ProjectIdeaID == ideaID && ir.SupervisorID == supervisorID && ir.Status == models.ApprovalStatusPending
		})
		if len(matches) == 0 {
			return gorm.ErrRecordNotFound
		}
		ir := detachIdeaRequest(matches[0])
		out = &ir
		return nil
	})
	return out, err
}

func (r *projectIdeaRequestRepository) GetByIdeaID(ideaID uuid.UUID) ([]models.ProjectIdeaRequest, error) {
	return r.filter(func(ir models.ProjectIdeaRequest) bool { return ir.ProjectIdeaID == ideaID })
}

func (r *projectIdeaRequestRepository) GetBySupervisorID(supervisorID uuid.UUID, status *models.ApprovalStatus) ([]models.ProjectIdeaRequest, error) {
	return r.filter(func(ir models.ProjectIdeaRequest) bool {
		return ir.SupervisorID == supervisorID && (status == nil || ir.Status == *status)
	})
}

func (r *projectIdeaRequestRepository) filter(keep func(models.ProjectIdeaRequest) bool) ([]models.ProjectIdeaRequest, error) {
	var requests []models.ProjectIdeaRequest
	err := r.h.read(func(st *state) error {
		for _, ir := range collect(st.ideaRequests, ideaRequestBase, keep) {
			requests = append(requests, detachIdeaRequest(ir))
		}
		return nil
	})
	return requests, err
}

func (r *projectIdeaRequestRepository) Update(request *models.ProjectIdeaRequest) error {
	return r.h.write(func(st *state) error {
		if _, err := lookup(st.ideaRequests, request.ID); err != nil {
			return err
		}
		r.h.touch(&request.BaseModel)
		st.ideaRequests[request.ID] = detachIdeaRequest(*request)
		return nil
	})
}

func (r *projectIdeaRequestRepository) Delete(id uuid.UUID) error {
	return r.h.write(func(st *state) error {
		delete(st.ideaRequests, id)
		return nil
	})
}

func (r *projectIdeaRequestRepository) DeleteByIdeaID(ideaID uuid.UUID) error {
	return r.h.write(func(st *state) error {
		for id, ir := range st.ideaRequests {
			if ir.ProjectIdeaID == ideaID {
				delete(st.ideaRequests, id)
			}
		}
		return nil
	})
}

func (r *projectIdeaRequestRepository) DeleteBySupervisorID(supervisorID uuid.UUID) error {
	return r.h.write(func(st *state) error {
		for id, ir := range st.ideaRequests {
			if ir.SupervisorID == supervisorID {
				delete(st.ideaRequests, id)
			}
		}
		return nil
	})
}
