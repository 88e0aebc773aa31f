package memory

import (
	"sort"

	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func detachTask(t models.Task) models.Task {
	t.AssigneeID = copyUUID(t.AssigneeID)
	t.CompletedAt = copyTime(t.CompletedAt)
	t.Team = models.Team{}
	t.Supervisor = models.Supervisor{}
	t.Assignee = nil
	t.Submission = nil
	return t
}

func taskBase(t models.Task) models.BaseModel { return t.BaseModel }

type taskRepository struct {
	h *handle
}

func (r *taskRepository) Create(task *models.Task) error {
	return r.h.write(func(st *state) error {
		r.h.stamp(&task.BaseModel)
		st.tasks[task.ID] = detachTask(*task)
		return nil
	})
}

// GetByID returns the task with its submission attached
func (r *taskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var out models.Task
	err := r.h.read(func(st *state) error {
		task, err := lookup(st.tasks, id)
		if err != nil {
			return err
		}
		out = detachTask(task)
		if sub, ok := findSubmission(st, id); ok {
			out.Submission = &sub
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *taskRepository) GetByIDForUpdate(id uuid.UUID) (*models.Task, error) {
	var out models.Task
	err := r.h.read(func(st *state) error {
		task, err := lookup(st.tasks, id)
		out = detachTask(task)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *taskRepository) List(filter repository.TaskFilter) ([]models.Task, error) {
	var teams map[uuid.UUID]bool
	if filter.TeamIDs != nil {
		teams = make(map[uuid.UUID]bool, len(filter.TeamIDs))
		for _, id := range filter.TeamIDs {
			teams[id] = true
		}
	}

	tasks := []models.Task{}
	err := r.h.read(func(st *state) error {
		matches := collect(st.tasks, taskBase, func(t models.Task) bool {
			if teams != nil && !teams[t.TeamID] {
				return false
			}
			if filter.AssigneeID != nil && !t.IsAssignedTo(*filter.AssigneeID) {
				return false
			}
			if filter.SupervisorID != nil && t.SupervisorID != *filter.SupervisorID {
				return false
			}
			return filter.Status == nil || t.Status == *filter.Status
		})
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Deadline.Before(matches[j].Deadline)
		})
		for _, t := range matches {
			tasks = append(tasks, detachTask(t))
		}
		return nil
	})
	return tasks, err
}

func (r *taskRepository) Update(task *models.Task) error {
	return r.h.write(func(st *state) error {
		if _, err := lookup(st.tasks, task.ID); err != nil {
			return err
		}
		r.h.touch(&task.BaseModel)
		st.tasks[task.ID] = detachTask(*task)
		return nil
	})
}

func (r *taskRepository) Delete(id uuid.UUID) error {
	return r.h.write(func(st *state) error {
		delete(st.tasks, id)
		return nil
	})
}

func findSubmission(st *state, taskID uuid.UUID) (models.TaskSubmission, bool) {
	for _, sub := range st.submissions {
		if sub.TaskID == taskID {
			return sub, true
		}
	}
	return models.TaskSubmission{}, false
}

type taskSubmissionRepository struct {
	h *handle
}

func (r *taskSubmissionRepository) GetByTaskID(taskID uuid.UUID) (*models.TaskSubmission, error) {
	var out models.TaskSubmission
	err := r.h.read(func(st *state) error {
		sub, ok := findSubmission(st, taskID)
		if !ok {
			return gorm.ErrRecordNotFound
		}
		out = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Upsert keeps one submission per task, overwriting content fields of the existing row
func (r *taskSubmissionRepository) Upsert(submission *models.TaskSubmission) error {
	return r.h.write(func(st *state) error {
		if existing, ok := findSubmission(st, submission.TaskID); ok {
			submission.BaseModel = existing.BaseModel
			r.h.touch(&submission.BaseModel)
		} else {
			r.h.stamp(&submission.BaseModel)
		}
		st.submissions[submission.ID] = *submission
		return nil
	})
}

func (r *taskSubmissionRepository) DeleteByTaskID(taskID uuid.UUID) error {
	return r.h.write(func(st *state) error {
		for id, sub := range st.submissions {
			if sub.TaskID == taskID {
				delete(st.submissions, id)
			}
		}
		return nil
	})
}
