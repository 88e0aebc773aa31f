package memory

import (
	"sort"

	"graduation-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func detachStudent(s models.Student) models.Student {
	s.TeamID = copyUUID(s.TeamID)
	s.Team = nil
	return s
}

func studentBase(s models.Student) models.BaseModel { return s.BaseModel }

type studentRepository struct {
	h *handle
}

func (r *studentRepository) Create(student *models.Student) error {
	return r.h.write(func(st *state) error {
		for _, existing := range st.students {
			if existing.Email == student.Email {
				return gorm.ErrDuplicatedKey
			}
		}
		r.h.stamp(&student.BaseModel)
		st.students[student.ID] = detachStudent(*student)
		return nil
	})
}

func (r *studentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var out models.Student
	err := r.h.read(func(st *state) error {
		student, err := lookup(st.students, id)
		out = detachStudent(student)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *studentRepository) GetByIDForUpdate(id uuid.UUID) (*models.Student, error) {
	return r.GetByID(id)
}

func (r *studentRepository) GetByEmail(email string) (*models.Student, error) {
	var out *models.Student
	err := r.h.read(func(st *state) error {
		for _, student := range st.students {
			if student.Email == email {
				s := detachStudent(student)
				out = &s
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r *studentRepository) GetByTeamID(teamID uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	err := r.h.read(func(st *state) error {
		for _, s := range collect(st.students, studentBase, func(s models.Student) bool { return s.IsMemberOf(teamID) }) {
			students = append(students, detachStudent(s))
		}
		return nil
	})
	return students, err
}

func (r *studentRepository) CountByTeamID(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.h.read(func(st *state) error {
		for _, s := range st.students {
			if s.IsMemberOf(teamID) {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *studentRepository) Update(student *models.Student) error {
	return r.h.write(func(st *state) error {
		if _, err := lookup(st.students, student.ID); err != nil {
			return err
		}
		r.h.touch(&student.BaseModel)
		st.students[student.ID] = detachStudent(*student)
		return nil
	})
}

func (r *studentRepository) Delete(id uuid.UUID) error {
	return r.h.write(func(st *state) error {
		delete(st.students, id)
		return nil
	})
}

func detachSupervisor(s models.Supervisor) models.Supervisor {
	s.SupervisedTeams = nil
	return s
}

type supervisorRepository struct {
	h *handle
}

func (r *supervisorRepository) Create(supervisor *models.Supervisor) error {
	return r.h.write(func(st *state) error {
		for _, existing := range st.supervisors {
			if existing.Email == supervisor.Email {
				return gorm.ErrDuplicatedKey
			}
		}
		r.h.stamp(&supervisor.BaseModel)
		st.supervisors[supervisor.ID] = detachSupervisor(*supervisor)
		return nil
	})
}

func (r *supervisorRepository) GetByID(id uuid.UUID) (*models.Supervisor, error) {
	var out models.Supervisor
	err := r.h.read(func(st *state) error {
		supervisor, err := lookup(st.supervisors, id)
		out = detachSupervisor(supervisor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *supervisorRepository) GetByIDForUpdate(id uuid.UUID) (*models.Supervisor, error) {
	return r.GetByID(id)
}

func (r *supervisorRepository) GetByEmail(email string) (*models.Supervisor, error) {
	var out *models.Supervisor
	err := r.h.read(func(st *state) error {
		for _, supervisor := range st.supervisors {
			if supervisor.Email == email {
				s := detachSupervisor(supervisor)
				out = &s
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r *supervisorRepository) GetAll(limit, offset int) ([]models.Supervisor, int64, error) {
	var supervisors []models.Supervisor
	var total int64
	err := r.h.read(func(st *state) error {
		all := collect(st.supervisors, func(s models.Supervisor) models.BaseModel { return s.BaseModel }, nil)
		sortSupervisorsByName(all)
		total = int64(len(all))
		for _, s := range paginate(all, limit, offset) {
			supervisors = append(supervisors, detachSupervisor(s))
		}
		return nil
	})
	return supervisors, total, err
}

func (r *supervisorRepository) Update(supervisor *models.Supervisor) error {
	return r.h.write(func(st *state) error {
		if _, err := lookup(st.supervisors, supervisor.ID); err != nil {
			return err
		}
		r.h.touch(&supervisor.BaseModel)
		st.supervisors[supervisor.ID] = detachSupervisor(*supervisor)
		return nil
	})
}

func (r *supervisorRepository) Delete(id uuid.UUID) error {
	return r.h.write(func(st *state) error {
		delete(st.supervisors, id)
		return nil
	})
}

func sortSupervisorsByName(supervisors []models.Supervisor) {
	sort.SliceStable(supervisors, func(i, j int) bool {
		if supervisors[i].LastName != supervisors[j].LastName {
			return supervisors[i].LastName < supervisors[j].LastName
		}
		return supervisors[i].FirstName < supervisors[j].FirstName
	})
}
