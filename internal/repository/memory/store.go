// Package memory is an in-process implementation of repository.Store used for
// local development and as the backing store of service and handler tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type state struct {
	teams         map[uuid.UUID]models.Team
	students      map[uuid.UUID]models.Student
	supervisors   map[uuid.UUID]models.Supervisor
	joinRequests  map[uuid.UUID]models.TeamJoinRequest
	ideas         map[uuid.UUID]models.ProjectIdea
	ideaRequests  map[uuid.UUID]models.ProjectIdeaRequest
	tasks         map[uuid.UUID]models.Task
	submissions   map[uuid.UUID]models.TaskSubmission
	notifications map[uuid.UUID]models.Notification
}

func newState() *state {
	return &state{
		teams:         map[uuid.UUID]models.Team{},
		students:      map[uuid.UUID]models.Student{},
		supervisors:   map[uuid.UUID]models.Supervisor{},
		joinRequests:  map[uuid.UUID]models.TeamJoinRequest{},
		ideas:         map[uuid.UUID]models.ProjectIdea{},
		ideaRequests:  map[uuid.UUID]models.ProjectIdeaRequest{},
		tasks:         map[uuid.UUID]models.Task{},
		submissions:   map[uuid.UUID]models.TaskSubmission{},
		notifications: map[uuid.UUID]models.Notification{},
	}
}

// clone copies the maps; stored values are never mutated in place so they can be shared
func (s *state) clone() *state {
	return &state{
		teams:         cloneMap(s.teams),
		students:      cloneMap(s.students),
		supervisors:   cloneMap(s.supervisors),
		joinRequests:  cloneMap(s.joinRequests),
		ideas:         cloneMap(s.ideas),
		ideaRequests:  cloneMap(s.ideaRequests),
		tasks:         cloneMap(s.tasks),
		submissions:   cloneMap(s.submissions),
		notifications: cloneMap(s.notifications),
	}
}

func cloneMap[V any](m map[uuid.UUID]V) map[uuid.UUID]V {
	out := make(map[uuid.UUID]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var _ repository.Store = (*Store)(nil)

// Store keeps every entity in memory. Transactions run against a private copy of
// the state that replaces the committed state only when fn succeeds; a single
// writer lock serializes them.
type Store struct {
	mu    sync.RWMutex
	state *state
	now   func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{state: newState(), now: time.Now}
}

// WithTransaction runs fn against a snapshot and commits it when fn returns nil
func (s *Store) WithTransaction(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(newRepositories(&handle{state: func() *state { return working }, now: s.now})); err != nil {
		return err
	}
	s.state = working
	return nil
}

// Repositories returns repositories operating directly on the committed state
func (s *Store) Repositories(ctx context.Context) *repository.Repositories {
	return newRepositories(&handle{mu: &s.mu, state: func() *state { return s.state }, now: s.now})
}

// Ping reports only context cancellation
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// handle gives repositories access to one state; mu is nil inside a transaction
// because the transaction already holds the store lock.
type handle struct {
	mu    *sync.RWMutex
	state func() *state
	now   func() time.Time
}

func (h *handle) read(fn func(st *state) error) error {
	if h.mu != nil {
		h.mu.RLock()
		defer h.mu.RUnlock()
	}
	return fn(h.state())
}

func (h *handle) write(fn func(st *state) error) error {
	if h.mu != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
	}
	return fn(h.state())
}

// stamp fills the identity and timestamps the way the gorm hooks do
func (h *handle) stamp(base *models.BaseModel) {
	now := h.now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

func (h *handle) touch(base *models.BaseModel) {
	base.UpdatedAt = h.now()
}

func newRepositories(h *handle) *repository.Repositories {
	return &repository.Repositories{
		Teams:         &teamRepository{h: h},
		Students:      &studentRepository{h: h},
		Supervisors:   &supervisorRepository{h: h},
		JoinRequests:  &joinRequestRepository{h: h},
		Ideas:         &projectIdeaRepository{h: h},
		IdeaRequests:  &projectIdeaRequestRepository{h: h},
		Tasks:         &taskRepository{h: h},
		Submissions:   &taskSubmissionRepository{h: h},
		Notifications: &notificationRepository{h: h},
	}
}

// collect returns the values matching keep in creation order
func collect[V any](m map[uuid.UUID]V, base func(V) models.BaseModel, keep func(V) bool) []V {
	out := make([]V, 0)
	for _, v := range m {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := base(out[i]), base(out[j])
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return strings.Compare(a.ID.String(), b.ID.String()) < 0
	})
	return out
}

// paginate mirrors LIMIT/OFFSET; a non-positive limit returns everything after offset
func paginate[V any](items []V, limit, offset int) []V {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []V{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func lookup[V any](m map[uuid.UUID]V, id uuid.UUID) (V, error) {
	v, ok := m[id]
	if !ok {
		var zero V
		return zero, gorm.ErrRecordNotFound
	}
	return v, nil
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyStrings[S ~[]string](in S) S {
	if in == nil {
		return nil
	}
	out := make(S, len(in))
	copy(out, in)
	return out
}
