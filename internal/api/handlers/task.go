package handlers

import (
	"net/http"

	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /tasks
// @Summary Create a task
// @Description Create a backlog task for a team the calling supervisor supervises
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Task created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller does not supervise the team"
// @Failure 404 {object} ErrorResponse "Team or assignee not found"
// @Failure 409 {object} ErrorResponse "Team has no accepted idea"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /tasks
// @Summary List tasks visible to the caller
// @Description Students see their team's tasks; supervisors see the tasks they created
// @Tags tasks
// @Produce json
// @Param team_id query string false "Team ID (UUID)"
// @Param assignee_id query string false "Assignee ID (UUID)"
// @Param status query string false "Task status"
// @Success 200 {array} service.TaskResponse "Tasks"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var filter service.TaskListFilter
	if filter.TeamID, ok = optionalUUIDQuery(c, "team_id", "team"); !ok {
		return
	}
	if filter.AssigneeID, ok = optionalUUIDQuery(c, "assignee_id", "assignee"); !ok {
		return
	}
	if raw := c.Query("status"); raw != "" {
		status := models.TaskStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
			return
		}
		filter.Status = &status
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), caller, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /tasks/:id
// @Summary Get task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ChangeStatus handles PATCH /tasks/:id/status
// @Summary Move a task between backlog, in progress and done
// @Description Only the assignee may move a task. Review states are set by the supervisor.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param status body service.ChangeTaskStatusRequest true "Target status"
// @Success 200 {object} service.TaskResponse "Task updated"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Caller is not the assignee"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	var req service.ChangeTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.ChangeStatus(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// SubmitTask handles POST /tasks/:id/submission
// @Summary Submit a task deliverable
// @Description Submitting moves the task to done and awaits supervisor review
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param submission body service.SubmitTaskRequest true "Deliverable"
// @Success 200 {object} service.TaskResponse "Task submitted"
// @Failure 400 {object} ErrorResponse "Invalid submission"
// @Failure 403 {object} ErrorResponse "Caller is not the assignee"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 409 {object} ErrorResponse "Task cannot be submitted in its current status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/submission [post]
func (h *TaskHandler) SubmitTask(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	var req service.SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.SubmitTask(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ReviewTask handles POST /tasks/:id/review
// @Summary Approve or send back a done task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param review body service.ReviewTaskRequest true "Review verdict"
// @Success 200 {object} service.TaskResponse "Task reviewed"
// @Failure 400 {object} ErrorResponse "Missing rejection reason"
// @Failure 403 {object} ErrorResponse "Caller does not supervise the task"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 409 {object} ErrorResponse "Task is not awaiting review"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/review [post]
func (h *TaskHandler) ReviewTask(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	var req service.ReviewTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.ReviewTask(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ReassignTask handles PUT /tasks/:id/assignee
// @Summary Reassign a task to another team member
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param assignee body service.ReassignTaskRequest true "New assignee"
// @Success 200 {object} service.TaskResponse "Task reassigned"
// @Failure 400 {object} ErrorResponse "Assignee is not a team member"
// @Failure 403 {object} ErrorResponse "Caller does not supervise the task"
// @Failure 404 {object} ErrorResponse "Task or assignee not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/assignee [put]
func (h *TaskHandler) ReassignTask(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	var req service.ReassignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.ReassignTask(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Task deleted"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 403 {object} ErrorResponse "Caller does not supervise the task"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
