package handlers

import (
	"net/http"

	"graduation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectIdeaHandler handles HTTP requests for the project idea workflow
type ProjectIdeaHandler struct {
	ideaService service.ProjectIdeaServiceInterface
}

// NewProjectIdeaHandler creates a new project idea handler
func NewProjectIdeaHandler(ideaService service.ProjectIdeaServiceInterface) *ProjectIdeaHandler {
	return &ProjectIdeaHandler{
		ideaService: ideaService,
	}
}

// PublishIdea handles POST /ideas
// @Summary Publish a project idea
// @Description Publish a pending project idea for the calling student's team
// @Tags ideas
// @Accept json
// @Produce json
// @Param idea body service.PublishIdeaRequest true "Project idea"
// @Success 201 {object} service.ProjectIdeaResponse "Idea published"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Student has no team"
// @Failure 409 {object} ErrorResponse "Team already has an accepted idea"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ideas [post]
func (h *ProjectIdeaHandler) PublishIdea(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.PublishIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	idea, err := h.ideaService.PublishIdea(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, idea)
}

// ListTeamIdeas handles GET /ideas
// @Summary List the calling student's team ideas
// @Tags ideas
// @Produce json
// @Success 200 {array} service.ProjectIdeaResponse "Team ideas"
// @Failure 403 {object} ErrorResponse "Student has no team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ideas [get]
func (h *ProjectIdeaHandler) ListTeamIdeas(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	ideas, err := h.ideaService.ListTeamIdeas(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// GetIdea handles GET /ideas/:id
// @Summary Get project idea by ID
// @Description Visible to the owning team, its supervisor and supervisors asked to supervise it
// @Tags ideas
// @Produce json
// @Param id path string true "Project idea ID (UUID)"
// @Success 200 {object} service.ProjectIdeaResponse "Project idea"
// @Failure 400 {object} ErrorResponse "Invalid idea ID"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the owning team"
// @Failure 404 {object} ErrorResponse "Project idea not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ideas/{id} [get]
func (h *ProjectIdeaHandler) GetIdea(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "project idea")
	if !ok {
		return
	}

	idea, err := h.ideaService.GetIdea(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// UpdateIdea handles PUT /ideas/:id
// @Summary Edit a project idea
// @Description Editing withdraws the idea's pending supervision requests
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Project idea ID (UUID)"
// @Param idea body service.UpdateIdeaRequest true "Idea changes"
// @Success 200 {object} service.ProjectIdeaResponse "Idea updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the owning team"
// @Failure 404 {object} ErrorResponse "Project idea not found"
// @Failure 409 {object} ErrorResponse "Idea already accepted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ideas/{id} [put]
func (h *ProjectIdeaHandler) UpdateIdea(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "project idea")
	if !ok {
		return
	}

	var req service.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	idea, err := h.ideaService.UpdateIdea(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// DeleteIdea handles DELETE /ideas/:id
// @Summary Delete a project idea
// @Tags ideas
// @Param id path string true "Project idea ID (UUID)"
// @Success 204 "Idea deleted"
// @Failure 400 {object} ErrorResponse "Invalid idea ID"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the owning team"
// @Failure 404 {object} ErrorResponse "Project idea not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ideas/{id} [delete]
func (h *ProjectIdeaHandler) DeleteIdea(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "project idea")
	if !ok {
		return
	}

	if err := h.ideaService.DeleteIdea(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestSupervisor handles POST /ideas/:id/requests
// @Summary Ask a supervisor to supervise an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Project idea ID (UUID)"
// @Param request body service.RequestSupervisorRequest true "Supervisor to ask"
// @Success 201 {object} service.ProjectIdeaRequestResponse "Supervision request created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the owning team"
// @Failure 404 {object} ErrorResponse "Project idea or supervisor not found"
// @Failure 409 {object} ErrorResponse "Idea not pending, or a request is already pending"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ideas/{id}/requests [post]
func (h *ProjectIdeaHandler) RequestSupervisor(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "project idea")
	if !ok {
		return
	}

	var req service.RequestSupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.ideaService.RequestSupervisor(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListIdeaRequests handles GET /ideas/:id/requests
// @Summary List supervision requests sent for an idea
// @Tags ideas
// @Produce json
// @Param id path string true "Project idea ID (UUID)"
// @Success 200 {array} service.ProjectIdeaRequestResponse "Supervision requests"
// @Failure 400 {object} ErrorResponse "Invalid idea ID"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the owning team"
// @Failure 404 {object} ErrorResponse "Project idea not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ideas/{id}/requests [get]
func (h *ProjectIdeaHandler) ListIdeaRequests(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "project idea")
	if !ok {
		return
	}

	requests, err := h.ideaService.ListIdeaRequests(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// MarkProjectCompleted handles POST /ideas/:id/complete
// @Summary Mark a supervised project as completed
// @Description Requires every task of the team to be completed
// @Tags ideas
// @Produce json
// @Param id path string true "Project idea ID (UUID)"
// @Success 200 {object} service.ProjectIdeaResponse "Project completed"
// @Failure 400 {object} ErrorResponse "Invalid idea ID"
// @Failure 403 {object} ErrorResponse "Caller does not supervise the team"
// @Failure 404 {object} ErrorResponse "Project idea not found"
// @Failure 409 {object} ErrorResponse "Idea not accepted, already completed or tasks still open"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /ideas/{id}/complete [post]
func (h *ProjectIdeaHandler) MarkProjectCompleted(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "project idea")
	if !ok {
		return
	}

	idea, err := h.ideaService.MarkProjectCompleted(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// ListSupervisionRequests handles GET /supervision-requests
// @Summary List supervision requests addressed to the calling supervisor
// @Tags supervisors
// @Produce json
// @Param status query string false "Filter by status (pending, accepted, rejected)"
// @Success 200 {array} service.ProjectIdeaRequestResponse "Supervision requests"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Caller is not a supervisor"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /supervision-requests [get]
func (h *ProjectIdeaHandler) ListSupervisionRequests(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	status, ok := approvalStatusQuery(c)
	if !ok {
		return
	}

	requests, err := h.ideaService.ListSupervisionRequests(c.Request.Context(), caller, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// HandleIdeaRequest handles POST /supervision-requests/:id/respond
// @Summary Approve or reject a supervision request
// @Description Approving accepts the idea, assigns the supervisor and discards the team's other ideas
// @Tags supervisors
// @Accept json
// @Produce json
// @Param id path string true "Project idea request ID (UUID)"
// @Param decision body service.HandleIdeaRequestRequest true "Decision"
// @Success 200 {object} service.ProjectIdeaRequestResponse "Request resolved"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a supervisor"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request resolved, team supervised or supervisor at capacity"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /supervision-requests/{id}/respond [post]
func (h *ProjectIdeaHandler) HandleIdeaRequest(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "project idea request")
	if !ok {
		return
	}

	var req service.HandleIdeaRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.ideaService.HandleIdeaRequest(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListSupervisors handles GET /supervisors
// @Summary List supervisors with their free capacity
// @Tags supervisors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SupervisorListResponse "Supervisors"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /supervisors [get]
func (h *ProjectIdeaHandler) ListSupervisors(c *gin.Context) {
	page, pageSize := pagination(c)

	supervisors, err := h.ideaService.ListSupervisors(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, supervisors)
}
