package handlers

import (
	"net/http"
	"strconv"

	"graduation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team membership operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team with the calling student as its first member
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a student"
// @Failure 409 {object} ErrorResponse "Student already in a team or name taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team with its members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List teams, optionally only those open to join requests or in one department
// @Tags teams
// @Produce json
// @Param open query bool false "Only teams open to join requests"
// @Param department query string false "Department filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	openOnly, _ := strconv.ParseBool(c.Query("open"))
	filter := service.TeamListFilter{
		OpenOnly:   openOnly,
		Department: c.Query("department"),
	}
	page, pageSize := pagination(c)

	teams, err := h.teamService.ListTeams(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update team
// @Description Update a team's details or open/close it to join requests. Members only.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Team changes"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team is full or name taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete team
// @Description Delete a team with its ideas, tasks and join requests. Members are released.
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestToJoin handles POST /teams/:id/join-requests
// @Summary Request to join a team
// @Description Send a join request to an open team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.JoinTeamRequest false "Join request message"
// @Success 201 {object} service.JoinRequestResponse "Join request created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team closed or full, or a request is already pending"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/join-requests [post]
func (h *TeamHandler) RequestToJoin(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.JoinTeamRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	request, err := h.teamService.RequestToJoin(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListJoinRequests handles GET /teams/:id/join-requests
// @Summary List a team's join requests
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param status query string false "Filter by status (pending, accepted, rejected)"
// @Success 200 {array} service.JoinRequestResponse "Join requests"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/join-requests [get]
func (h *TeamHandler) ListJoinRequests(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	status, ok := approvalStatusQuery(c)
	if !ok {
		return
	}

	requests, err := h.teamService.ListJoinRequests(c.Request.Context(), caller, id, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// RespondToJoinRequest handles POST /join-requests/:id/respond
// @Summary Accept or reject a join request
// @Description Any member of the team may decide. Accepting closes the team once it is full.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Join request ID (UUID)"
// @Param decision body service.RespondJoinRequest true "Decision"
// @Success 200 {object} service.JoinRequestResponse "Join request resolved"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Join request not found"
// @Failure 409 {object} ErrorResponse "Request already resolved or team full"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /join-requests/{id}/respond [post]
func (h *TeamHandler) RespondToJoinRequest(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "join request")
	if !ok {
		return
	}

	var req service.RespondJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	request, err := h.teamService.RespondToJoinRequest(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListMyJoinRequests handles GET /students/me/join-requests
// @Summary List the calling student's join requests
// @Tags students
// @Produce json
// @Success 200 {array} service.JoinRequestResponse "Join requests"
// @Failure 403 {object} ErrorResponse "Caller is not a student"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /students/me/join-requests [get]
func (h *TeamHandler) ListMyJoinRequests(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	requests, err := h.teamService.ListMyJoinRequests(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// LeaveTeam handles POST /students/me/leave-team
// @Summary Leave the current team
// @Description The last member leaving deletes the team
// @Tags students
// @Success 204 "Left the team"
// @Failure 403 {object} ErrorResponse "Student has no team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /students/me/leave-team [post]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.teamService.LeaveTeam(c.Request.Context(), caller); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteStudent handles DELETE /students/me
// @Summary Delete the calling student's account
// @Tags students
// @Success 204 "Account deleted"
// @Failure 403 {object} ErrorResponse "Caller is not a student"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /students/me [delete]
func (h *TeamHandler) DeleteStudent(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteStudent(c.Request.Context(), caller); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteSupervisor handles DELETE /supervisors/me
// @Summary Delete the calling supervisor's account
// @Description Supervised teams lose their supervisor and the supervisor's tasks are deleted
// @Tags supervisors
// @Success 204 "Account deleted"
// @Failure 403 {object} ErrorResponse "Caller is not a supervisor"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /supervisors/me [delete]
func (h *TeamHandler) DeleteSupervisor(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteSupervisor(c.Request.Context(), caller); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
