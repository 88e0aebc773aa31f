package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"graduation-portal-backend/internal/api/handlers"
	"graduation-portal-backend/internal/auth"
	"graduation-portal-backend/internal/database/models"
	apperrors "graduation-portal-backend/internal/errors"
	"graduation-portal-backend/internal/mocks"
	"graduation-portal-backend/internal/service"
	"graduation-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func studentCaller() auth.Caller {
	return auth.NewStudentCaller(&models.Student{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
}

func supervisorCaller() auth.Caller {
	return auth.NewSupervisorCaller(&models.Supervisor{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		FirstName:        "Alan",
		LastName:         "Turing",
		MaxAssignedTeams: 4,
	})
}

func makeInvalidJSONRequest(router http.Handler, method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	caller      auth.Caller
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.caller = studentCaller()
	suite.httpSuite.Caller = suite.caller

	v1 := suite.httpSuite.Router.Group("/api/v1")
	teams := v1.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/join-requests", suite.handler.RequestToJoin)
		teams.GET("/:id/join-requests", suite.handler.ListJoinRequests)
	}
	v1.POST("/join-requests/:id/respond", suite.handler.RespondToJoinRequest)
	v1.GET("/students/me/join-requests", suite.handler.ListMyJoinRequests)
	v1.POST("/students/me/leave-team", suite.handler.LeaveTeam)
	v1.DELETE("/students/me", suite.handler.DeleteStudent)
	v1.DELETE("/supervisors/me", suite.handler.DeleteSupervisor)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		expected := &service.TeamResponse{
			ID:           teamID,
			Name:         "atlas",
			Department:   "Computer Engineering",
			MaxMembers:   6,
			IsOpenToJoin: true,
			TechStack:    []string{"go"},
			MemberCount:  1,
			CreatedAt:    "2025-01-01T00:00:00Z",
			UpdatedAt:    "2025-01-01T00:00:00Z",
		}

		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), suite.caller, &service.CreateTeamRequest{
				Name:       "atlas",
				Department: "Computer Engineering",
				TechStack:  []string{"go"},
			}).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{
			"name":       "atlas",
			"department": "Computer Engineering",
			"tech_stack": []string{"go"},
		})

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, teamID, response.ID)
		assert.Equal(t, 1, response.MemberCount)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := makeInvalidJSONRequest(suite.httpSuite.Router, "POST", "/api/v1/teams")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Student already in a team", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrStudentAlreadyInTeam).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{"name": "atlas"})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already belongs to a team")
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{"name": "atlas"})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name")
	})

	suite.T().Run("Supervisor cannot create a team", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrStudentRoleRequired).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{"name": "atlas"})
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "requires a student")
	})

	suite.T().Run("Internal errors are not leaked", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pq: connection refused")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{"name": "atlas"})
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

// TestMissingCaller tests that handlers reject unauthenticated requests
func (suite *TeamHandlerTestSuite) TestMissingCaller() {
	suite.httpSuite.Caller = nil

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{"name": "atlas"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().
			GetTeam(gomock.Any(), teamID).
			Return(&service.TeamResponse{ID: teamID, Name: "atlas"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+teamID.String(), nil)

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "atlas", response.Name)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/not-a-uuid", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetTeam(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+uuid.New().String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Filters and pagination", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListTeams(gomock.Any(), service.TeamListFilter{OpenOnly: true, Department: "CS"}, 2, 10).
			Return(&service.TeamListResponse{Teams: []service.TeamResponse{}, Total: 11, Page: 2, PageSize: 10}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?open=true&department=CS&page=2&page_size=10", nil)

		var response service.TeamListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(11), response.Total)
	})

	suite.T().Run("Invalid pagination falls back to defaults", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListTeams(gomock.Any(), service.TeamListFilter{}, 1, 20).
			Return(&service.TeamListResponse{Teams: []service.TeamResponse{}, Page: 1, PageSize: 20}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?page=0&page_size=1000", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	teamID := uuid.New()

	suite.T().Run("Reopen a full team", func(t *testing.T) {
		open := true
		suite.mockService.EXPECT().
			UpdateTeam(gomock.Any(), suite.caller, teamID, &service.UpdateTeamRequest{IsOpenToJoin: &open}).
			Return(nil, apperrors.ErrTeamFull).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/teams/"+teamID.String(), map[string]interface{}{"is_open_to_join": true})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "capacity")
	})

	suite.T().Run("Not a member", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateTeam(gomock.Any(), gomock.Any(), teamID, gomock.Any()).
			Return(nil, apperrors.ErrNotTeamMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/teams/"+teamID.String(), map[string]interface{}{"name": "renamed"})
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "not a member")
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		DeleteTeam(gomock.Any(), suite.caller, teamID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/teams/"+teamID.String(), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestRequestToJoin tests the RequestToJoin handler
func (suite *TeamHandlerTestSuite) TestRequestToJoin() {
	teamID := uuid.New()

	suite.T().Run("Without a body", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), suite.caller, teamID, &service.JoinTeamRequest{}).
			Return(&service.JoinRequestResponse{ID: uuid.New(), TeamID: teamID, Status: models.ApprovalStatusPending}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/join-requests", nil)

		var response service.JoinRequestResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, models.ApprovalStatusPending, response.Status)
	})

	suite.T().Run("With a message", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), suite.caller, teamID, &service.JoinTeamRequest{Message: "I write Go"}).
			Return(&service.JoinRequestResponse{ID: uuid.New(), TeamID: teamID, Message: "I write Go"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/join-requests", map[string]interface{}{"message": "I write Go"})
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Closed team", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), gomock.Any(), teamID, gomock.Any()).
			Return(nil, apperrors.ErrTeamClosed).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/join-requests", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "not open")
	})

	suite.T().Run("Duplicate pending request", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestToJoin(gomock.Any(), gomock.Any(), teamID, gomock.Any()).
			Return(nil, apperrors.ErrJoinRequestExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/join-requests", nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestListJoinRequests tests the ListJoinRequests handler
func (suite *TeamHandlerTestSuite) TestListJoinRequests() {
	teamID := uuid.New()

	suite.T().Run("Status filter", func(t *testing.T) {
		pending := models.ApprovalStatusPending
		suite.mockService.EXPECT().
			ListJoinRequests(gomock.Any(), suite.caller, teamID, &pending).
			Return([]service.JoinRequestResponse{{ID: uuid.New(), TeamID: teamID}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+teamID.String()+"/join-requests?status=pending", nil)

		var response []service.JoinRequestResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("Unknown status", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+teamID.String()+"/join-requests?status=maybe", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid status")
	})
}

// TestRespondToJoinRequest tests the RespondToJoinRequest handler
func (suite *TeamHandlerTestSuite) TestRespondToJoinRequest() {
	requestID := uuid.New()

	suite.T().Run("Accept", func(t *testing.T) {
		suite.mockService.EXPECT().
			RespondToJoinRequest(gomock.Any(), suite.caller, requestID, &service.RespondJoinRequest{Decision: service.DecisionAccept}).
			Return(&service.JoinRequestResponse{ID: requestID, Status: models.ApprovalStatusAccepted}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/join-requests/"+requestID.String()+"/respond", map[string]interface{}{"decision": "accept"})

		var response service.JoinRequestResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.ApprovalStatusAccepted, response.Status)
	})

	suite.T().Run("Already resolved", func(t *testing.T) {
		suite.mockService.EXPECT().
			RespondToJoinRequest(gomock.Any(), gomock.Any(), requestID, gomock.Any()).
			Return(nil, apperrors.ErrJoinRequestResolved).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/join-requests/"+requestID.String()+"/respond", map[string]interface{}{"decision": "reject"})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already been resolved")
	})

	suite.T().Run("Unknown request", func(t *testing.T) {
		suite.mockService.EXPECT().
			RespondToJoinRequest(gomock.Any(), gomock.Any(), requestID, gomock.Any()).
			Return(nil, apperrors.ErrJoinRequestNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/join-requests/"+requestID.String()+"/respond", map[string]interface{}{"decision": "accept"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := makeInvalidJSONRequest(suite.httpSuite.Router, "POST", "/api/v1/join-requests/"+requestID.String()+"/respond")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestAccountOperations tests leave and delete endpoints
func (suite *TeamHandlerTestSuite) TestAccountOperations() {
	suite.T().Run("Leave team", func(t *testing.T) {
		suite.mockService.EXPECT().LeaveTeam(gomock.Any(), suite.caller).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/students/me/leave-team", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Leave without a team", func(t *testing.T) {
		suite.mockService.EXPECT().LeaveTeam(gomock.Any(), suite.caller).Return(apperrors.ErrStudentHasNoTeam).Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/students/me/leave-team", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Delete student", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteStudent(gomock.Any(), suite.caller).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/students/me", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Delete supervisor as a student", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteSupervisor(gomock.Any(), suite.caller).Return(apperrors.ErrSupervisorRoleRequired).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/supervisors/me", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("My join requests", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListMyJoinRequests(gomock.Any(), suite.caller).
			Return([]service.JoinRequestResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/students/me/join-requests", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
