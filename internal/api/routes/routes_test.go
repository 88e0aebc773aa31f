package routes_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"graduation-portal-backend/internal/api/routes"
	"graduation-portal-backend/internal/config"
	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/repository/memory"
	"graduation-portal-backend/internal/service"
	"graduation-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const testSecret = "routes-test-secret"

type RoutesTestSuite struct {
	suite.Suite
	httpSuite  *testutils.HTTPTestSuite
	factories  *testutils.FactorySet
	alice      *models.Student
	bob        *models.Student
	supervisor *models.Supervisor
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	registry := notification.NewRegistry(8)
	dispatcher := notification.NewDispatcher(notification.NewRegistrySink(registry), notification.DispatcherOptions{})

	suite.factories = testutils.NewFactorySet()
	suite.alice = suite.factories.Student.WithName("Alice")
	suite.bob = suite.factories.Student.WithName("Bob")
	suite.supervisor = suite.factories.Supervisor.Create()

	repos := store.Repositories(context.Background())
	suite.Require().NoError(repos.Students.Create(suite.alice))
	suite.Require().NoError(repos.Students.Create(suite.bob))
	suite.Require().NoError(repos.Supervisors.Create(suite.supervisor))

	cfg := &config.Config{
		Environment:        "test",
		JWTSecret:          testSecret,
		AllowedOrigins:     []string{"http://localhost:3000"},
		TeamMaxMembers:     6,
		SupervisorMaxTeams: 4,
	}
	router, err := routes.SetupRoutes(routes.Dependencies{
		Store:      store,
		Dispatcher: dispatcher,
		Registry:   registry,
	}, cfg)
	suite.Require().NoError(err)

	suite.httpSuite = &testutils.HTTPTestSuite{Router: router}
}

func (suite *RoutesTestSuite) token(id uuid.UUID, role models.Role) map[string]string {
	return testutils.BearerHeaders(suite.T(), testSecret, id, role)
}

func (suite *RoutesTestSuite) TestHealthIsPublic() {
	recorder := suite.httpSuite.MakeRequest("GET", "/health", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.NotEmpty(recorder.Header().Get("X-Request-ID"))
}

func (suite *RoutesTestSuite) TestHealthOnlyRouter() {
	httpSuite := &testutils.HTTPTestSuite{Router: routes.SetupHealthRoutes(memory.NewStore())}

	recorder := httpSuite.MakeRequest("GET", "/health/ready", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = httpSuite.MakeRequest("GET", "/api/v1/teams", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RoutesTestSuite) TestAPIRequiresToken() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authorization header is required")

	recorder = suite.httpSuite.MakeRequestWithHeaders("GET", "/api/v1/teams", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *RoutesTestSuite) TestQueryTokenOnlyForNotificationStream() {
	bearer := suite.token(suite.alice.ID, models.RoleStudent)["Authorization"]
	token := strings.TrimPrefix(bearer, "Bearer ")

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?access_token="+token, nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authorization header is required")
}

func (suite *RoutesTestSuite) TestUnknownCaller() {
	stranger := suite.factories.Student.Create()

	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/api/v1/teams", nil, suite.token(stranger.ID, models.RoleStudent))
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "does not match")
}

func (suite *RoutesTestSuite) TestRoleGuards() {
	supervisorHeaders := suite.token(suite.supervisor.ID, models.RoleSupervisor)
	studentHeaders := suite.token(suite.alice.ID, models.RoleStudent)

	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/teams", map[string]interface{}{"name": "atlas"}, supervisorHeaders)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "requires a student")

	recorder = suite.httpSuite.MakeRequestWithHeaders("GET", "/api/v1/supervision-requests", nil, studentHeaders)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "requires a supervisor")

	recorder = suite.httpSuite.MakeRequestWithHeaders("GET", "/api/v1/supervisors", nil, studentHeaders)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *RoutesTestSuite) TestJoinWorkflowOverHTTP() {
	aliceHeaders := suite.token(suite.alice.ID, models.RoleStudent)
	bobHeaders := suite.token(suite.bob.ID, models.RoleStudent)

	recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/teams", map[string]interface{}{
		"name":       "atlas",
		"tech_stack": []string{"go"},
	}, aliceHeaders)
	var team service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &team)
	suite.Equal(1, team.MemberCount)

	recorder = suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/teams/"+team.ID.String()+"/join-requests", map[string]interface{}{
		"message": "Let me in",
	}, bobHeaders)
	var request service.JoinRequestResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &request)
	suite.Equal(models.ApprovalStatusPending, request.Status)

	recorder = suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/join-requests/"+request.ID.String()+"/respond", map[string]interface{}{
		"decision": "accept",
	}, aliceHeaders)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &request)
	suite.Equal(models.ApprovalStatusAccepted, request.Status)

	recorder = suite.httpSuite.MakeRequestWithHeaders("GET", "/api/v1/teams/"+team.ID.String(), nil, bobHeaders)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &team)
	suite.Equal(2, team.MemberCount)

	recorder = suite.httpSuite.MakeRequestWithHeaders("GET", "/api/v1/notifications/unread-count", nil, bobHeaders)
	var count struct {
		Count int64 `json:"count"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &count)
	suite.Equal(int64(1), count.Count)

	// A second team creation by a member is a workflow conflict
	recorder = suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/teams", map[string]interface{}{"name": "zeus"}, bobHeaders)
	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *RoutesTestSuite) TestCORSPreflight() {
	recorder := suite.httpSuite.MakeRequestWithHeaders("OPTIONS", "/api/v1/teams", nil, map[string]string{
		"Origin": "http://localhost:3000",
	})
	suite.Equal(http.StatusNoContent, recorder.Code)
	suite.Equal("http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
