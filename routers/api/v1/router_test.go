package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/entities"
	mock_authorization "github.com/unicsmcr/bizdash/mocks/authorization"
	mock_services "github.com/unicsmcr/bizdash/mocks/services"
	mock_upstream "github.com/unicsmcr/bizdash/mocks/upstream"
	mock_utils "github.com/unicsmcr/bizdash/mocks/utils"
	"github.com/unicsmcr/bizdash/resources"
	"go.uber.org/zap"
)

const testAuthToken = "authToken"

var (
	testCfg = &config.AppConfig{
		Auth: config.AuthConfig{
			SessionLifetime: 3600,
			CookieName:      "Authorization",
		},
	}

	testSession = entities.Session{
		ID:            "session-1",
		Email:         "john@doe.com",
		Name:          "John Doe",
		Roles:         []role.UserRole{role.Store},
		EmployeeID:    "EMP-1",
		UpstreamToken: "backend-token",
	}

	testAssets = resources.Resource{
		Module:   resources.StoreModule,
		Name:     "assets",
		Title:    "Assets",
		Endpoint: "/store/assets/all",
		Roles:    []role.UserRole{role.Store},
		Fields: []resources.Field{
			{Name: "id", Label: "ID", Type: resources.Text},
			{Name: "assetName", Label: "Asset", Type: resources.Text, Searchable: true},
			{Name: "value", Label: "Value", Type: resources.Currency},
		},
	}

	testEmployees = resources.Resource{
		Module:   resources.HRModule,
		Name:     "employees",
		Title:    "Employees",
		Endpoint: "/api/employees",
		Roles:    []role.UserRole{role.HR},
	}
)

type apiV1TestSetup struct {
	ctrl                *gomock.Controller
	router              *apiV1Router
	mockAuthorizer      *mock_authorization.MockAuthorizer
	mockClient          *mock_upstream.MockClient
	mockSessionService  *mock_services.MockSessionService
	mockResourceService *mock_services.MockResourceService
	mockTimeProvider    *mock_utils.MockTimeProvider
	testCtx             *gin.Context
	w                   *httptest.ResponseRecorder
}

func setupAPIV1Test(t *testing.T) *apiV1TestSetup {
	ctrl := gomock.NewController(t)
	mockAuthorizer := mock_authorization.NewMockAuthorizer(ctrl)
	mockClient := mock_upstream.NewMockClient(ctrl)
	mockSessionService := mock_services.NewMockSessionService(ctrl)
	mockResourceService := mock_services.NewMockResourceService(ctrl)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)

	catalog, err := resources.NewCatalog(testAssets, testEmployees)
	assert.NoError(t, err)

	router := NewAPIV1Router(zap.NewNop(), testCfg, mockAuthorizer, mockClient, mockSessionService,
		mockResourceService, catalog, mockTimeProvider).(*apiV1Router)

	w := httptest.NewRecorder()
	testCtx, _ := gin.CreateTestContext(w)

	return &apiV1TestSetup{
		ctrl:                ctrl,
		router:              router,
		mockAuthorizer:      mockAuthorizer,
		mockClient:          mockClient,
		mockSessionService:  mockSessionService,
		mockResourceService: mockResourceService,
		mockTimeProvider:    mockTimeProvider,
		testCtx:             testCtx,
		w:                   w,
	}
}

// withSession attaches a GET request to the test context and stores session in it
func (s *apiV1TestSetup) withSession(session entities.Session, target string) {
	s.testCtx.Request = httptest.NewRequest(http.MethodGet, target, nil)
	authorization.SetSession(s.testCtx, session)
}

func TestApiV1Router_RegisterRoutes(t *testing.T) {
	setup := setupAPIV1Test(t)
	defer setup.ctrl.Finish()
	setup.mockAuthorizer.EXPECT().WithAuthMiddleware(gomock.Any(), gomock.Any()).
		Return(gin.HandlerFunc(func(ctx *gin.Context) {
			ctx.Status(http.StatusNoContent)
		})).AnyTimes()

	tests := []struct {
		route  string
		method string
	}{
		{route: "/", method: http.MethodGet},
		{route: "/auth/login", method: http.MethodPost},
		{route: "/auth/employees/login", method: http.MethodPost},
		{route: "/auth/logout", method: http.MethodPost},
		{route: "/auth/session", method: http.MethodGet},
		{route: "/auth/sessions", method: http.MethodGet},
		{route: "/modules", method: http.MethodGet},
		{route: "/dashboard", method: http.MethodGet},
		{route: "/resources/store/assets", method: http.MethodGet},
		{route: "/resources/store/assets/export", method: http.MethodGet},
		{route: "/resources/store/assets/123", method: http.MethodGet},
	}

	w := httptest.NewRecorder()
	_, testServer := gin.CreateTestContext(w)
	setup.router.RegisterRoutes(&testServer.RouterGroup)

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.route, nil)

			testServer.ServeHTTP(w, req)

			// making sure route is defined
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestApiV1Router_GetAuthToken__should_read_header_then_cookie(t *testing.T) {
	setup := setupAPIV1Test(t)
	defer setup.ctrl.Finish()

	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	setup.testCtx.Request.AddCookie(&http.Cookie{Name: testCfg.Auth.CookieName, Value: "cookie token"})
	assert.Equal(t, "cookie token", setup.router.GetAuthToken(setup.testCtx))

	setup.testCtx.Request.Header.Set("Authorization", testAuthToken)
	assert.Equal(t, testAuthToken, setup.router.GetAuthToken(setup.testCtx))
}

func TestApiV1Router_HandleUnauthorized__should_return_401(t *testing.T) {
	setup := setupAPIV1Test(t)
	defer setup.ctrl.Finish()

	setup.router.HandleUnauthorized(setup.testCtx)

	assert.Equal(t, http.StatusUnauthorized, setup.w.Code)
	assert.True(t, setup.testCtx.IsAborted())
}

func TestApiV1Router_HandleForbidden__should_return_403(t *testing.T) {
	setup := setupAPIV1Test(t)
	defer setup.ctrl.Finish()

	setup.router.HandleForbidden(setup.testCtx)

	assert.Equal(t, http.StatusForbidden, setup.w.Code)
	assert.True(t, setup.testCtx.IsAborted())
}
