package authorization_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/entities"
	"github.com/unicsmcr/bizdash/environment"
	mock_authorization "github.com/unicsmcr/bizdash/mocks/authorization"
	mock_services "github.com/unicsmcr/bizdash/mocks/services"
	mock_utils "github.com/unicsmcr/bizdash/mocks/utils"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/testutils"
	"go.uber.org/zap"
)

const testJWTSecret = "supersecret"

var testSession = entities.Session{
	ID:            "session-1",
	Email:         "john@doe.com",
	Roles:         []role.UserRole{role.Store},
	UpstreamToken: "backend-token",
	ExpiresAt:     time.Now().Add(time.Hour).Truncate(time.Second),
}

type authorizerTestSetup struct {
	authorizer         authorization.Authorizer
	mockTimeProvider   *mock_utils.MockTimeProvider
	mockSessionService *mock_services.MockSessionService
	mockRouterResource *mock_authorization.MockRouterResource
	testCtx            *gin.Context
	ctrl               *gomock.Controller
}

func setupAuthorizerTests(t *testing.T, jwtSecret string) authorizerTestSetup {
	restore := testutils.SetEnvVars(map[string]string{
		environment.JWTSecret: jwtSecret,
	})
	env := environment.NewEnv(zap.NewNop())
	restore()

	ctrl := gomock.NewController(t)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	mockSessionService := mock_services.NewMockSessionService(ctrl)
	mockRouterResource := mock_authorization.NewMockRouterResource(ctrl)

	w := httptest.NewRecorder()
	testCtx, _ := gin.CreateTestContext(w)
	testutils.AddRequestWithFormParamsToCtx(testCtx, http.MethodGet, nil)

	return authorizerTestSetup{
		authorizer:         authorization.NewAuthorizer(zap.NewNop(), env, mockTimeProvider, mockSessionService),
		mockTimeProvider:   mockTimeProvider,
		mockSessionService: mockSessionService,
		mockRouterResource: mockRouterResource,
		testCtx:            testCtx,
		ctrl:               ctrl,
	}
}

func createToken(t *testing.T, secret string, method jwt.SigningMethod, claims authorization.SessionClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func Test_CreateSessionToken__should_return_error_when_secret_is_empty(t *testing.T) {
	setup := setupAuthorizerTests(t, "")
	defer setup.ctrl.Finish()

	_, err := setup.authorizer.CreateSessionToken(testSession)

	assert.Equal(t, authorization.ErrMissingSecret, err)
}

func Test_CreateSessionToken__should_return_ErrInvalidID_for_session_without_id(t *testing.T) {
	setup := setupAuthorizerTests(t, testJWTSecret)
	defer setup.ctrl.Finish()

	_, err := setup.authorizer.CreateSessionToken(entities.Session{})

	assert.Equal(t, services.ErrInvalidID, err)
}

func Test_CreateSessionToken__should_create_expected_token(t *testing.T) {
	setup := setupAuthorizerTests(t, testJWTSecret)
	defer setup.ctrl.Finish()
	setup.mockTimeProvider.EXPECT().Now().Return(time.Unix(100, 0)).Times(1)

	token, err := setup.authorizer.CreateSessionToken(testSession)
	assert.NoError(t, err)

	var claims authorization.SessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, jwt.SigningMethodHS256, parsed.Method)
	assert.Equal(t, "session-1", claims.Id)
	assert.Equal(t, "john@doe.com", claims.Subject)
	assert.Equal(t, int64(100), claims.IssuedAt)
	assert.Equal(t, testSession.ExpiresAt.Unix(), claims.ExpiresAt)
}

func Test_GetSessionFromToken__should_return_session_for_valid_token(t *testing.T) {
	setup := setupAuthorizerTests(t, testJWTSecret)
	defer setup.ctrl.Finish()
	setup.mockTimeProvider.EXPECT().Now().Return(time.Unix(100, 0)).Times(1)
	setup.mockSessionService.EXPECT().GetSession(gomock.Any(), "session-1").Return(&testSession, nil).Times(2)

	token, err := setup.authorizer.CreateSessionToken(testSession)
	assert.NoError(t, err)

	session, err := setup.authorizer.GetSessionFromToken(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, testSession, *session)

	session, err = setup.authorizer.GetSessionFromToken(context.Background(), "Bearer "+token)
	assert.NoError(t, err)
	assert.Equal(t, testSession, *session)
}

func Test_GetSessionFromToken__should_return_ErrInvalidToken(t *testing.T) {
	validClaims := authorization.SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        testSession.ID,
			Subject:   testSession.Email,
			ExpiresAt: testSession.ExpiresAt.Unix(),
		},
	}
	expiredClaims := validClaims
	expiredClaims.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	noIDClaims := validClaims
	noIDClaims.Id = ""
	otherSubjectClaims := validClaims
	otherSubjectClaims.Subject = "jane@doe.com"

	tests := []struct {
		name  string
		token func(t *testing.T) string
		prep  func(setup *authorizerTestSetup)
	}{
		{
			name:  "when token is empty",
			token: func(t *testing.T) string { return "" },
		},
		{
			name:  "when token is malformed",
			token: func(t *testing.T) string { return "not.a.token" },
		},
		{
			name: "when token is signed with another secret",
			token: func(t *testing.T) string {
				return createToken(t, "othersecret", jwt.SigningMethodHS256, validClaims)
			},
		},
		{
			name: "when token is signed with another method",
			token: func(t *testing.T) string {
				return createToken(t, testJWTSecret, jwt.SigningMethodHS512, validClaims)
			},
		},
		{
			name: "when token has expired",
			token: func(t *testing.T) string {
				return createToken(t, testJWTSecret, jwt.SigningMethodHS256, expiredClaims)
			},
		},
		{
			name: "when token has no session id",
			token: func(t *testing.T) string {
				return createToken(t, testJWTSecret, jwt.SigningMethodHS256, noIDClaims)
			},
		},
		{
			name: "when session does not exist",
			token: func(t *testing.T) string {
				return createToken(t, testJWTSecret, jwt.SigningMethodHS256, validClaims)
			},
			prep: func(setup *authorizerTestSetup) {
				setup.mockSessionService.EXPECT().GetSession(gomock.Any(), testSession.ID).Return(nil, services.ErrNotFound).Times(1)
			},
		},
		{
			name: "when session has expired",
			token: func(t *testing.T) string {
				return createToken(t, testJWTSecret, jwt.SigningMethodHS256, validClaims)
			},
			prep: func(setup *authorizerTestSetup) {
				setup.mockSessionService.EXPECT().GetSession(gomock.Any(), testSession.ID).Return(nil, services.ErrSessionExpired).Times(1)
			},
		},
		{
			name: "when token subject does not match session",
			token: func(t *testing.T) string {
				return createToken(t, testJWTSecret, jwt.SigningMethodHS256, otherSubjectClaims)
			},
			prep: func(setup *authorizerTestSetup) {
				setup.mockSessionService.EXPECT().GetSession(gomock.Any(), testSession.ID).Return(&testSession, nil).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupAuthorizerTests(t, testJWTSecret)
			defer setup.ctrl.Finish()
			if tt.prep != nil {
				tt.prep(&setup)
			}

			_, err := setup.authorizer.GetSessionFromToken(context.Background(), tt.token(t))

			assert.Equal(t, services.ErrInvalidToken, pkgerrors.Cause(err))
		})
	}
}

func Test_GetSessionFromToken__should_return_session_service_errors(t *testing.T) {
	setup := setupAuthorizerTests(t, testJWTSecret)
	defer setup.ctrl.Finish()
	serviceErr := errors.New("db down")
	setup.mockSessionService.EXPECT().GetSession(gomock.Any(), testSession.ID).Return(nil, serviceErr).Times(1)
	token := createToken(t, testJWTSecret, jwt.SigningMethodHS256, authorization.SessionClaims{
		StandardClaims: jwt.StandardClaims{Id: testSession.ID, Subject: testSession.Email},
	})

	_, err := setup.authorizer.GetSessionFromToken(context.Background(), token)

	assert.Equal(t, serviceErr, pkgerrors.Cause(err))
}

func Test_GetSessionFromToken__should_return_error_when_secret_is_empty(t *testing.T) {
	setup := setupAuthorizerTests(t, "")
	defer setup.ctrl.Finish()

	_, err := setup.authorizer.GetSessionFromToken(context.Background(), "token")

	assert.Equal(t, authorization.ErrMissingSecret, err)
}

func Test_WithAuthMiddleware__should_call_HandleUnauthorized(t *testing.T) {
	tests := []struct {
		name string
		prep func(*authorizerTestSetup)
	}{
		{
			name: "when token is empty",
			prep: func(setup *authorizerTestSetup) {
				setup.mockRouterResource.EXPECT().GetAuthToken(gomock.Any()).Return("").Times(1)
			},
		},
		{
			name: "when token is invalid",
			prep: func(setup *authorizerTestSetup) {
				setup.mockRouterResource.EXPECT().GetAuthToken(gomock.Any()).Return("invalid_token").Times(1)
			},
		},
		{
			name: "when session cannot be loaded",
			prep: func(setup *authorizerTestSetup) {
				token := createToken(t, testJWTSecret, jwt.SigningMethodHS256, authorization.SessionClaims{
					StandardClaims: jwt.StandardClaims{Id: testSession.ID, Subject: testSession.Email},
				})
				setup.mockRouterResource.EXPECT().GetAuthToken(gomock.Any()).Return(token).Times(1)
				setup.mockSessionService.EXPECT().GetSession(gomock.Any(), testSession.ID).Return(nil, errors.New("db down")).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupAuthorizerTests(t, testJWTSecret)
			defer setup.ctrl.Finish()
			mockHandlerCalled := false
			mockHandler := func(*gin.Context) { mockHandlerCalled = true }
			tt.prep(&setup)

			setup.mockRouterResource.EXPECT().HandleUnauthorized(gomock.Any()).Times(1)

			wrappedHandler := setup.authorizer.WithAuthMiddleware(setup.mockRouterResource, mockHandler)

			wrappedHandler(setup.testCtx)

			assert.False(t, mockHandlerCalled)
			_, ok := authorization.SessionFromContext(setup.testCtx)
			assert.False(t, ok)
		})
	}
}

func Test_WithAuthMiddleware__should_store_session_and_call_handler(t *testing.T) {
	setup := setupAuthorizerTests(t, testJWTSecret)
	defer setup.ctrl.Finish()
	token := createToken(t, testJWTSecret, jwt.SigningMethodHS256, authorization.SessionClaims{
		StandardClaims: jwt.StandardClaims{Id: testSession.ID, Subject: testSession.Email},
	})
	setup.mockRouterResource.EXPECT().GetAuthToken(gomock.Any()).Return(token).Times(1)
	setup.mockSessionService.EXPECT().GetSession(gomock.Any(), testSession.ID).Return(&testSession, nil).Times(1)

	var handlerSession entities.Session
	mockHandler := func(ctx *gin.Context) {
		handlerSession, _ = authorization.SessionFromContext(ctx)
	}

	wrappedHandler := setup.authorizer.WithAuthMiddleware(setup.mockRouterResource, mockHandler)

	wrappedHandler(setup.testCtx)

	assert.Equal(t, testSession, handlerSession)
}

func Test_RequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		session    *entities.Session
		roles      []role.UserRole
		prep       func(*authorizerTestSetup)
		wantCalled bool
	}{
		{
			name: "should call HandleUnauthorized without session",
			prep: func(setup *authorizerTestSetup) {
				setup.mockRouterResource.EXPECT().HandleUnauthorized(gomock.Any()).Times(1)
			},
		},
		{
			name:    "should call HandleForbidden when role is missing",
			session: &entities.Session{Roles: []role.UserRole{role.Store}},
			roles:   []role.UserRole{role.HR},
			prep: func(setup *authorizerTestSetup) {
				setup.mockRouterResource.EXPECT().HandleForbidden(gomock.Any()).Times(1)
			},
		},
		{
			name:       "should call handler when role is present",
			session:    &entities.Session{Roles: []role.UserRole{role.HR}},
			roles:      []role.UserRole{role.HR, role.Finance},
			wantCalled: true,
		},
		{
			name:       "should call handler for admin",
			session:    &entities.Session{Roles: []role.UserRole{role.Admin}},
			roles:      []role.UserRole{role.DataManager},
			wantCalled: true,
		},
		{
			name:       "should call handler when no role is required",
			session:    &entities.Session{},
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupAuthorizerTests(t, testJWTSecret)
			defer setup.ctrl.Finish()
			if tt.prep != nil {
				tt.prep(&setup)
			}
			if tt.session != nil {
				authorization.SetSession(setup.testCtx, *tt.session)
			}
			called := false

			authorization.RequireRoles(setup.mockRouterResource, func(*gin.Context) { called = true }, tt.roles...)(setup.testCtx)

			assert.Equal(t, tt.wantCalled, called)
		})
	}
}
