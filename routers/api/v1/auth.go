package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/routers/api/models"
	"github.com/unicsmcr/bizdash/routers/common"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"go.uber.org/zap"
)

// POST: /api/v1/auth/login
// x-www-form-urlencoded or JSON
// Request:  email string
//           password string
// Response: token string
//           email string
//           roles []string
//           employeeId string
//           redirect string
// Headers:  Authorization <- token
func (r *apiV1Router) Login(ctx *gin.Context) {
	r.login(ctx, false)
}

// POST: /api/v1/auth/employees/login
// x-www-form-urlencoded or JSON
// Request:  email string
//           password string
// Response: same as /api/v1/auth/login
// Headers:  Authorization <- token
func (r *apiV1Router) EmployeeLogin(ctx *gin.Context) {
	r.login(ctx, true)
}

func (r *apiV1Router) login(ctx *gin.Context, employee bool) {
	var req struct {
		Email    string `form:"email" json:"email"`
		Password string `form:"password" json:"password"`
	}
	err := ctx.ShouldBind(&req)
	if err != nil {
		r.logger.Debug("could not parse login request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "failed to parse request")
		return
	}

	if len(req.Email) == 0 {
		r.logger.Debug("email was not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "email must be provided")
		return
	}

	if len(req.Password) == 0 {
		r.logger.Debug("password was not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "password must be provided")
		return
	}

	session, token, err := common.StartSession(ctx.Request.Context(), r.client, r.sessionService, r.authorizer, common.Credentials{
		Email:    req.Email,
		Password: req.Password,
		Employee: employee,
	})
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			r.logger.Debug("backend rejected credentials", zap.String("email", req.Email), zap.Error(err))
			models.SendAPIError(ctx, http.StatusUnauthorized, "invalid email or password")
			return
		}

		switch errors.Cause(err).(type) {
		case *upstream.StatusError:
			r.logger.Warn("backend login failed", zap.String("email", req.Email), zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadGateway, errors.Cause(err).Error())
			return
		}

		switch errors.Cause(err) {
		case upstream.ErrRequestFailed, upstream.ErrUnexpectedPayload:
			r.logger.Warn("backend login failed", zap.String("email", req.Email), zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadGateway, "could not log in with the backend")
		default:
			r.logger.Error("could not start session", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	common.SetAuthCookie(ctx, r.cfg, token)
	ctx.Header(common.AuthHeaderName, token)
	ctx.JSON(http.StatusOK, loginRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Token:      token,
		Email:      session.Email,
		Roles:      session.Roles,
		EmployeeID: session.EmployeeID,
		Redirect:   role.LandingPath(session.Roles),
	})
}

// POST: /api/v1/auth/logout
// Request:  all bool (query, optional)
// Response:
// Headers:  Authorization -> token
func (r *apiV1Router) Logout(ctx *gin.Context) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		r.HandleUnauthorized(ctx)
		return
	}

	var err error
	if ctx.Query("all") == "true" {
		err = r.sessionService.DeleteSessionsForEmail(ctx.Request.Context(), session.Email)
	} else {
		err = r.sessionService.DeleteSession(ctx.Request.Context(), session.ID)
	}
	if err != nil && errors.Cause(err) != services.ErrNotFound {
		r.logger.Error("could not delete session", zap.String("session", session.ID), zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	common.ClearAuthCookie(ctx, r.cfg)
	ctx.JSON(http.StatusOK, models.Response{
		Status: http.StatusOK,
	})
}

// GET: /api/v1/auth/session
// Response: session sessionSummary
// Headers:  Authorization -> token
func (r *apiV1Router) GetSession(ctx *gin.Context) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		r.HandleUnauthorized(ctx)
		return
	}

	ctx.JSON(http.StatusOK, getSessionRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Session: newSessionSummary(session),
	})
}

// GET: /api/v1/auth/sessions
// Response: sessions []sessionSummary
// Headers:  Authorization -> token
func (r *apiV1Router) GetSessions(ctx *gin.Context) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		r.HandleUnauthorized(ctx)
		return
	}

	sessions, err := r.sessionService.GetSessionsForEmail(ctx.Request.Context(), session.Email)
	if err != nil {
		r.logger.Error("could not fetch sessions", zap.String("email", session.Email), zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	summaries := make([]sessionSummary, 0, len(sessions))
	for _, s := range sessions {
		summaries = append(summaries, newSessionSummary(s))
	}

	ctx.JSON(http.StatusOK, getSessionsRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Sessions: summaries,
	})
}
