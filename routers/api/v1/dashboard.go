package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/routers/api/models"
	"github.com/unicsmcr/bizdash/routers/common"
)

// GET: /api/v1/modules
// Response: modules []common.ModuleResources
// Headers:  Authorization -> token
func (r *apiV1Router) GetModules(ctx *gin.Context) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		r.HandleUnauthorized(ctx)
		return
	}

	ctx.JSON(http.StatusOK, getModulesRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Modules: common.VisibleModules(r.catalog, session),
	})
}

// GET: /api/v1/dashboard
// Response: counts []services.Count
// Headers:  Authorization -> token
func (r *apiV1Router) GetDashboard(ctx *gin.Context) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		r.HandleUnauthorized(ctx)
		return
	}

	counts := r.resourceService.Counts(ctx.Request.Context(), session, common.VisibleResources(r.catalog, session))

	ctx.JSON(http.StatusOK, getDashboardRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Counts: counts,
	})
}
