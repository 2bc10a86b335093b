package frontend

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/authorization"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers/common"
)

const defaultComponentsGroup = "Default"

// moduleContextKey holds the name of the module whose page is being rendered
const moduleContextKey = "bizdash_module"

var errNoSession = errors.New("request has no session")

var (
	navbar = frontendComponent{
		name:         fmt.Sprintf("%s:Navbar", defaultComponentsGroup),
		dataProvider: navbarDataProvider,
	}

	dashboardCounts = frontendComponent{
		name:         "DashboardCounts",
		dataProvider: dashboardCountsDataProvider,
	}
)

func navbarDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		return nil, errNoSession
	}

	return navbarDataModel{
		Email:   session.Email,
		Name:    session.Name,
		Roles:   session.Roles,
		Landing: role.LandingPath(session.Roles),
		Modules: common.VisibleModules(r.catalog, session),
	}, nil
}

// dashboardCountsDataProvider counts the records of the visible resources of the current
// module, or of every visible resource when no module is set
func dashboardCountsDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	session, ok := authorization.SessionFromContext(ctx)
	if !ok {
		return nil, errNoSession
	}

	visible := common.VisibleResources(r.catalog, session)
	if module := ctx.GetString(moduleContextKey); len(module) > 0 {
		var moduleResources []resources.Resource
		for _, resource := range visible {
			if resource.Module == module {
				moduleResources = append(moduleResources, resource)
			}
		}
		visible = moduleResources
	}

	return dashboardCountsDataModel{
		Counts: r.resourceService.Counts(ctx.Request.Context(), session, visible),
	}, nil
}

type frontendComponent struct {
	name         string
	dataProvider frontendComponentDataProvider
}

type frontendComponents []frontendComponent

type frontendComponentDataProvider func(*gin.Context, *frontendRouter) (interface{}, error)
