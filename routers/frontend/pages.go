package frontend

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	loginPage  = newFrontendPage("LoginPage", "login.gohtml", nil)
	modulePage = newFrontendPage("ModulePage", "module.gohtml", frontendComponents{navbar, dashboardCounts})
	tablePage  = newFrontendPage("TablePage", "table.gohtml", frontendComponents{navbar})
	detailPage = newFrontendPage("DetailPage", "detail.gohtml", frontendComponents{navbar})
	errorPage  = newFrontendPage("ErrorPage", "error.gohtml", nil)
)

func newFrontendPage(pageName, templateName string, components frontendComponents) frontendPage {
	return frontendPage{
		name:         pageName,
		templateName: templateName,
		components:   components,
	}
}

type frontendPage struct {
	name         string
	templateName string
	components   frontendComponents
}

// componentData runs the data providers of the page's components.
// A failing component is logged and left out of the page.
func (p frontendPage) componentData(ctx *gin.Context, r *frontendRouter) map[string]interface{} {
	data := make(map[string]interface{}, len(p.components))
	for _, component := range p.components {
		componentData, err := component.dataProvider(ctx, r)
		if err != nil {
			r.logger.Warn("could not load page component", zap.String("page", p.name),
				zap.String("component", component.name), zap.Error(err))
			continue
		}
		data[component.name] = componentData
	}
	return data
}

func (r *frontendRouter) renderPage(ctx *gin.Context, status int, page frontendPage, alert string, pageData CustomPageData) {
	ctx.HTML(status, page.templateName, pageDataModel{
		Cfg:            *r.cfg,
		Alert:          alert,
		Components:     page.componentData(ctx, r),
		CustomPageData: pageData,
	})
}

func (r *frontendRouter) renderError(ctx *gin.Context, status int, alert string) {
	r.renderPage(ctx, status, errorPage, alert, errorPageDataModel{Status: status})
	ctx.Abort()
}
