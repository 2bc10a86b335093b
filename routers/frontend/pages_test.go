package frontend

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func Test_pages_use_correct_templates(t *testing.T) {
	assert.Equal(t, "login.gohtml", loginPage.templateName)
	assert.Equal(t, "module.gohtml", modulePage.templateName)
	assert.Equal(t, "table.gohtml", tablePage.templateName)
	assert.Equal(t, "detail.gohtml", detailPage.templateName)
	assert.Equal(t, "error.gohtml", errorPage.templateName)
}

func Test_pages_contain_correct_components(t *testing.T) {
	assert.Equal(t, frontendComponents{navbar, dashboardCounts}.names(), modulePage.components.names())
	assert.Equal(t, frontendComponents{navbar}.names(), tablePage.components.names())
	assert.Equal(t, frontendComponents{navbar}.names(), detailPage.components.names())
	assert.Empty(t, loginPage.components)
}

func Test_componentData__should_leave_out_failing_components(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	page := newFrontendPage("TestPage", "test.gohtml", frontendComponents{
		{
			name: "Working",
			dataProvider: func(*gin.Context, *frontendRouter) (interface{}, error) {
				return "data", nil
			},
		},
		{
			name: "Failing",
			dataProvider: func(*gin.Context, *frontendRouter) (interface{}, error) {
				return nil, errors.New("component err")
			},
		},
	})

	data := page.componentData(setup.testCtx, setup.router)

	assert.Equal(t, map[string]interface{}{"Working": "data"}, data)
}

func Test_navbarDataProvider__should_return_error_without_session(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	_, err := navbarDataProvider(setup.testCtx, setup.router)

	assert.Equal(t, errNoSession, err)
}

func Test_navbarDataProvider__should_return_visible_modules(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()
	setup.withSession(testSession, "/test")

	data, err := navbarDataProvider(setup.testCtx, setup.router)

	assert.NoError(t, err)
	navbarData := data.(navbarDataModel)
	assert.Equal(t, testSession.Email, navbarData.Email)
	assert.Equal(t, "/store", navbarData.Landing)
	if assert.Len(t, navbarData.Modules, 1) {
		assert.Equal(t, "store", navbarData.Modules[0].Name)
	}
}

func (c frontendComponents) names() []string {
	names := make([]string, 0, len(c))
	for _, component := range c {
		names = append(names, component.name)
	}
	return names
}
