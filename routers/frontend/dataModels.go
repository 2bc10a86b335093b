package frontend

import (
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers/common"
	"github.com/unicsmcr/bizdash/services"
)

type pageDataModel struct {
	Cfg        config.AppConfig
	Alert      string
	Components map[string]interface{}
	CustomPageData
}

type CustomPageData interface{}

type navbarDataModel struct {
	Email   string
	Name    string
	Roles   []role.UserRole
	Landing string
	Modules []common.ModuleResources
}

type dashboardCountsDataModel struct {
	Counts []services.Count
}

type loginPageDataModel struct {
	Email    string
	Employee bool
}

type modulePageDataModel struct {
	Title     string
	Resources []resources.Resource
}

type tableRow struct {
	ID    string
	Cells []string
}

type tablePageDataModel struct {
	Resource resources.Resource
	Search   string
	Sort     string
	Order    string
	Rows     []tableRow
	Total    int
	Error    string
	// Relogin is set when the backend no longer accepts the session token
	Relogin bool
}

type detailPageDataModel struct {
	Resource resources.Resource
	ID       string
	View     []resources.ViewItem
}

type errorPageDataModel struct {
	Status int
}
