package main

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/config/role"
	"github.com/unicsmcr/bizdash/entities"
	mock_services "github.com/unicsmcr/bizdash/mocks/services"
	mock_upstream "github.com/unicsmcr/bizdash/mocks/upstream"
	mock_utils "github.com/unicsmcr/bizdash/mocks/utils"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"go.uber.org/zap"
)

var testLogin = &upstream.LoginResult{Email: "john@doe.com", Roles: []string{"STORE"}, Token: "backend-token"}

type cliTestSetup struct {
	ctrl                *gomock.Controller
	cli                 *CLI
	mockClient          *mock_upstream.MockClient
	mockResourceService *mock_services.MockResourceService
}

func setupCLITest(t *testing.T) *cliTestSetup {
	ctrl := gomock.NewController(t)
	mockClient := mock_upstream.NewMockClient(ctrl)
	mockResourceService := mock_services.NewMockResourceService(ctrl)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	mockTimeProvider.EXPECT().Now().Return(time.Unix(1000, 0)).AnyTimes()

	catalog, err := resources.NewDefaultCatalog()
	assert.NoError(t, err)

	return &cliTestSetup{
		ctrl: ctrl,
		cli: &CLI{
			Logger:          zap.NewNop(),
			Cfg:             &config.AppConfig{Auth: config.AuthConfig{SessionLifetime: 60}},
			Client:          mockClient,
			ResourceService: mockResourceService,
			Catalog:         catalog,
			TimeProvider:    mockTimeProvider,
		},
		mockClient:          mockClient,
		mockResourceService: mockResourceService,
	}
}

func Test_PrintResources__should_print_every_resource(t *testing.T) {
	catalog, err := resources.NewDefaultCatalog()
	assert.NoError(t, err)

	var out bytes.Buffer
	err = PrintResources(&out, catalog)

	assert.NoError(t, err)
	for _, resource := range catalog.All() {
		assert.Contains(t, out.String(), resource.Key())
	}
}

func Test_Export__should_return_error_for_malformed_key(t *testing.T) {
	setup := setupCLITest(t)
	defer setup.ctrl.Finish()

	err := setup.cli.Export(context.Background(), &bytes.Buffer{}, "assets", exportOptions{})

	assert.Equal(t, resources.ErrUnknownResource, errors.Cause(err))
}

func Test_Export__should_return_error_for_unknown_format(t *testing.T) {
	setup := setupCLITest(t)
	defer setup.ctrl.Finish()

	err := setup.cli.Export(context.Background(), &bytes.Buffer{}, "store/assets", exportOptions{Format: "pdf"})

	assert.Error(t, err)
}

func Test_Export__should_return_error_when_login_fails(t *testing.T) {
	setup := setupCLITest(t)
	defer setup.ctrl.Finish()
	setup.mockClient.EXPECT().EmployeeLogin(gomock.Any(), "john@doe.com", "password123").
		Return(nil, &upstream.StatusError{Code: http.StatusUnauthorized}).Times(1)

	err := setup.cli.Export(context.Background(), &bytes.Buffer{}, "store/assets", exportOptions{
		Email:    "john@doe.com",
		Password: "password123",
		Employee: true,
	})

	assert.True(t, errors.Is(err, upstream.ErrUnauthorized))
}

func Test_Export__should_write_csv_of_filtered_rows(t *testing.T) {
	setup := setupCLITest(t)
	defer setup.ctrl.Finish()
	assets, err := setup.cli.Catalog.Get(resources.StoreModule, "assets")
	assert.NoError(t, err)

	setup.mockClient.EXPECT().Login(gomock.Any(), "john@doe.com", "password123").Return(testLogin, nil).Times(1)
	setup.mockResourceService.EXPECT().List(gomock.Any(), gomock.Any(), assets, services.ListQuery{Search: "desk"}).
		DoAndReturn(func(_ context.Context, session entities.Session, _ resources.Resource, _ services.ListQuery) (*services.ListResult, error) {
			assert.Equal(t, "backend-token", session.UpstreamToken)
			assert.Equal(t, []role.UserRole{role.Store}, session.Roles)
			return &services.ListResult{Rows: []entities.Record{{"assetName": "Desk"}}}, nil
		}).Times(1)

	var out bytes.Buffer
	err = setup.cli.Export(context.Background(), &out, "store/assets", exportOptions{
		Email:    "john@doe.com",
		Password: "password123",
		Search:   "desk",
	})

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Desk")
}

func Test_newRootCommand__should_register_subcommands(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"serve", "resources", "export"} {
		sub, _, err := cmd.Find([]string{name})
		assert.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}
