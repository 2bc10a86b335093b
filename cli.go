package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/config"
	"github.com/unicsmcr/bizdash/resources"
	"github.com/unicsmcr/bizdash/routers/common"
	"github.com/unicsmcr/bizdash/services"
	"github.com/unicsmcr/bizdash/upstream"
	"github.com/unicsmcr/bizdash/utils"
	"github.com/unicsmcr/bizdash/utils/export"
	"go.uber.org/zap"
)

const cliSessionID = "cli"

// CLI holds the dependencies of the commands that talk to the backend without a server
type CLI struct {
	Logger          *zap.Logger
	Cfg             *config.AppConfig
	Client          upstream.Client
	ResourceService services.ResourceService
	Catalog         *resources.Catalog
	TimeProvider    utils.TimeProvider
}

// exportOptions are the flags of the export command
type exportOptions struct {
	Email    string
	Password string
	Employee bool
	Search   string
	Sort     string
	Desc     bool
	Format   string
}

// PrintResources writes the catalog as a table to w
func PrintResources(w io.Writer, catalog *resources.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTITLE\tENDPOINT\tROLES")
	for _, resource := range catalog.All() {
		roles := make([]string, 0, len(resource.Roles))
		for _, r := range resource.Roles {
			roles = append(roles, string(r))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", resource.Key(), resource.Title, resource.Endpoint, strings.Join(roles, ","))
	}
	return tw.Flush()
}

// Export logs in to the backend and writes the export of the resource with the given key to w
func (c *CLI) Export(ctx context.Context, w io.Writer, key string, opts exportOptions) error {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 {
		return errors.Wrap(resources.ErrUnknownResource, fmt.Sprintf("%q is not of the form module/name", key))
	}
	resource, err := c.Catalog.Get(parts[0], parts[1])
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return errors.Wrap(err, opts.Format)
	}

	login := c.Client.Login
	if opts.Employee {
		login = c.Client.EmployeeLogin
	}
	result, err := login(ctx, opts.Email, opts.Password)
	if err != nil {
		return errors.Wrap(err, "could not log in to backend")
	}

	session := services.NewSessionFromLogin(cliSessionID, *result, c.TimeProvider.Now(),
		time.Duration(c.Cfg.Auth.SessionLifetime)*time.Second)

	list, err := c.ResourceService.List(ctx, session, resource, services.ListQuery{
		Search: opts.Search,
		Sort:   opts.Sort,
		Desc:   opts.Desc,
	})
	if err != nil {
		_, msg := common.ErrorStatus(err)
		c.Logger.Debug("could not list resource", zap.String("resource", resource.Key()), zap.Error(err))
		return errors.Wrap(err, msg)
	}
	c.Logger.Info("exporting resource", zap.String("resource", resource.Key()), zap.Int("rows", len(list.Rows)))

	if format == export.XLSXFormat {
		return export.XLSX(w, export.SheetName(resource.Title), resource.Fields, list.Rows)
	}
	return export.CSV(w, resource.Fields, list.Rows)
}
