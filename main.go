package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/unicsmcr/bizdash/resources"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bizdash",
		Short:         "Business dashboard in front of the REST backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(newServeCommand(), newResourcesCommand(), newExportCommand())
	return rootCmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	server, cleanup, err := InitializeServer()
	if err != nil {
		return errors.Wrap(err, "could not create server")
	}
	defer cleanup()

	log.Printf("starting server at: localhost:%s", server.Port)
	err = server.Run(fmt.Sprintf(":%s", server.Port))
	if err != nil {
		return errors.Wrap(err, "could not start server")
	}
	return nil
}

func newResourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "Print the resources bizdash can display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := resources.NewDefaultCatalog()
			if err != nil {
				return err
			}
			return PrintResources(cmd.OutOrStdout(), catalog)
		},
	}
}

func newExportCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export <module/name>",
		Short: "Log in to the backend and write the export of a resource to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := InitializeCLI()
			if err != nil {
				return errors.Wrap(err, "could not set up export")
			}
			return cli.Export(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "email to log in to the backend with")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password to log in to the backend with")
	cmd.Flags().BoolVar(&opts.Employee, "employee", false, "use the employee login")
	cmd.Flags().StringVar(&opts.Search, "search", "", "only export rows matching the search term")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "field to sort rows by")
	cmd.Flags().BoolVar(&opts.Desc, "desc", false, "sort in descending order")
	cmd.Flags().StringVar(&opts.Format, "format", "csv", "export format, csv or xlsx")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Printf("bizdash: %s", err)
		os.Exit(1)
	}
}
