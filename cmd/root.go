package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fastcat.org/go/workshop/instance"
)

func Root[S any](app App[S]) *cobra.Command {
	root := &cobra.Command{
		Use:   instance.AppName(),
		Short: app.Short,
		Long: fmt.Sprintf("%s version %s, built with %s\n\n%s",
			instance.AppName(), instance.Version(), instance.GoVersion(), app.Short,
		),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       instance.Version(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			instance.CheckLockedDown()
			settings, err := app.Load()
			if err != nil {
				return err
			}
			return app.Serve(cmd.Context(), settings, slog.Default())
		},
	}
	root.AddCommand(configCmd(app.Load))
	return root
}
