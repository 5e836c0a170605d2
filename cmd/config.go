package cmd

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml" //cspell:ignore goccy
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func configCmd[S any](load func() (S, error)) *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "show the settings resolved from the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := load()
			if err != nil {
				return err
			}
			return SettingsTable(cmd.OutOrStdout(), settings)
		},
	}
	cfg.AddCommand(&cobra.Command{
		Use:   "yaml",
		Short: "show the resolved settings as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := load()
			if err != nil {
				return err
			}
			if err := yaml.NewEncoder(cmd.OutOrStdout()).Encode(settings); err != nil {
				return fmt.Errorf("error writing settings: %w", err)
			}
			return nil
		},
	})
	return cfg
}

// SettingsTable renders settings one per row, in struct field order.
func SettingsTable(out io.Writer, settings any) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	var parsed yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(content, &parsed, yaml.UseOrderedMap()); err != nil {
		return fmt.Errorf("error decoding settings: %w", err)
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Setting", "Value"})
	for _, item := range parsed {
		tw.AppendRow(table.Row{item.Key, item.Value})
	}
	tw.Render()
	return nil
}
