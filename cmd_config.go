package main

import (
	"fmt"

	"github.com/Rshep3087/pocketbook/config"
	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command for the TOML configuration file.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration file commands",
		Annotations: map[string]string{
			skipStoreAnnotation: "true",
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with the defaults",
		Long: `Write a TOML configuration file with the default settings.

The default location is $XDG_CONFIG_HOME/pocketbook/pocketbook.toml.`,
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			skipStoreAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.DefaultFilePath()
				if err != nil {
					return err
				}
				path = p
			}
			force, _ := cmd.Flags().GetBool("force")

			if err := config.Write(path, config.Default(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipStoreAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := validateOutputFormat(cmd)
			if err != nil {
				return err
			}
			if outputFormat == jsonOutputFormat {
				return outputJSON(cmd, a.cfg)
			}

			view := config.New()
			view.SetConfig(a.cfg)
			tbl := createStyledTable("Setting", "Value", "Description")
			for _, row := range view.Rows() {
				tbl.Row(row...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}
	addOutputFlag(showCmd)

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
