package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webnotify/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the configuration JSON schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := config.SchemaJSON()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	configCmd.AddCommand(pathCmd, schemaCmd)
	return configCmd
}
