package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for webnotify.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "webnotify",
		Short: "Desktop-notification permission service",
		Long: `webnotify manages per-origin desktop-notification permissions for a
WebKit browser: the allowed and denied origin lists, the default policy,
and the interactive permission request flow.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("webnotify %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewOriginsCmd())
	rootCmd.AddCommand(NewPolicyCmd())
	rootCmd.AddCommand(NewAskCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// withApp opens the application, runs fn and closes it again, reporting close
// failures on stderr without masking fn's error.
func withApp(fn func(app *App) error) error {
	app, err := NewApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", closeErr)
		}
	}()
	return fn(app)
}
