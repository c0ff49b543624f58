package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// NewPolicyCmd creates the policy command group for the profile-wide default.
func NewPolicyCmd() *cobra.Command {
	policyCmd := &cobra.Command{
		Use:   "policy",
		Short: "Manage the default notification policy",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the default policy",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(func(app *App) error {
				policy, err := app.Origins.DefaultPolicy(app.Context())
				if err != nil {
					return fmt.Errorf("failed to read default policy: %w", err)
				}
				fmt.Println(policy)
				return nil
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <allow|block|ask>",
		Short: "Set the default policy",
		Long: `Sets the policy applied to origins with no explicit decision.
Setting "ask" restores the factory default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			policy, err := entity.ParsePermissionState(args[0])
			if err != nil {
				return err
			}
			return withApp(func(app *App) error {
				return app.WithSync(func(ctx context.Context) error {
					if err := app.Origins.SetDefaultPolicy(ctx, policy); err != nil {
						return err
					}
					fmt.Printf("Default policy set to %s\n", entity.NormalizePolicy(string(policy)))
					return nil
				})
			})
		},
	}

	policyCmd.AddCommand(getCmd, setCmd)
	return policyCmd
}
