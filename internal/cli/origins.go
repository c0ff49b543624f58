package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// NewOriginsCmd creates the origins command group: the management surface for
// the allowed and denied origin lists.
func NewOriginsCmd() *cobra.Command {
	originsCmd := &cobra.Command{
		Use:   "origins",
		Short: "Manage per-origin notification decisions",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List allowed and denied origins",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(func(app *App) error {
				ctx := app.Context()

				allowed, err := app.Origins.Allowed(ctx)
				if err != nil {
					return fmt.Errorf("failed to list allowed origins: %w", err)
				}
				denied, err := app.Origins.Denied(ctx)
				if err != nil {
					return fmt.Errorf("failed to list denied origins: %w", err)
				}
				policy, err := app.Origins.DefaultPolicy(ctx)
				if err != nil {
					return fmt.Errorf("failed to read default policy: %w", err)
				}

				fmt.Printf("Default policy: %s\n\n", policy)
				printOriginList("Allowed", allowed)
				printOriginList("Denied", denied)
				return nil
			})
		},
	}

	allowCmd := &cobra.Command{
		Use:   "allow <origin>",
		Short: "Allow notifications for an origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return decideOrigin(args[0], true)
		},
	}

	denyCmd := &cobra.Command{
		Use:   "deny <origin>",
		Short: "Deny notifications for an origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return decideOrigin(args[0], false)
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset <origin>",
		Short: "Forget the decision for an origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			origin, err := entity.ParseOrigin(args[0])
			if err != nil {
				return err
			}
			return withApp(func(app *App) error {
				return app.WithSync(func(ctx context.Context) error {
					if err := app.Origins.ResetOrigin(ctx, origin); err != nil {
						return err
					}
					fmt.Printf("Reset %s\n", origin)
					return nil
				})
			})
		},
	}

	resetAllCmd := &cobra.Command{
		Use:   "reset-all",
		Short: "Forget every per-origin decision",
		Long:  "Clears both origin lists. The default policy is untouched.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(func(app *App) error {
				return app.WithSync(func(ctx context.Context) error {
					if err := app.Origins.ResetAll(ctx); err != nil {
						return err
					}
					fmt.Println("Reset all origin decisions")
					return nil
				})
			})
		},
	}

	originsCmd.AddCommand(listCmd, allowCmd, denyCmd, resetCmd, resetAllCmd)
	return originsCmd
}

func decideOrigin(raw string, allow bool) error {
	origin, err := entity.ParseOrigin(raw)
	if err != nil {
		return err
	}
	return withApp(func(app *App) error {
		return app.WithSync(func(ctx context.Context) error {
			if allow {
				if err := app.Origins.GrantPermission(ctx, origin); err != nil {
					return err
				}
				fmt.Printf("Allowed %s\n", origin)
				return nil
			}
			if err := app.Origins.DenyPermission(ctx, origin); err != nil {
				return err
			}
			fmt.Printf("Denied %s\n", origin)
			return nil
		})
	})
}

func printOriginList(label string, origins []entity.Origin) {
	fmt.Printf("%s (%d):\n", label, len(origins))
	if len(origins) == 0 {
		fmt.Println("  (none)")
	}
	for _, o := range origins {
		fmt.Printf("  %s\n", o)
	}
	fmt.Println()
}
