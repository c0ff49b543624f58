package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/ui/prompt"
)

// cliSession identifies the CLI as the requesting session in the permission
// flow. Request ids start at 1; the CLI issues a single request per run.
const cliSession = entity.SessionHandle("cli")

// NewAskCmd creates the ask command: the full permission request flow with
// the terminal decision surface attached.
func NewAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <origin>",
		Short: "Run the permission request flow for an origin",
		Long: `Runs the same flow a page triggers with Notification.requestPermission():
origins with an existing decision or a decisive default policy complete
immediately; everything else gets an interactive prompt whose answer is
recorded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			origin, err := entity.ParseOrigin(args[0])
			if err != nil {
				return err
			}
			return withApp(func(app *App) error {
				app.Requests.SetPrompter(prompt.New())

				return app.WithSync(func(ctx context.Context) error {
					if err := app.Origins.InitCache(ctx); err != nil {
						return fmt.Errorf("failed to initialize permission cache: %w", err)
					}

					app.Requests.RequestPermission(ctx, origin, cliSession, 1)
					if err := app.Sync.Flush(ctx); err != nil {
						return err
					}

					fmt.Printf("%s: %s\n", origin, app.Requests.QueryPermission(origin))
					return nil
				})
			})
		},
	}
}
