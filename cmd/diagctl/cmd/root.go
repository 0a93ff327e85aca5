package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/ai-diag-assistant/internal/session"
)

type options struct {
	serverURL string
	statePath string
}

// NewRootCmd builds a fresh command tree; tests get their own flags.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "diagctl",
		Short: "Automotive diagnostics assistant CLI",
		Long: `diagctl sends a vehicle symptom description to the diagnostics service
and prints the structured answer.

Examples:
  diagctl ask "2015 Subaru Outback, 145k miles, P0171, rough idle when cold"
  echo "grinding noise when braking" | diagctl ask
  diagctl session`,
		SilenceUsage: true,
	}

	defaultURL := os.Getenv("DIAG_SERVER_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	root.PersistentFlags().StringVarP(&opts.serverURL, "server", "s", defaultURL, "diagnostics server URL (env DIAG_SERVER_URL)")
	root.PersistentFlags().StringVar(&opts.statePath, "state", "", "state file holding the session id (default <user config dir>/ai-diag/state.json)")

	root.AddCommand(newAskCmd(opts), newSessionCmd(opts))
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) storage() (*session.FileStorage, error) {
	path := o.statePath
	if path == "" {
		var err error
		if path, err = session.DefaultStatePath(); err != nil {
			return nil, err
		}
	}
	return session.NewFileStorage(path), nil
}
