package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/ai-diag-assistant/internal/session"
)

func newSessionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Print the session id, creating it on first use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.storage()
			if err != nil {
				return err
			}
			id, err := session.GetOrCreate(store)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}
