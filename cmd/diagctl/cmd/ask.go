package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/ai-diag-assistant/internal/client"
	"github.com/Vovarama1992/ai-diag-assistant/internal/session"
)

func newAskCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [description...]",
		Short: "Ask for diagnostic suggestions",
		Long: `Ask sends one description per invocation. Without arguments the
description is read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				prompt = string(b)
			}
			if strings.TrimSpace(prompt) == "" {
				return errors.New("empty description")
			}

			store, err := opts.storage()
			if err != nil {
				return err
			}
			sessionID, err := session.GetOrCreate(store)
			if err != nil {
				return err
			}

			answer, err := client.New(opts.serverURL, nil).Ask(cmd.Context(), prompt, sessionID)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}
}
