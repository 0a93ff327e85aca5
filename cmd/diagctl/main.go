// Command diagctl asks the diagnostics service from a terminal. It keeps its
// session id in a local state file, like the browser keeps it in
// localStorage.
package main

import (
	"os"

	"github.com/Vovarama1992/ai-diag-assistant/cmd/diagctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
