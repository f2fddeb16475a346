package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/markis/lai/internal/apperr"
	"github.com/spf13/cobra"
)

// report writes err to stderr. Verbatim errors are printed as they are and
// everything else gets an "Error:" prefix. Usage errors are followed by the
// usage text when cmd is known.
func report(env Env, cmd *cobra.Command, err error) {
	prefix := color.New(color.FgRed, color.Bold)
	if env.Color {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}

	if apperr.IsVerbatim(err) {
		fmt.Fprintln(env.Stderr, err)
	} else {
		fmt.Fprintf(env.Stderr, "%s %v\n", prefix.Sprint("Error:"), err)
	}

	if apperr.IsUsage(err) && cmd != nil {
		_ = cmd.Usage()
	}
}
