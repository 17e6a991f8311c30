package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "console-gateway",
	Short: "Administrative console gateway for the Biblioteca CPE backend",
	Long: `console-gateway fronts the Biblioteca CPE library backend for the
administrative console: it owns login sessions, shapes the list views
(filtering, sorting, debounced search) and forwards every mutation to the
backend. Usage:

	console-gateway serve
`,
}

// Execute runs the root command; called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
