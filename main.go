// Command propkit is a propositional-logic reasoning toolkit: it parses
// boolean formulas, prints truth tables, derives facts by forward chaining
// over a rule set, proves goals by backward chaining, and can serve the
// same operations over HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "propkit",
	Short: "Propositional-logic reasoning toolkit",
	Long: `propkit parses boolean formulas, enumerates truth tables and runs
rule-based inference: forward chaining derives new facts until a fixpoint,
backward chaining builds a proof tree for a goal atom.

Rule sets are JSON or YAML documents mapping a domain name to rule records:

  {"medical": [{"id": "R1", "premise": "Fever AND Cough",
                "conclusion": "Flu", "text": "Classic flu"}]}`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(parseCmd, tableCmd, forwardCmd, backwardCmd, rulesCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "propkit: %v\n", err)
		os.Exit(1)
	}
}
