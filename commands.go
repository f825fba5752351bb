package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/propkit/propkit/inference"
	"github.com/propkit/propkit/logic"
	"github.com/propkit/propkit/ruleset"
	"github.com/propkit/propkit/server"
	"github.com/propkit/propkit/truthtable"
)

var (
	rulesPath   string
	domain      string
	factList    []string
	atomList    []string
	filterText  string
	goalAtom    string
	sharedGuard bool
	exportPath  string
	serveAddr   string
)

func loadDomain() ([]inference.Rule, error) {
	if rulesPath == "" {
		return nil, fmt.Errorf("no rule set given, use --rules")
	}
	doc, err := ruleset.LoadFile(rulesPath)
	if err != nil {
		return nil, err
	}
	return ruleset.Domain(doc, domain)
}

var parseCmd = &cobra.Command{
	Use:   "parse <formula>",
	Short: "Parse a formula and print its canonical form and atoms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := logic.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), f)
		fmt.Fprintf(cmd.OutOrStdout(), "atoms: %s\n", strings.Join(logic.Atoms(f), ", "))
		return nil
	},
}

var tableCmd = &cobra.Command{
	Use:   "table <formula>...",
	Short: "Print the truth table of one or more formulas",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formulas := make([]truthtable.NamedFormula, len(args))
		for i, text := range args {
			f, err := logic.Parse(text)
			if err != nil {
				return err
			}
			name := "F"
			if len(args) > 1 {
				name = fmt.Sprintf("F%d", i+1)
			}
			formulas[i] = truthtable.NamedFormula{Name: name, Formula: f}
		}
		var atoms []string
		if cmd.Flags().Changed("atoms") {
			atoms = atomList
		}
		var table truthtable.Table
		if filterText != "" {
			filter, err := logic.Parse(filterText)
			if err != nil {
				return err
			}
			table = truthtable.GenerateFiltered(formulas, atoms, truthtable.NamedFormula{Name: "Filter", Formula: filter})
		} else {
			table = truthtable.Generate(formulas, atoms)
		}
		renderTable(cmd.OutOrStdout(), table)
		return nil
	},
}

var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Derive new facts from a rule set by forward chaining",
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := loadDomain()
		if err != nil {
			return err
		}
		result := inference.ForwardChain(inference.NewFactSet(factList...), rules)
		out := cmd.OutOrStdout()
		for _, step := range result.Steps {
			fmt.Fprintln(out, step.Explanation)
		}
		if len(result.Steps) == 0 {
			fmt.Fprintln(out, "No rules fired.")
		}
		fmt.Fprintf(out, "Final facts: %s\n", strings.Join(result.FinalFacts.Names(), ", "))
		for _, c := range result.Contradictions {
			fmt.Fprintf(out, "Contradiction: %s\n", c.Message)
		}
		return nil
	},
}

var backwardCmd = &cobra.Command{
	Use:   "backward",
	Short: "Prove a goal atom by backward chaining and print the proof tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		if goalAtom == "" {
			return fmt.Errorf("no goal given, use --goal")
		}
		rules, err := loadDomain()
		if err != nil {
			return err
		}
		guard := inference.GuardPerPath
		if sharedGuard {
			guard = inference.GuardShared
		}
		proof := inference.BackwardChainGuard(goalAtom, inference.NewFactSet(factList...), rules, guard)
		renderProof(cmd.OutOrStdout(), proof, 0)
		return nil
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List a domain's rules, or export them as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := loadDomain()
		if err != nil {
			return err
		}
		if exportPath != "" {
			return exportRules(exportPath, domain, rules)
		}
		renderRules(cmd.OutOrStdout(), rules)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reasoning API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ruleSets := make(map[string][]inference.Rule)
		if rulesPath != "" {
			doc, err := ruleset.LoadFile(rulesPath)
			if err != nil {
				return err
			}
			for name := range doc {
				rules, err := ruleset.Domain(doc, name)
				if err != nil {
					return err
				}
				ruleSets[name] = rules
			}
		}
		return server.New(ruleSets, nil).Run(serveAddr)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{forwardCmd, backwardCmd, rulesCmd} {
		cmd.Flags().StringVar(&rulesPath, "rules", "", "rule set file (.json, .yaml)")
		cmd.Flags().StringVar(&domain, "domain", "", "rule set domain to use")
	}
	forwardCmd.Flags().StringSliceVar(&factList, "facts", nil, "initial facts (comma-separated)")
	backwardCmd.Flags().StringSliceVar(&factList, "facts", nil, "known facts (comma-separated)")
	backwardCmd.Flags().StringVar(&goalAtom, "goal", "", "goal atom to prove")
	backwardCmd.Flags().BoolVar(&sharedGuard, "shared-guard", false,
		"share the cycle guard across the whole search instead of per path")
	tableCmd.Flags().StringSliceVar(&atomList, "atoms", nil, "explicit atom order (comma-separated)")
	tableCmd.Flags().StringVar(&filterText, "filter", "", "only keep rows where this formula holds")
	rulesCmd.Flags().StringVar(&exportPath, "export", "", "write the domain's rules to this JSON file")
	serveCmd.Flags().StringVar(&rulesPath, "rules", "", "rule set file (.json, .yaml)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}
