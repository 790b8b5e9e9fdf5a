package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaleido-lang/kaleido/internal/kaleido"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kaleido [script]",
	Short: "Parser front end for the Kaleido toy language",
	Long: `kaleido tokenizes and parses Kaleido source into syntax trees.

With no argument it reads top-level forms interactively from standard input;
with a script argument it parses the given file. Forms are parsed and
reported, never evaluated.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		reporter := kaleido.NewSimpleReporter(os.Stderr)
		session := kaleido.NewSession(os.Stdout, reporter, verbose)
		if len(args) == 0 {
			session.Run(os.Stdin, true)
			return nil
		}
		return runFile(args[0], session, reporter)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the syntax tree of each parsed form")
}

func runFile(fpath string, session *kaleido.Session, reporter kaleido.Reporter) error {
	file, err := os.Open(fpath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	session.Run(file, false)
	if reporter.HadError() {
		os.Exit(65)
	}
	return nil
}
