package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/arith"
)

var (
	precision      int
	legacyValidate bool
)

func main() {
	root := &cobra.Command{
		Use:   "arith <expression>",
		Short: "Evaluate an arithmetic expression",
		Long: "Evaluate an arithmetic expression containing decimal numbers,\n" +
			"parentheses, and the operators +, -, * and /.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			out, err := arith.Evaluate(args[0], &arith.EvalOptions{
				Precision:               precision,
				DisableLeadingPairCheck: legacyValidate,
			})
			if err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}

	root.Flags().IntVarP(&precision, "precision", "p", 4, "decimal places in the result")
	root.Flags().BoolVar(&legacyValidate, "legacy-validate", false, "skip the adjacency check on the first character pair")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
