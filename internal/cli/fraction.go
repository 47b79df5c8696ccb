package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thatkingore/mathematical-modelling/internal/usecase"
)

func fractionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "fraction",
		Short: "Exact fraction arithmetic",
	}

	c.AddCommand(fractionSimplifyCmd(), fractionCompareCmd())
	return c
}

func fractionSimplifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <n/d>",
		Short: "Reduce a fraction to lowest terms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := usecase.NewCompareFractions().Simplify(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f)
			return nil
		},
	}
}

func fractionCompareCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "compare <a/b> <c/d>",
		Short: "Order two fractions exactly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := usecase.NewCompareFractions().Execute(args[0], args[1])
			if err != nil {
				return err
			}
			return printComparison(cmd.OutOrStdout(), out, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
