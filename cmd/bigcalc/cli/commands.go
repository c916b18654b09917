package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/bigdecimal/internal/calc"
)

// evalCmd returns the command evaluating a prefix expression.
func evalCmd(cfg *config) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression written in prefix notation",
		Long: "Evaluate an expression written in prefix (Polish) notation.\n\n" +
			"Operators: " + strings.Join(calc.Operators(), " ") + "\n" +
			"Quote the expression if it contains negative numbers.",
		Example: `bigcalc eval "* 10 + 1.23 4.56"
bigcalc eval -a 5 "/ 4 13"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			d, err := calc.New(cfg.Accuracy, cfg.logger).Evaluate(expr)
			if err != nil {
				return err
			}
			cfg.logger.Info("evaluated expression", "expr", expr, "result", d.String())
			return printDecimal(cmd.OutOrStdout(), d, pretty)
		},
	}
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "print the result as mantissa and exponent")

	return cmd
}

// invCmd returns the command printing the reciprocal of a decimal.
func invCmd(cfg *config) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:     "inv X",
		Short:   "Print 1/X computed by long division",
		Example: `bigcalc inv -a 19 4134.6146161`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseArg(cfg, args[0])
			if err != nil {
				return err
			}
			f, err := d.Inv()
			if err != nil {
				return fmt.Errorf("inverting %v: %w", d, err)
			}
			return printDecimal(cmd.OutOrStdout(), f, pretty)
		},
	}
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "print the result as mantissa and exponent")

	return cmd
}

// prettyCmd returns the command printing the mantissa and the exponent of a decimal.
func prettyCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:     "pretty X",
		Short:   "Print X as <mantissa>*e^(<exponent>)",
		Example: `bigcalc pretty -a 3 -- -0.1241124`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseArg(cfg, args[0])
			if err != nil {
				return err
			}
			return printDecimal(cmd.OutOrStdout(), d, true)
		},
	}
}

// cmpCmd returns the command comparing two decimals.
func cmpCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:     "cmp X Y",
		Short:   "Print -1, 0 or 1 if X is less than, equal to or greater than Y",
		Example: `bigcalc cmp 0.312 0.32141`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseArg(cfg, args[0])
			if err != nil {
				return err
			}
			e, err := parseArg(cfg, args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Cmp(e))
			return err
		},
	}
}
