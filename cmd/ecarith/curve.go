package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/residue"
	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// identityArg names the point at infinity on the command line.
const identityArg = "inf"

func curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "Lists the named curves.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range curves.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func curveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Operations on a short Weierstrass curve.",
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.curve, "curve", "c", "", "Named curve (see 'ecarith curves'). Defaults to $"+curveEnv+".")
	flags.StringVarP(&opts.modulus, "modulus", "m", "", "Field modulus, when no named curve is used.")
	flags.StringVar(&opts.a, "a", "0", "Coefficient of x, when no named curve is used.")
	flags.StringVar(&opts.b, "b", "0", "Constant coefficient, when no named curve is used.")

	cmd.AddCommand(
		curveInfoCmd(opts),
		curveContainsCmd(opts),
		curveAddCmd(opts),
		curveFromInvariantCmd(opts),
	)
	return cmd
}

func curveInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Prints the curve equation, discriminant and j-invariant.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, params, err := opts.resolveCurve()
			if err != nil {
				return err
			}
			printCurve(cmd, c)
			if params != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "generator: %v\n", params.Generator())
			}
			return nil
		},
	}
}

func curveContainsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "contains X Y | G | inf",
		Short: "Reports whether a point lies on the curve.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, params, err := opts.resolveCurve()
			if err != nil {
				return err
			}
			p, rest, err := parsePoint(args, c.Modulus(), params)
			if err != nil {
				return err
			}
			if len(rest) != 0 {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.ContainsPoint(p))
			return nil
		},
	}
}

func curveAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add P Q",
		Short: "Adds two points. A point is 'X Y', 'G' for the generator or 'inf'.",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, params, err := opts.resolveCurve()
			if err != nil {
				return err
			}
			lhs, rest, err := parsePoint(args, c.Modulus(), params)
			if err != nil {
				return err
			}
			rhs, rest, err := parsePoint(rest, c.Modulus(), params)
			if err != nil {
				return err
			}
			if len(rest) != 0 {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
			}

			for _, p := range []weierstrass.Point[residue.U256]{lhs, rhs} {
				if !c.ContainsPoint(p) {
					opts.logger.Warn("point is not on the curve", zap.Stringer("point", p), zap.Stringer("curve", c))
				}
			}
			sum := c.AddPoints(lhs, rhs)
			opts.logger.Debug("added points", zap.Stringer("lhs", lhs), zap.Stringer("rhs", rhs), zap.Stringer("sum", sum))
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}

func curveFromInvariantCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "from-invariant J",
		Short: "Builds a curve over --modulus with j-invariant J.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, operands, err := parseOperands(opts.modulus, args)
			if err != nil {
				return err
			}
			c, err := weierstrass.FromInvariant(m, operands[0])
			if err != nil {
				return err
			}
			printCurve(cmd, c)
			return nil
		},
	}
}

func printCurve(cmd *cobra.Command, c *weierstrass.Curve[residue.U256]) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c)
	fmt.Fprintf(out, "discriminant: %v\n", c.Discriminant())
	fmt.Fprintf(out, "j-invariant: %v\n", c.JInvariant())
}

// resolveCurve builds the curve selected by --curve, $WEIER_CURVE, or the
// explicit --modulus, --a and --b flags, in that order. params is nil for
// explicit curves.
func (o *options) resolveCurve() (*weierstrass.Curve[residue.U256], *curves.Params, error) {
	name := o.curve
	if name == "" && o.modulus == "" {
		name = os.Getenv(curveEnv)
	}

	if name != "" {
		params, err := curves.Lookup(name)
		if err != nil {
			return nil, nil, err
		}
		c, err := params.Curve()
		if err != nil {
			return nil, nil, err
		}
		o.logger.Debug("using named curve", zap.String("name", params.Name))
		return c, params, nil
	}

	m, coeffs, err := parseOperands(o.modulus, []string{o.a, o.b})
	if err != nil {
		return nil, nil, err
	}
	c, err := weierstrass.FromCoeffs(m, coeffs[0], coeffs[1])
	if err != nil {
		return nil, nil, err
	}
	return c, nil, nil
}

// parsePoint consumes one point from args and returns the remaining
// arguments.
func parsePoint(args []string, m residue.U256, params *curves.Params) (weierstrass.Point[residue.U256], []string, error) {
	var none weierstrass.Point[residue.U256]
	if len(args) == 0 {
		return none, nil, fmt.Errorf("missing point")
	}

	switch strings.ToLower(args[0]) {
	case identityArg:
		return weierstrass.Identity[residue.U256](), args[1:], nil
	case "g":
		if params == nil {
			return none, nil, fmt.Errorf("the generator is only known for named curves")
		}
		return params.Generator(), args[1:], nil
	}

	if len(args) < 2 {
		return none, nil, fmt.Errorf("point %q needs both coordinates", args[0])
	}
	x, err := parseResidue(args[0], m)
	if err != nil {
		return none, nil, err
	}
	y, err := parseResidue(args[1], m)
	if err != nil {
		return none, nil, err
	}
	return weierstrass.Affine(x, y), args[2:], nil
}
