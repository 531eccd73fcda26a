package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/pkg/modarith"
	"github.com/smallyu/go-weierstrass/pkg/residue"
)

func mulModCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mulmod A B",
		Short: "Prints A*B mod the modulus.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, operands, err := parseOperands(opts.modulus, args)
			if err != nil {
				return err
			}
			r := modarith.MulMod(operands[0], operands[1], m)
			opts.logger.Debug("mulmod", zap.Stringer("a", operands[0]), zap.Stringer("b", operands[1]), zap.Stringer("modulus", m))
			fmt.Fprintln(cmd.OutOrStdout(), r.Hex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.modulus, "modulus", "m", "", "Odd modulus (decimal or 0x-hex).")
	return cmd
}

func powModCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "powmod A E",
		Short: "Prints A^E mod the modulus.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, operands, err := parseOperands(opts.modulus, args[:1])
			if err != nil {
				return err
			}
			// The exponent is not a residue and is not reduced.
			e, err := residue.ParseU256(args[1])
			if err != nil {
				return err
			}
			r := modarith.PowMod(operands[0], e, m)
			opts.logger.Debug("powmod", zap.Stringer("a", operands[0]), zap.Stringer("e", e), zap.Stringer("modulus", m))
			fmt.Fprintln(cmd.OutOrStdout(), r.Hex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.modulus, "modulus", "m", "", "Odd modulus (decimal or 0x-hex).")
	return cmd
}

// parseOperands parses the modulus and residues, rejecting even moduli and
// operands that are not reduced.
func parseOperands(modulus string, args []string) (residue.U256, []residue.U256, error) {
	if modulus == "" {
		return residue.U256{}, nil, fmt.Errorf("--modulus is required")
	}
	m, err := residue.ParseU256(modulus)
	if err != nil {
		return residue.U256{}, nil, err
	}
	if m.TrailingZeros() != 0 {
		return residue.U256{}, nil, fmt.Errorf("modulus %s is not odd", m.Hex())
	}

	operands := make([]residue.U256, len(args))
	for i, arg := range args {
		if operands[i], err = parseResidue(arg, m); err != nil {
			return residue.U256{}, nil, err
		}
	}
	return m, operands, nil
}

func parseResidue(s string, m residue.U256) (residue.U256, error) {
	x, err := residue.ParseU256(s)
	if err != nil {
		return residue.U256{}, err
	}
	if x.Big().Cmp(m.Big()) >= 0 {
		return residue.U256{}, fmt.Errorf("%s is not reduced modulo %s", s, m.Hex())
	}
	return x, nil
}
