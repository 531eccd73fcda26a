// Command ecarith evaluates modular arithmetic and short Weierstrass curve
// operations on 256-bit residues.
//
//	ecarith mulmod 3 5 --modulus 11
//	ecarith powmod 2 0x10 --modulus 0x8000000000000000000000000000000000000000000000000000000000000431
//	ecarith curve info --curve secp256k1
//	ecarith curve add G G --curve p256
//	ecarith curve from-invariant 5 --modulus 1009
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
