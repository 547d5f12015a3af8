package bitstring

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ToHex renders a bit string as uppercase hex digits without a prefix.
//
// The bit string is interpreted as a single unsigned integer, so the result
// carries no leading zeros: a 96-bit string of all '0's renders as "0". Use
// FromHex with the original bit length to restore the full width.
func ToHex(s string) (string, error) {
	if len(s) == 0 {
		return "", errors.New("cannot render an empty bit string as hex")
	}
	if err := Validate(s); err != nil {
		return "", err
	}
	n := new(big.Int)
	if _, ok := n.SetString(s, 2); !ok {
		return "", errors.Errorf("unable to parse %q as a bit string", s)
	}
	return strings.ToUpper(n.Text(16)), nil
}

// FromHex parses hex digits as an unsigned integer and renders it as a bit
// string of exactly bitLength bits, restoring any leading zeros the hex form
// dropped.
//
// The input must be bare hex digits: no "0x" prefix, no sign, no spaces.
// Values too large for bitLength bits are an error.
func FromHex(h string, bitLength int) (string, error) {
	if bitLength < 1 {
		return "", errors.Errorf("bit lengths must be >0, but this is %d", bitLength)
	}
	if len(h) == 0 {
		return "", errors.New("cannot parse an empty string as hex")
	}
	n := new(big.Int)
	if _, ok := n.SetString(h, 16); !ok || n.Sign() < 0 {
		return "", errors.Errorf("unable to parse %q as hex digits", h)
	}
	if n.BitLen() > bitLength {
		return "", errors.Errorf("hex value %q needs %d bits, but only %d are available",
			h, n.BitLen(), bitLength)
	}
	s := n.Text(2)
	if len(s) == bitLength {
		return s, nil
	}
	return strings.Repeat("0", bitLength-len(s)) + s, nil
}
