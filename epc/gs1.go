/* Apache v2 license
 * Copyright (C) 2020 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"regexp"

	"github.com/pkg/errors"
)

var (
	elementAIPattern = regexp.MustCompile(`\((\d{2,4})\)`)
	digitsPattern    = regexp.MustCompile(`^\d+$`)
)

// isDigits reports whether s is one or more ASCII digits.
func isDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// CheckDigit returns the GS1 check digit for a string of digits: the value
// appended to GTINs, SSCCs, GLNs, and GRAIs so the weighted digit sum is a
// multiple of 10. Weights alternate 3, 1, 3, ... from the rightmost digit.
func CheckDigit(digits string) (int, error) {
	if digits == "" {
		return 0, errors.New("check digits are not defined for empty strings")
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := digits[len(digits)-1-i]
		if d < '0' || d > '9' {
			return 0, errors.Errorf("check digits are only defined over digits, "+
				"but character %d is %q", len(digits)-1-i, d)
		}
		if i%2 == 0 {
			sum += 3 * int(d-'0')
		} else {
			sum += int(d - '0')
		}
	}
	// mod 10 additive inverse
	return (10 - (sum % 10)) % 10, nil
}

// verifyGS1Key confirms a GS1 key's final character is the check digit of the
// digits before it.
func verifyGS1Key(key string) error {
	if len(key) < 2 {
		return errors.Errorf("GS1 keys have at least two digits, but %q does not", key)
	}
	want, err := CheckDigit(key[:len(key)-1])
	if err != nil {
		return err
	}
	if got := key[len(key)-1]; got != byte('0'+want) {
		return errors.Errorf("%q should have check digit %d, but has %q", key, want, got)
	}
	return nil
}

// parseElementString splits a GS1 element string such as
// "(01)80614141123458(21)6789" into a map of application identifiers to
// values. Values run from their AI's closing parenthesis to the next AI.
func parseElementString(s string) (map[string]string, error) {
	if s == "" {
		return nil, errors.New("element strings cannot be empty")
	}
	locs := elementAIPattern.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 || locs[0][0] != 0 {
		return nil, errors.Errorf("element strings start with a parenthesized AI, "+
			"but this is %q", s)
	}
	elements := make(map[string]string, len(locs))
	for i, loc := range locs {
		ai := s[loc[2]:loc[3]]
		if _, ok := elements[ai]; ok {
			return nil, errors.Errorf("AI (%s) appears more than once", ai)
		}
		end := len(s)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		elements[ai] = s[loc[1]:end]
	}
	return elements, nil
}

// requireElement returns the value present for an AI, or an error naming the
// missing AI.
func requireElement(elements map[string]string, ai string) (string, error) {
	v, ok := elements[ai]
	if !ok {
		return "", errors.Errorf("the element string is missing AI (%s)", ai)
	}
	return v, nil
}

// checkPrefixDigits guards key splitting; every partition table handles
// company prefixes of 6 to 12 digits.
func checkPrefixDigits(n int) error {
	if n < 6 || n > 12 {
		return partitionErrorf(
			"company prefixes must have 6 to 12 digits, but this has %d", n)
	}
	return nil
}

// splitGTIN breaks a GTIN-14 into the company prefix and item reference. The
// indicator digit moves back to the front of the item reference; the check
// digit is verified and dropped.
func splitGTIN(gtin string, companyPrefixDigits int) (string, string, error) {
	if len(gtin) != 14 || !isDigits(gtin) {
		return "", "", errors.Errorf("GTINs have 14 digits, but this is %q", gtin)
	}
	if err := verifyGS1Key(gtin); err != nil {
		return "", "", err
	}
	if err := checkPrefixDigits(companyPrefixDigits); err != nil {
		return "", "", err
	}
	return gtin[1 : 1+companyPrefixDigits],
		gtin[:1] + gtin[1+companyPrefixDigits:13], nil
}

// splitSSCC breaks an SSCC-18 into the company prefix and serial reference.
// The extension digit moves back to the front of the serial reference; the
// check digit is verified and dropped.
func splitSSCC(sscc string, companyPrefixDigits int) (string, string, error) {
	if len(sscc) != 18 || !isDigits(sscc) {
		return "", "", errors.Errorf("SSCCs have 18 digits, but this is %q", sscc)
	}
	if err := verifyGS1Key(sscc); err != nil {
		return "", "", err
	}
	if err := checkPrefixDigits(companyPrefixDigits); err != nil {
		return "", "", err
	}
	return sscc[1 : 1+companyPrefixDigits],
		sscc[:1] + sscc[1+companyPrefixDigits:17], nil
}

// splitGLN breaks a GLN-13 into the company prefix and location reference.
// GLNs have no indicator digit; the check digit is verified and dropped.
func splitGLN(gln string, companyPrefixDigits int) (string, string, error) {
	if len(gln) != 13 || !isDigits(gln) {
		return "", "", errors.Errorf("GLNs have 13 digits, but this is %q", gln)
	}
	if err := verifyGS1Key(gln); err != nil {
		return "", "", err
	}
	if err := checkPrefixDigits(companyPrefixDigits); err != nil {
		return "", "", err
	}
	return gln[:companyPrefixDigits], gln[companyPrefixDigits:12], nil
}

// splitGRAI breaks an AI (8003) value into the company prefix, asset type,
// and serial number. The value is a zero pad digit, then the 13-digit GRAI
// key, then the serial.
func splitGRAI(value string, companyPrefixDigits int) (string, string, string, error) {
	if len(value) < 14 || value[0] != '0' || !isDigits(value[:14]) {
		return "", "", "", errors.Errorf("AI (8003) values start with a zero pad "+
			"digit and the 13-digit GRAI key, but this is %q", value)
	}
	key := value[1:14]
	if err := verifyGS1Key(key); err != nil {
		return "", "", "", err
	}
	if err := checkPrefixDigits(companyPrefixDigits); err != nil {
		return "", "", "", err
	}
	return key[:companyPrefixDigits], key[companyPrefixDigits:12], value[14:], nil
}

// splitGIAI breaks an AI (8004) value into the company prefix and individual
// asset reference. GIAIs carry no check digit.
func splitGIAI(value string, companyPrefixDigits int) (string, string, error) {
	if err := checkPrefixDigits(companyPrefixDigits); err != nil {
		return "", "", err
	}
	if len(value) <= companyPrefixDigits || !isDigits(value[:companyPrefixDigits]) {
		return "", "", errors.Errorf("AI (8004) values start with the company "+
			"prefix followed by the asset reference, but this is %q", value)
	}
	return value[:companyPrefixDigits], value[companyPrefixDigits:], nil
}
