/*
 * INTEL CONFIDENTIAL
 * Copyright (2019) Intel Corporation.
 *
 * The source code contained or described herein and all documents related to the source code ("Material")
 * are owned by Intel Corporation or its suppliers or licensors. Title to the Material remains with
 * Intel Corporation or its suppliers and licensors. The Material may contain trade secrets and proprietary
 * and confidential information of Intel Corporation and its suppliers and licensors, and is protected by
 * worldwide copyright and trade secret laws and treaty provisions. No part of the Material may be used,
 * copied, reproduced, modified, published, uploaded, posted, transmitted, distributed, or disclosed in
 * any way without Intel/'s prior express written permission.
 * No license under any patent, copyright, trade secret or other intellectual property right is granted
 * to or conferred upon you by disclosure or delivery of the Materials, either expressly, by implication,
 * inducement, estoppel or otherwise. Any license under such intellectual property rights must be express
 * and approved by Intel in writing.
 * Unless otherwise agreed by Intel in writing, you may not remove or alter this notice or any other
 * notice embedded in Materials by Intel or Intel's suppliers or licensors in any way.
 */

// Package measure provides a minimal exact fixed-point Decimal, used
// wherever this module decodes a GS1 implied-decimal field (weight, price,
// or a currency amount) into an exact value without floating-point error.
package measure

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// Decimal is an exact fixed-point number: Unscaled * 10^-Scale.
type Decimal struct {
	Unscaled int64
	Scale    uint8
}

// NewDecimalFromDigits builds a Decimal from a string of decimal digits,
// treating the rightmost scale digits as the fractional part.
func NewDecimalFromDigits(digits string, scale uint8) (Decimal, error) {
	if digits == "" {
		return Decimal{}, errors.New("no digits given")
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Decimal{}, errors.Wrapf(err, "decimal value %q is not numeric", digits)
	}
	return Decimal{Unscaled: n, Scale: scale}, nil
}

// Float64 returns an approximate float64 representation. It exists for
// callers that need to do further arithmetic; String is exact.
func (d Decimal) Float64() float64 {
	r := new(big.Rat).SetFrac(big.NewInt(d.Unscaled), pow10(d.Scale))
	f, _ := r.Float64()
	return f
}

// String renders the exact decimal value, e.g. Decimal{Unscaled: 195, Scale: 3} -> "0.195".
func (d Decimal) String() string {
	if d.Scale == 0 {
		return strconv.FormatInt(d.Unscaled, 10)
	}
	neg := d.Unscaled < 0
	u := d.Unscaled
	if neg {
		u = -u
	}
	s := strconv.FormatInt(u, 10)
	for len(s) <= int(d.Scale) {
		s = "0" + s
	}
	whole, frac := s[:len(s)-int(d.Scale)], s[len(s)-int(d.Scale):]
	out := whole + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Money pairs a Decimal amount with its ISO 4217 alphabetic currency code.
type Money struct {
	Amount   Decimal
	Currency string
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount)
}
