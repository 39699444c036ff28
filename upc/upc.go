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

// Package upc decodes UPC-A and its zero-suppressed UPC-E form, and
// converts between the two using the standard digit-insertion table.
package upc

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
)

// Format distinguishes the full 12-digit UPC-A from the zero-suppressed
// UPC-E form.
type Format int

const (
	unknownFormat Format = iota
	// FormatA is the full 12-digit UPC-A.
	FormatA
	// FormatE is the zero-suppressed 6, 7, or 8-digit UPC-E form.
	FormatE
)

func (f Format) String() string {
	switch f {
	case FormatA:
		return "UPC-A"
	case FormatE:
		return "UPC-E"
	default:
		return "unknown"
	}
}

// Upc is a parsed UPC-A or UPC-E value.
type Upc struct {
	// Value is the input with surrounding whitespace trimmed, at its
	// original length.
	Value string
	Format Format
	// NumberSystem is the leading digit: '0' or '1' for UPC-E (the only
	// two systems UPC-E can represent), otherwise whatever UPC-A carries.
	NumberSystem byte
	// CheckDigit is always populated, even for the 6 and 7-digit UPC-E
	// forms that don't carry one themselves: it's recovered by expanding
	// to the equivalent UPC-A.
	CheckDigit byte
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Parse validates value as a UPC-A (12 digits) or UPC-E (6, 7, or 8 digits)
// and decodes it.
//
// A 6-digit value is a bare UPC-E core with number system '0' assumed; a
// 7-digit value is number-system-prefixed with no check digit; an 8-digit
// value carries both, and Parse verifies the check digit against the
// value's UPC-A expansion.
func Parse(value string) (*Upc, error) {
	value = strings.TrimSpace(value)

	switch len(value) {
	case 12:
		if !isAllDigits(value) {
			return nil, scanerr.NewParseError(value, "UPC-A must be 12 decimal digits")
		}
		if err := checkdigit.Verify(value); err != nil {
			return nil, err
		}
		return &Upc{Value: value, Format: FormatA, NumberSystem: value[0], CheckDigit: value[11]}, nil

	case 6, 7, 8:
		numberSystem := byte('0')
		core := value
		var givenCheck byte
		hasCheck := false

		switch len(value) {
		case 7:
			numberSystem, core = value[0], value[1:]
		case 8:
			numberSystem, core, givenCheck, hasCheck = value[0], value[1:7], value[7], true
		}
		if !isAllDigits(core) || len(core) != 6 {
			return nil, scanerr.NewParseError(value, "UPC-E core must be 6 decimal digits")
		}

		upcA, err := ExpandUpcE(numberSystem, core)
		if err != nil {
			return nil, scanerr.WrapParseError(err, value, "invalid UPC-E")
		}
		checkDigit := upcA[11]
		if hasCheck && checkDigit != givenCheck {
			return nil, scanerr.NewChecksumError(value, string(checkDigit), string(givenCheck))
		}
		return &Upc{Value: value, Format: FormatE, NumberSystem: numberSystem, CheckDigit: checkDigit}, nil

	default:
		return nil, scanerr.NewParseError(value, "UPC must be 6, 7, 8, or 12 digits")
	}
}

// AsUpcA returns u in full 12-digit UPC-A form, expanding it if u is UPC-E.
func (u *Upc) AsUpcA() (string, error) {
	if u.Format == FormatA {
		return u.Value, nil
	}
	var core string
	switch len(u.Value) {
	case 8:
		core = u.Value[1:7]
	case 7:
		core = u.Value[1:]
	default:
		core = u.Value
	}
	return ExpandUpcE(u.NumberSystem, core)
}

// AsUpcE returns u in normalized 8-digit UPC-E form (number system, 6-digit
// core, check digit), compressing it if u is UPC-A. It fails if u is a
// UPC-A value whose manufacturer/product split doesn't fit any of the four
// standard zero-suppression patterns.
func (u *Upc) AsUpcE() (string, error) {
	if u.Format == FormatE {
		switch len(u.Value) {
		case 8:
			return u.Value, nil
		case 7:
			return u.Value + string(u.CheckDigit), nil
		default:
			return string(u.NumberSystem) + u.Value + string(u.CheckDigit), nil
		}
	}
	return CompressUpcA(u.Value)
}

// ExpandUpcE expands a UPC-E number system digit and 6-digit core into its
// equivalent full 12-digit UPC-A, computing the check digit along the way.
//
// The expansion follows the standard published digit-insertion table, keyed
// on the core's last digit:
//
//	last digit 0, 1, or 2: manufacturer = d1 d2 last 0 0, product = 00 d3 d4 d5
//	last digit 3:          manufacturer = d1 d2 d3 0 0, product = 000 d4 d5
//	last digit 4:          manufacturer = d1 d2 d3 d4 0, product = 0000 d5
//	last digit 5-9:        manufacturer = d1 d2 d3 d4 d5, product = 0000 last
func ExpandUpcE(numberSystem byte, core string) (string, error) {
	if len(core) != 6 || !isAllDigits(core) {
		return "", scanerr.NewParseError(core, "UPC-E core must be 6 decimal digits")
	}
	if numberSystem != '0' && numberSystem != '1' {
		return "", scanerr.NewParseError(string(numberSystem), "UPC-E number system must be 0 or 1")
	}

	var manufacturer, product string
	switch core[5] {
	case '0', '1', '2':
		manufacturer = core[0:2] + core[5:6] + "00"
		product = "00" + core[2:5]
	case '3':
		manufacturer = core[0:3] + "00"
		product = "000" + core[3:5]
	case '4':
		manufacturer = core[0:4] + "0"
		product = "0000" + core[4:5]
	default:
		manufacturer = core[0:5]
		product = "0000" + core[5:6]
	}

	payload := string(numberSystem) + manufacturer + product
	check, err := checkdigit.Compute(payload)
	if err != nil {
		return "", err
	}
	return payload + string(check), nil
}

// CompressUpcA compresses a 12-digit UPC-A into its zero-suppressed 8-digit
// UPC-E form (number system, 6-digit core, check digit), trying the four
// standard zero-suppression patterns in the order a scanner's firmware
// conventionally does: most trailing zeros first.
//
// CompressUpcA fails if value's number system isn't 0 or 1, or if its
// manufacturer/product digits don't have enough trailing zeros to fit any
// of the four patterns.
func CompressUpcA(value string) (string, error) {
	if len(value) != 12 || !isAllDigits(value) {
		return "", scanerr.NewParseError(value, "UPC-A must be 12 decimal digits")
	}
	numberSystem := value[0]
	if numberSystem != '0' && numberSystem != '1' {
		return "", scanerr.NewParseError(value, "only UPC-A number systems 0 and 1 compress to UPC-E")
	}
	manufacturer, product, check := value[1:6], value[6:11], value[11]

	var core string
	switch {
	case manufacturer[3:5] == "00" && product[0:2] == "00" && manufacturer[2] <= '2':
		core = manufacturer[0:2] + product[2:5] + manufacturer[2:3]
	case manufacturer[3:5] == "00" && product[0:3] == "000":
		core = manufacturer[0:3] + product[3:5] + "3"
	case manufacturer[4:5] == "0" && product[0:4] == "0000":
		core = manufacturer[0:4] + product[4:5] + "4"
	case product[0:4] == "0000" && product[4] >= '5' && product[4] <= '9':
		core = manufacturer[0:5] + product[4:5]
	default:
		return "", scanerr.NewParseError(value, "UPC-A cannot be compressed to UPC-E")
	}
	return string(numberSystem) + core + string(check), nil
}
