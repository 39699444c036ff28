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

// Package symbology parses the three-character ISO/IEC 15424 Symbology
// Identifier that some barcode scanners prefix to their output, and
// classifies the two-character "flag + modifier" pair that follows the
// leading ']' against the subset of codes that identify a GS1 payload.
package symbology

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
)

// GS1Kind classifies what a Symbology Identifier says the remainder of the
// scan should contain.
type GS1Kind int

const (
	// NotGS1 means the Symbology Identifier's flag+modifier isn't one of the
	// recognized GS1 codes.
	NotGS1 GS1Kind = iota
	// GTIN means the remainder of the scan should be parsed as a GTIN.
	GTIN
	// ElementStrings means the remainder should be parsed as a GS1 Message
	// of Application-Identifier-tagged Element Strings.
	ElementStrings
)

// gtinCodes and elementStringCodes list the flag+modifier pairs (ISO/IEC
// 15424) that identify, respectively, a bare GTIN and a GS1 Element String
// message. It's legal for a pair to be unused by either set.
var (
	gtinCodes = map[string]bool{
		"E0": true, // EAN/UPC
		"E3": true, // EAN/UPC, ISSN/ISBN add-on excluded
		"E4": true, // EAN/UPC, two-digit add-on
	}
	elementStringCodes = map[string]bool{
		"C1": true, // GS1-128 (Code 128)
		"e0": true, // GS1 DataBar
		"e1": true, // GS1 DataBar, limited to 14 digits
		"e2": true, // GS1 DataBar, expanded
		"d2": true, // GS1 DataMatrix
		"Q3": true, // GS1 QR Code
		"I1": true, // GS1-128 on ITF
	}
)

// Identifier is a parsed ISO/IEC 15424 Symbology Identifier: the literal
// ']', a one-character symbology flag, and a one-character modifier.
type Identifier struct {
	Flag     byte
	Modifier byte
}

// Len is the number of input characters this Identifier consumed (always 3);
// callers use it to advance past the prefix.
func (id Identifier) Len() int { return 3 }

func (id Identifier) String() string {
	return "]" + string(id.Flag) + string(id.Modifier)
}

// GS1Symbology classifies the Identifier against the known GS1 codes. The
// second return value is false if the flag+modifier pair isn't recognized.
func (id Identifier) GS1Symbology() (GS1Kind, bool) {
	key := string([]byte{id.Flag, id.Modifier})
	switch {
	case gtinCodes[key]:
		return GTIN, true
	case elementStringCodes[key]:
		return ElementStrings, true
	default:
		return NotGS1, false
	}
}

// Extract reads a Symbology Identifier from the start of value.
//
// Extract fails with a *scanerr.ParseError if value doesn't start with ']',
// is fewer than three characters long, or the flag/modifier fall outside
// the printable ASCII range.
func Extract(value string) (Identifier, error) {
	if len(value) == 0 || value[0] != ']' {
		return Identifier{}, scanerr.NewParseError(value, "does not start with a Symbology Identifier")
	}
	if len(value) < 3 {
		return Identifier{}, scanerr.NewParseError(value, "too short to contain a Symbology Identifier")
	}

	flag, modifier := value[1], value[2]
	if !isPrintableASCII(flag) || !isPrintableASCII(modifier) {
		return Identifier{}, scanerr.NewParseError(value,
			"Symbology Identifier flag/modifier must be printable ASCII")
	}

	return Identifier{Flag: flag, Modifier: modifier}, nil
}

func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
