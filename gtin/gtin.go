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

// Package gtin decodes Global Trade Item Numbers: GTIN-8, GTIN-12 (UPC-A's
// numeric form), GTIN-13, and GTIN-14, including the Restricted Circulation
// Numbers that GS1 carves out of the GTIN-8/12/13 prefix space for
// company- or store-local use.
package gtin

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/prefix"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
)

// Gtin is a parsed Global Trade Item Number.
type Gtin struct {
	// Value is the input with surrounding whitespace trimmed, at its
	// original length (8, 12, 13, or 14 digits).
	Value string
	// Format says which of the four GTIN lengths Value has.
	Format Format
	// Prefix is the GS1 Prefix range that owns Value's canonical leading
	// three digits, if one was found.
	Prefix prefix.Range
	// HasPrefix is false if no range in the table covers Value's prefix.
	HasPrefix bool
	// Payload is Value without its trailing check digit.
	Payload string
	// CheckDigit is Value's trailing check digit.
	CheckDigit byte
	// Rcn is set when Value falls in one of GS1's Restricted Circulation
	// Number ranges; nil otherwise.
	Rcn *Rcn
}

// canonical13 returns the 13-digit form of the input GTIN used for GS1
// Prefix lookups and for the 12/13-digit RCN range check: shorter values are
// left-zero-padded, and a GTIN-14's leading packaging-level digit is
// dropped.
func canonical13(value string) string {
	if len(value) >= 13 {
		return value[len(value)-13:]
	}
	return strings.Repeat("0", 13-len(value)) + value
}

// Parse validates value as a GTIN and decodes it.
//
// value must be 8, 12, 13, or 14 decimal digits (surrounding whitespace is
// ignored) and its trailing check digit must be correct; otherwise Parse
// returns a *scanerr.ParseError or *scanerr.ChecksumError.
//
// region names the national market to use when decoding a Restricted
// Circulation Number's embedded weight or price, or RegionNone to skip that
// decode (the Rcn field, when present, still reports Usage either way).
func Parse(value string, region Region) (*Gtin, error) {
	value = strings.TrimSpace(value)

	format, err := formatForLength(len(value))
	if err != nil {
		return nil, scanerr.WrapParseError(err, value, "invalid GTIN")
	}

	if err := checkdigit.Verify(value); err != nil {
		return nil, err
	}

	g := &Gtin{
		Value:      value,
		Format:     format,
		Payload:    value[:len(value)-1],
		CheckDigit: value[len(value)-1],
	}

	c13 := canonical13(value)
	if r, ok := prefix.Lookup(c13); ok {
		g.Prefix, g.HasPrefix = r, true
	}

	if usage, isRCN := classifyRCN(format, value, c13); isRCN {
		rcn := &Rcn{Usage: usage, Region: region}
		if usage == UsageGeographical && region != RegionNone {
			rcn.Weight, rcn.Price = decodeRCNValue(region, c13)
		}
		g.Rcn = rcn
	}

	return g, nil
}

// IsRCN reports whether g is a Restricted Circulation Number: an identifier
// only guaranteed unique within a single company or geographic region,
// rather than globally.
func (g *Gtin) IsRCN() bool { return g.Rcn != nil }

// AsGTIN14 returns g.Value left-padded with zeros to 14 digits, the
// canonical form used to compare GTINs of different input lengths for
// equality.
func (g *Gtin) AsGTIN14() string {
	return strings.Repeat("0", 14-len(g.Value)) + g.Value
}
