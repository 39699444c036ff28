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

package gs1

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/gtin"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
)

// DefaultSeparators is the GS1 default Element String separator: ASCII
// Group Separator (0x1D), the byte FNC1 maps to once a GS1-128 or GS1
// DataMatrix symbol has been decoded.
const DefaultSeparators = "\x1d"

// Message is a GS1 Element String message: the raw scanned value and the
// ordered Element Strings decoded from it.
type Message struct {
	Value    string
	Elements []ElementString
}

// Parse decodes value as a sequence of GS1 Element Strings, using the
// current wall-clock year to resolve any embedded dates' sliding year
// window.
func Parse(value string, region gtin.Region, separators string) (*Message, error) {
	return ParseAt(value, region, separators, CurrentReferenceYear())
}

// ParseAt is Parse with an explicit reference year, for deterministic
// decoding of dates independent of the wall clock.
func ParseAt(value string, region gtin.Region, separators string, referenceYear int) (*Message, error) {
	if separators == "" {
		separators = DefaultSeparators
	}

	rest := value
	var elements []ElementString
	for len(rest) > 0 {
		es, err := Extract(rest, region, separators, referenceYear)
		if err != nil {
			return nil, scanerr.WrapParseError(err, value, "invalid GS1 Message")
		}
		rest = rest[es.ConsumedLength:]

		if len(rest) > 0 && strings.IndexByte(separators, rest[0]) >= 0 {
			if !es.AI.FNC1Required() {
				return nil, scanerr.NewParseError(value,
					"separator found after fixed-length AI %s", es.AI.AI)
			}
			rest = rest[1:]
		}
		elements = append(elements, es)
	}

	if len(elements) == 0 {
		return nil, scanerr.NewParseError(value, "no Application Identifiers found")
	}
	return &Message{Value: value, Elements: elements}, nil
}

// Get returns the first Element String matching ai (by prefix) or
// dataTitle (by substring); either may be empty to skip that filter. The
// second return value is false if nothing matches.
func (m *Message) Get(ai, dataTitle string) (ElementString, bool) {
	for _, e := range m.Elements {
		if matchesElement(e, ai, dataTitle) {
			return e, true
		}
	}
	return ElementString{}, false
}

// Filter returns every Element String matching ai (by prefix) or
// dataTitle (by substring); either may be empty to skip that filter.
func (m *Message) Filter(ai, dataTitle string) []ElementString {
	var out []ElementString
	for _, e := range m.Elements {
		if matchesElement(e, ai, dataTitle) {
			out = append(out, e)
		}
	}
	return out
}

// matchesElement matches e against ai and/or dataTitle independently: if
// either is given and matches, e matches, regardless of the other. With
// neither given, every element matches.
func matchesElement(e ElementString, ai, dataTitle string) bool {
	if ai == "" && dataTitle == "" {
		return true
	}
	if ai != "" && strings.HasPrefix(e.AI.AI, ai) {
		return true
	}
	if dataTitle != "" && strings.Contains(e.AI.DataTitle, dataTitle) {
		return true
	}
	return false
}
