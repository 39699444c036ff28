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
	"regexp"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/gtin"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
)

// AsHRI renders m in Human-Readable Interpretation form:
// "(AI)data(AI)data…", with no separators (parentheses delimit fields
// instead).
func (m *Message) AsHRI() string {
	var b strings.Builder
	for _, e := range m.Elements {
		b.WriteByte('(')
		b.WriteString(e.AI.AI)
		b.WriteByte(')')
		b.WriteString(e.Value)
	}
	return b.String()
}

var hriFieldPattern = regexp.MustCompile(`\((\d{2,4})\)(\w+)`)

// ParseHRI parses the HRI form "(AI)data(AI)data…" by reassembling it into
// the machine form (interleaving a separator after every variable-length
// AI's value except the last) and delegating to Parse.
func ParseHRI(value string, region gtin.Region, separators string) (*Message, error) {
	return ParseHRIAt(value, region, separators, CurrentReferenceYear())
}

// ParseHRIAt is ParseHRI with an explicit reference year, for deterministic
// decoding of dates independent of the wall clock.
func ParseHRIAt(value string, region gtin.Region, separators string, referenceYear int) (*Message, error) {
	fields := hriFieldPattern.FindAllStringSubmatch(value, -1)
	if fields == nil {
		return nil, scanerr.NewParseError(value, "not a valid HRI string: expected \"(AI)data…\"")
	}

	if separators == "" {
		separators = DefaultSeparators
	}

	var b strings.Builder
	for i, field := range fields {
		ai, data := field[1], field[2]
		entry, ok := Lookup(ai + data)
		if !ok || entry.AI != ai {
			return nil, scanerr.NewParseError(value, "%q is not a known Application Identifier", ai)
		}
		b.WriteString(ai)
		b.WriteString(data)
		if entry.FNC1Required() && i != len(fields)-1 {
			b.WriteString(separators[:1])
		}
	}

	return ParseAt(b.String(), region, separators, referenceYear)
}
