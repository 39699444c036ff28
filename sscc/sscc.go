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

// Package sscc decodes the Serial Shipping Container Code: an 18-digit
// logistics identifier for a physical shipping unit (pallet, case, or
// other handling unit), built from an extension digit, a GS1 Company
// Prefix, and a serial reference.
package sscc

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/prefix"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
)

const length = 18

// Sscc is a parsed Serial Shipping Container Code.
type Sscc struct {
	// Value is the input with surrounding whitespace trimmed (18 digits).
	Value string
	// ExtensionDigit is the leading digit, assigned by the company that
	// owns the Company Prefix; it doesn't affect uniqueness.
	ExtensionDigit byte
	// Prefix is the GS1 Prefix range owning the Company Prefix.
	Prefix prefix.Range
	// HasPrefix is false if no range in the table covers the prefix.
	HasPrefix bool
	// CompanyPrefix is the GS1 Company Prefix, as assigned by the GS1
	// member organization that owns Prefix.
	CompanyPrefix string
	// SerialReference is the remainder of the payload after the Company
	// Prefix: a serial number the owning company assigns uniquely within
	// its prefix.
	SerialReference string
	// CheckDigit is the trailing check digit.
	CheckDigit byte
}

// Parse validates value as an 18-digit SSCC and decodes it.
//
// Parse can only split the Company Prefix from the serial reference when it
// can find a GS1 Prefix range for the payload: the GS1 Prefix table doesn't
// publish a fixed Company Prefix length by itself (a member organization
// allocates that per company), so when no range matches, CompanyPrefix and
// SerialReference are left empty but parsing still succeeds.
func Parse(value string) (*Sscc, error) {
	value = strings.TrimSpace(value)
	if len(value) != length {
		return nil, scanerr.NewParseError(value, "SSCC must be %d digits", length)
	}
	if err := checkdigit.Verify(value); err != nil {
		return nil, err
	}

	s := &Sscc{
		Value:          value,
		ExtensionDigit: value[0],
		CheckDigit:     value[length-1],
	}

	// The Company Prefix sits immediately after the extension digit; GS1
	// Prefix ranges are matched against the leading digits of the 16-digit
	// payload between the extension digit and the check digit.
	payload := value[1 : length-1]
	if r, ok := prefix.Lookup(payload); ok {
		s.Prefix, s.HasPrefix = r, true
		n := companyPrefixLength(r)
		if n > 0 && n <= len(payload) {
			s.CompanyPrefix = payload[:n]
			s.SerialReference = payload[n:]
		}
	}

	return s, nil
}

// companyPrefixLength approximates the length of a GS1 Company Prefix from
// the width of the GS1 Prefix range that contains it: 7 digits for a
// single-prefix range, 6 for a range spanning fewer than ten further
// prefixes, and 5 for a wider range.
//
// This is a documented approximation, not a lookup against each member
// organization's own published allocation policy: that policy is not part
// of the GS1 Prefix range data this package carries.
func companyPrefixLength(r prefix.Range) int {
	switch {
	case r.End-r.Start == 0:
		return 7
	case r.End-r.Start < 10:
		return 6
	default:
		return 5
	}
}
