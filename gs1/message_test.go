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
	"testing"
	"time"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/gtin"
)

func TestParseAt_gtinAndDate(t *testing.T) {
	w := expect.WrapT(t)

	m := w.ShouldHaveResult(ParseAt("010590123412345715210526", gtin.RegionNone, "", 2026)).(*Message)
	w.ShouldBeEqual(len(m.Elements), 2)

	gtinElem, found := m.Get("01", "")
	w.StopOnMismatch().ShouldBeTrue(found)
	w.StopOnMismatch().ShouldBeTrue(gtinElem.Gtin != nil)
	w.ShouldBeEqual(gtinElem.Gtin.Value, "05901234123457")

	dateElem, found := m.Get("15", "")
	w.StopOnMismatch().ShouldBeTrue(found)
	w.StopOnMismatch().ShouldBeTrue(dateElem.Date != nil)
	w.ShouldBeTrue(dateElem.Date.Equal(time.Date(2021, time.May, 26, 0, 0, 0, 0, time.UTC)))
}

func TestParseAt_embeddedSSCC(t *testing.T) {
	w := expect.WrapT(t)

	m := w.ShouldHaveResult(ParseAt("00003700000000012342", gtin.RegionNone, "", 2026)).(*Message)
	e, found := m.Get("00", "")
	w.StopOnMismatch().ShouldBeTrue(found)
	w.StopOnMismatch().ShouldBeTrue(e.Sscc != nil)
	w.ShouldBeEqual(e.Sscc.CompanyPrefix, "037000")
}

func TestParseAt_variableLengthWithSeparator(t *testing.T) {
	w := expect.WrapT(t)

	m := w.ShouldHaveResult(ParseAt("10ABCD1234\x1d3103000195", gtin.RegionNone, "", 2026)).(*Message)
	w.ShouldBeEqual(len(m.Elements), 2)

	batch, found := m.Get("10", "")
	w.StopOnMismatch().ShouldBeTrue(found)
	w.ShouldBeEqual(batch.Value, "ABCD1234")

	weight, found := m.Get("3103", "")
	w.StopOnMismatch().ShouldBeTrue(found)
	w.StopOnMismatch().ShouldBeTrue(weight.Decimal != nil)
	w.ShouldBeEqual(weight.Decimal.String(), "0.195")
}

func TestParseAt_separatorAfterFixedLengthFails(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldFail(ParseAt("0105901234123457\x1d15210526", gtin.RegionNone, "", 2026))
}

func TestParseAt_unknownAIFails(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldFail(ParseAt("0512345", gtin.RegionNone, "", 2026))
}

func TestFilter_matchesByPrefixAndSubstring(t *testing.T) {
	w := expect.WrapT(t)

	m := w.ShouldHaveResult(ParseAt("10ABCD1234\x1d3103000195", gtin.RegionNone, "", 2026)).(*Message)

	w.ShouldBeEqual(len(m.Filter("31", "")), 1)
	w.ShouldBeEqual(len(m.Filter("", "LOT")), 1)
	w.ShouldBeEqual(len(m.Filter("99", "")), 0)
}

func TestFilter_prefixAndSubstringAreIndependent(t *testing.T) {
	w := expect.WrapT(t)

	m := w.ShouldHaveResult(ParseAt("10ABCD1234\x1d3103000195", gtin.RegionNone, "", 2026)).(*Message)

	// "31" matches the 3103 element by AI prefix; "LOT" matches the 10
	// element by data title substring. Each element only satisfies one of
	// the two filters, so this only finds both under independent (OR)
	// matching, not if both were required of a single element.
	w.ShouldBeEqual(len(m.Filter("31", "LOT")), 2)
}

func TestAsHRI_andParseHRI_roundTrip(t *testing.T) {
	w := expect.WrapT(t)

	hri := "(01)05901234123457(3103)000195"
	m := w.ShouldHaveResult(ParseHRIAt(hri, gtin.RegionNone, "", 2026)).(*Message)
	w.ShouldBeEqual(m.AsHRI(), hri)

	weight, found := m.Get("3103", "")
	w.StopOnMismatch().ShouldBeTrue(found)
	w.ShouldBeEqual(weight.Decimal.String(), "0.195")
}
