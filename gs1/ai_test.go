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

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestLookup_longestPrefixWins(t *testing.T) {
	w := expect.WrapT(t)

	e, ok := Lookup("3103000195")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(e.AI, "3103")
	w.ShouldBeEqual(e.ImpliedDecimals, 3)

	_, ok = Lookup("0512345")
	w.ShouldBeFalse(ok)
}

func TestLookup_generatedMoneyFamily(t *testing.T) {
	w := expect.WrapT(t)

	e, ok := Lookup("39125000")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(e.AI, "3912")
	w.ShouldBeTrue(e.CurrencyCoded)
	w.ShouldBeEqual(e.Length, 9)
}

func TestLookup_generatedMeasureFamilyEdges(t *testing.T) {
	w := expect.WrapT(t)

	for _, ai := range []string{"3290", "3370", "3400", "3690"} {
		e, ok := Lookup(ai + "000000")
		w.StopOnMismatch().ShouldBeTrue(ok)
		w.ShouldBeEqual(e.AI, ai)
		w.ShouldBeEqual(e.Domain, DomainDecimal)
	}
}

func TestLookup_generatedMoneyFamilyEdges(t *testing.T) {
	w := expect.WrapT(t)

	e, ok := Lookup("3940000000")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(e.AI, "3940")
	w.ShouldBeFalse(e.CurrencyCoded)

	e, ok = Lookup("395000000000000")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(e.AI, "3950")
	w.ShouldBeTrue(e.CurrencyCoded)
}
