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

package upc

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestParse_upcA(t *testing.T) {
	w := expect.WrapT(t)

	u := w.ShouldHaveResult(Parse("036000291452")).(*Upc)
	w.ShouldBeEqual(u.Format, FormatA)
	w.ShouldBeEqual(u.NumberSystem, byte('0'))
	w.ShouldBeEqual(u.CheckDigit, byte('2'))

	w.ShouldFail(Parse("036000291459")) // wrong check digit
}

func TestParse_upcE_eightDigit(t *testing.T) {
	w := expect.WrapT(t)

	u := w.ShouldHaveResult(Parse("01234565")).(*Upc)
	w.ShouldBeEqual(u.Format, FormatE)
	w.ShouldBeEqual(u.CheckDigit, byte('5'))

	w.ShouldFail(Parse("01234566")) // wrong trailing check digit
}

func TestParse_upcE_sevenAndSixDigit(t *testing.T) {
	w := expect.WrapT(t)

	u7 := w.ShouldHaveResult(Parse("0123456")).(*Upc)
	w.ShouldBeEqual(u7.Format, FormatE)
	w.ShouldBeEqual(u7.CheckDigit, byte('5'))

	u6 := w.ShouldHaveResult(Parse("123456")).(*Upc)
	w.ShouldBeEqual(u6.NumberSystem, byte('0'))
	w.ShouldBeEqual(u6.CheckDigit, byte('5'))
}

func TestExpandUpcE_lastDigitCases(t *testing.T) {
	w := expect.WrapT(t)

	got := w.ShouldHaveResult(ExpandUpcE('0', "123451")).(string)
	w.ShouldBeEqual(got, "012100003454")

	got = w.ShouldHaveResult(ExpandUpcE('0', "123456")).(string)
	w.ShouldBeEqual(got, "012345000065")
}

func TestCompressUpcA_roundTrip(t *testing.T) {
	w := expect.WrapT(t)

	core := w.ShouldHaveResult(CompressUpcA("012100003454")).(string)
	w.ShouldBeEqual(core, "01234514")

	core = w.ShouldHaveResult(CompressUpcA("012345000065")).(string)
	w.ShouldBeEqual(core, "01234565")
}

func TestUpc_AsUpcA_AsUpcE(t *testing.T) {
	w := expect.WrapT(t)

	e := w.ShouldHaveResult(Parse("01234565")).(*Upc)
	a, err := e.AsUpcA()
	w.ShouldSucceed(err)
	w.ShouldBeEqual(a, "012345000065")

	parsedA := w.ShouldHaveResult(Parse("012345000065")).(*Upc)
	backToE, err := parsedA.AsUpcE()
	w.ShouldSucceed(err)
	w.ShouldBeEqual(backToE, "01234565")
}

func TestCompressUpcA_rejectsUncompressible(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldFail(CompressUpcA("036000291452"))
}
