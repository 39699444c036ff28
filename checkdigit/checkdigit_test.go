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

package checkdigit

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
)

func TestVerify(t *testing.T) {
	type test struct {
		name  string
		value string
		valid bool
	}

	pass := func(n, v string) test { return test{name: n, value: v, valid: true} }
	fail := func(n, v string) test { return test{name: n, value: v, valid: false} }

	for i, tt := range []test{
		pass("GTIN-13 Poland", "5901234123457"),
		pass("GTIN-8", "40170725"),
		pass("GTIN-12 / UPC-A", "036000291452"),
		pass("GTIN-14", "12991111111110"),
		pass("SSCC", "000000000000000093"),

		fail("wrong check digit", "5901234123456"),
		fail("non-digit payload", "590123412345A"),
		fail("too short", "7"),
		fail("empty", ""),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			err := Verify(tt.value)
			if tt.valid {
				w.ShouldSucceed(err)
			} else {
				w.ShouldFail(err)
			}
		})
	}
}

func TestVerify_checksumErrorCarriesBothDigits(t *testing.T) {
	w := expect.WrapT(t)
	err := w.ShouldFail(Verify("5901234123456"))
	w.Logf("%+v", err)

	ce, ok := scanerr.AsChecksumError(err)
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(ce.Expected, "7")
	w.ShouldBeEqual(ce.Actual, "6")
}

func TestCompute(t *testing.T) {
	w := expect.WrapT(t)
	d := w.ShouldHaveResult(Compute("590123412345")).(byte)
	w.ShouldBeEqual(d, byte('7'))
}
