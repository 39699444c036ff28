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

// Package checkdigit implements the GS1 mod-10 weighted check-digit
// algorithm shared by GTIN, UPC, and SSCC: multiply the digits, counted
// right-to-left starting at the digit next to the check digit, alternately
// by 3 and 1, sum them, and take the additive inverse of the sum mod 10.
package checkdigit

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
	"github.com/pkg/errors"
)

// Compute returns the GS1 mod-10 check digit for payload, a string of
// decimal digits not including the check digit itself.
func Compute(payload string) (byte, error) {
	if payload == "" {
		return 0, errors.New("payload is empty")
	}

	sum := 0
	weight := 3
	for i := len(payload) - 1; i >= 0; i-- {
		d := payload[i]
		if d < '0' || d > '9' {
			return 0, errors.Errorf("non-digit %q in %q", d, payload)
		}
		sum += int(d-'0') * weight
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}

	return '0' + byte((10-sum%10)%10), nil
}

// Verify checks that digits' final character is the correct GS1 mod-10
// check digit for the digits preceding it.
//
// Verify returns a *scanerr.ParseError if digits is too short to carry a
// check digit or contains a non-digit character, and a *scanerr.ChecksumError
// if the check digit itself disagrees with the computed value.
func Verify(digits string) error {
	if len(digits) < 2 {
		return scanerr.NewParseError(digits, "value is too short to carry a check digit")
	}

	payload, want := digits[:len(digits)-1], digits[len(digits)-1]
	computed, err := Compute(payload)
	if err != nil {
		return scanerr.WrapParseError(err, digits, "could not compute check digit")
	}
	if want < '0' || want > '9' {
		return scanerr.NewParseError(digits, "check digit %q is not a decimal digit", want)
	}
	if computed != want {
		return scanerr.NewChecksumError(digits, string(computed), string(want))
	}
	return nil
}
