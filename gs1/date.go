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
	"strconv"
	"time"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
)

// CurrentReferenceYear returns the current year, for callers that want
// GS1's sliding year window anchored to "now" without picking a year
// themselves. Every date-parsing entry point in this package also accepts
// an explicit reference year, so a caller that needs deterministic,
// wall-clock-independent behavior (tests, replay of archived scans) never
// has to call this.
func CurrentReferenceYear() int { return time.Now().Year() }

// parseGS1Date decodes a 6-digit YYMMDD field using GS1's sliding window:
// the two-digit year is resolved to whichever four-digit year in
// [referenceYear-49, referenceYear+50] ends in those two digits. A day of
// 00 means the last day of that month, accounting for leap years.
func parseGS1Date(value string, referenceYear int) (time.Time, error) {
	if len(value) != 6 || !isAllDigits(value) {
		return time.Time{}, scanerr.NewParseError(value, "date must be 6 digits (YYMMDD)")
	}
	yy, _ := strconv.Atoi(value[0:2])
	mm, _ := strconv.Atoi(value[2:4])
	dd, _ := strconv.Atoi(value[4:6])
	if mm < 1 || mm > 12 {
		return time.Time{}, scanerr.NewParseError(value, "month %02d is out of range", mm)
	}

	year := slidingYear(yy, referenceYear)
	if dd == 0 {
		firstOfNextMonth := time.Date(year, time.Month(mm)+1, 1, 0, 0, 0, 0, time.UTC)
		return firstOfNextMonth.AddDate(0, 0, -1), nil
	}
	if dd < 1 || dd > 31 {
		return time.Time{}, scanerr.NewParseError(value, "day %02d is out of range", dd)
	}
	d := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if int(d.Month()) != mm {
		return time.Time{}, scanerr.NewParseError(value, "day %02d does not exist in month %02d", dd, mm)
	}
	return d, nil
}

// slidingYear resolves a two-digit year against the window GS1 mandates:
// [referenceYear-49, referenceYear+50].
func slidingYear(yy, referenceYear int) int {
	century := (referenceYear / 100) * 100
	candidate := century + yy
	switch {
	case candidate < referenceYear-49:
		candidate += 100
	case candidate > referenceYear+50:
		candidate -= 100
	}
	return candidate
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
