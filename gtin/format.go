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

package gtin

import "fmt"

// Format identifies which of the four GTIN lengths a value has.
type Format int

const (
	unknownFormat Format = iota
	// Format8 is a GTIN-8 (EAN-8): 7 digits + check digit.
	Format8
	// Format12 is a GTIN-12 (UPC-A): 11 digits + check digit.
	Format12
	// Format13 is a GTIN-13 (EAN-13): 12 digits + check digit.
	Format13
	// Format14 is a GTIN-14 (ITF-14, not itself a barcode symbology): 13 digits + check digit.
	Format14
)

func (f Format) String() string {
	switch f {
	case Format8:
		return "GTIN-8"
	case Format12:
		return "GTIN-12"
	case Format13:
		return "GTIN-13"
	case Format14:
		return "GTIN-14"
	default:
		return "unknown"
	}
}

// Length returns the number of digits a value of this Format has.
func (f Format) Length() int {
	switch f {
	case Format8:
		return 8
	case Format12:
		return 12
	case Format13:
		return 13
	case Format14:
		return 14
	default:
		return 0
	}
}

func formatForLength(n int) (Format, error) {
	switch n {
	case 8:
		return Format8, nil
	case 12:
		return Format12, nil
	case 13:
		return Format13, nil
	case 14:
		return Format14, nil
	default:
		return unknownFormat, fmt.Errorf("length %d is not a valid GTIN length (want 8, 12, 13, or 14)", n)
	}
}
