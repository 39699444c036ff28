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

// isoNumericCurrency maps a subset of ISO 4217 numeric currency codes (as
// embedded in currency-coded GS1 Application Identifiers, e.g. 391n) to
// their alphabetic codes. It covers the currencies of the regions this
// module's gtin package implements RCN decoding for, plus a few common
// trading currencies; it is not a complete ISO 4217 registry.
var isoNumericCurrency = map[string]string{
	"036": "AUD",
	"124": "CAD",
	"208": "DKK",
	"392": "JPY",
	"578": "NOK",
	"752": "SEK",
	"756": "CHF",
	"826": "GBP",
	"840": "USD",
	"978": "EUR",
	"985": "PLN",
}
