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

// Package gs1decode decodes the opaque textual payload a barcode scanner
// emits into a structured result, without knowing in advance which of
// several globally standardized identifier formats it is: a GTIN-8/12/13/14,
// a UPC-A/E, an SSCC, or a GS1 Element String message carrying one or more
// Application Identifiers.
//
// Parse is the single entry point. It optionally reads a leading ISO/IEC
// 15424 Symbology Identifier to narrow which decoders to try, then runs the
// applicable decoders and cross-feeds a successful result from one into the
// others it implies (a GTIN-12 is also a UPC-A; a GS1 Message's AI 00 is an
// SSCC and its AI 01 is a GTIN).
//
// Every operation here is a pure function of its inputs plus the package's
// compiled-in Application Identifier catalog, GS1 Prefix table, and region
// rules: there is no I/O, no shared mutable state, and (outside of the
// convenience wrappers that default to the current year for date decoding)
// no dependency on the wall clock.
package gs1decode
