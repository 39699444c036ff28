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

package gs1decode

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/gs1"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/gtin"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/sscc"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/symbology"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/upc"
)

// ParseError and ChecksumError re-export scanerr's error types so callers
// of this package don't also need to import scanerr for a type switch or
// errors.As-style assertion.
type (
	ParseError    = scanerr.ParseError
	ChecksumError = scanerr.ChecksumError
)

type kind int

const (
	kindGTIN kind = iota
	kindUPC
	kindSSCC
	kindGS1
)

type queueItem struct {
	kind  kind
	value string
}

// Result holds every decoder's outcome for one input: each of Gtin, Upc,
// Sscc, and GS1Message is non-nil if that decoder succeeded (several can be,
// through cross-feeding), and the matching *Error field explains a
// decoder's failure, if it was tried and failed.
type Result struct {
	Value      string
	Symbology  *symbology.Identifier

	Gtin       *gtin.Gtin
	GtinError  error
	Upc        *upc.Upc
	UpcError   error
	Sscc       *sscc.Sscc
	SsccError  error
	GS1Message *gs1.Message
	GS1Error   error
}

// Found reports whether at least one decoder succeeded.
func (r *Result) Found() bool {
	return r.Gtin != nil || r.Upc != nil || r.Sscc != nil || r.GS1Message != nil
}

// Parse decodes value, using the current wall-clock year to resolve any
// GS1 Message date fields' sliding year window.
func Parse(value string, region gtin.Region, separators string) (*Result, error) {
	return ParseAt(value, region, separators, gs1.CurrentReferenceYear())
}

// ParseAt is Parse with an explicit reference year, for deterministic
// decoding of embedded dates independent of the wall clock.
func ParseAt(value string, region gtin.Region, separators string, referenceYear int) (*Result, error) {
	value = strings.TrimSpace(value)
	res := &Result{Value: value}

	rest := value
	if len(rest) > 0 && rest[0] == ']' {
		if id, err := symbology.Extract(rest); err == nil {
			res.Symbology = &id
			rest = rest[id.Len():]
		}
	}

	queue := seedQueue(res.Symbology, rest)
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		queue = append(queue, step(res, item, region, separators, referenceYear)...)
	}

	if !res.Found() {
		return res, scanerr.NewParseError(value,
			"not a recognized GTIN, UPC, SSCC, or GS1 Message (gtin: %s; upc: %s; sscc: %s; gs1: %s)",
			errText(res.GtinError), errText(res.UpcError), errText(res.SsccError), errText(res.GS1Error))
	}
	return res, nil
}

// seedQueue builds the initial work queue. A recognized Symbology
// Identifier narrows the queue to the one format it declares (the GTIN and
// Element String code sets do not overlap); otherwise every format is
// tried.
func seedQueue(id *symbology.Identifier, rest string) []queueItem {
	if id != nil {
		if k, ok := id.GS1Symbology(); ok {
			var queue []queueItem
			if k == symbology.GTIN {
				queue = append(queue, queueItem{kindGTIN, rest})
			}
			if k == symbology.ElementStrings {
				queue = append(queue, queueItem{kindGS1, rest})
			}
			if len(queue) > 0 {
				return queue
			}
		}
	}
	return []queueItem{
		{kindGS1, rest},
		{kindGTIN, rest},
		{kindSSCC, rest},
		{kindUPC, rest},
	}
}

// step runs item's decoder if that slot in res is still empty, records the
// result or error, and returns any follow-up items a successful decode
// implies.
func step(res *Result, item queueItem, region gtin.Region, separators string, referenceYear int) []queueItem {
	switch item.kind {
	case kindGTIN:
		if res.Gtin != nil {
			return nil
		}
		g, err := gtin.Parse(item.value, region)
		if err != nil {
			res.GtinError = err
			return nil
		}
		res.Gtin, res.GtinError = g, nil
		if g.Format == gtin.Format12 {
			return []queueItem{{kindUPC, g.Value}}
		}

	case kindUPC:
		if res.Upc != nil {
			return nil
		}
		u, err := upc.Parse(item.value)
		if err != nil {
			res.UpcError = err
			return nil
		}
		res.Upc, res.UpcError = u, nil
		if a, err := u.AsUpcA(); err == nil {
			return []queueItem{{kindGTIN, a}}
		}

	case kindSSCC:
		if res.Sscc != nil {
			return nil
		}
		s, err := sscc.Parse(item.value)
		if err != nil {
			res.SsccError = err
			return nil
		}
		res.Sscc, res.SsccError = s, nil

	case kindGS1:
		if res.GS1Message != nil {
			return nil
		}
		m, err := gs1.ParseAt(item.value, region, separators, referenceYear)
		if err != nil {
			res.GS1Error = err
			return nil
		}
		res.GS1Message, res.GS1Error = m, nil

		var follow []queueItem
		if e, ok := m.Get("00", ""); ok && e.Sscc != nil {
			follow = append(follow, queueItem{kindSSCC, e.Value})
		}
		if e, ok := m.Get("01", ""); ok && e.Gtin != nil {
			follow = append(follow, queueItem{kindGTIN, e.Value})
		}
		return follow
	}
	return nil
}

func errText(err error) string {
	if err == nil {
		return "not attempted"
	}
	return err.Error()
}
