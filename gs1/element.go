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
	"strings"
	"time"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/gtin"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/measure"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/scanerr"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/sscc"
)

// ElementString is one Application-Identifier-tagged field read from a GS1
// buffer: the catalog Entry that matched, the raw value, and (for
// domain-specific AIs) the decoded field.
type ElementString struct {
	AI    Entry
	Value string
	// ConsumedLength is len(AI.AI) + len(Value): the number of buffer
	// characters this Element String consumed, not counting any trailing
	// separator.
	ConsumedLength int

	Gtin    *gtin.Gtin
	Sscc    *sscc.Sscc
	Date    *time.Time
	Decimal *measure.Decimal
	Money   *measure.Money
}

// Extract reads one Element String from the start of buffer: the longest
// matching AI, then its value per the AI's fixed or variable-length rule,
// then (for a domain-specific AI) decodes the value.
//
// separators lists the bytes that terminate a variable-length value; pass
// "" to use the GS1 default (ASCII GS, 0x1D). referenceYear anchors the
// sliding year window used by date AIs.
func Extract(buffer string, region gtin.Region, separators string, referenceYear int) (ElementString, error) {
	if separators == "" {
		separators = DefaultSeparators
	}

	entry, ok := Lookup(buffer)
	if !ok {
		return ElementString{}, scanerr.NewParseError(buffer, "no known Application Identifier prefixes this value")
	}
	rest := buffer[len(entry.AI):]

	var value string
	if entry.Variable() {
		end := len(rest)
		if i := strings.IndexAny(rest, separators); i >= 0 && i < end {
			end = i
		}
		if end > entry.MaxLength {
			end = entry.MaxLength
		}
		if end == 0 {
			return ElementString{}, scanerr.NewParseError(buffer, "AI %s requires a value", entry.AI)
		}
		value = rest[:end]
	} else {
		if len(rest) < entry.Length {
			return ElementString{}, scanerr.NewParseError(buffer,
				"AI %s requires %d characters, only %d remain", entry.AI, entry.Length, len(rest))
		}
		value = rest[:entry.Length]
	}

	es := ElementString{AI: entry, Value: value, ConsumedLength: len(entry.AI) + len(value)}
	if err := es.decode(region, referenceYear); err != nil {
		return ElementString{}, scanerr.WrapParseError(err, buffer, "invalid value for AI %s", entry.AI)
	}
	return es, nil
}

func (es *ElementString) decode(region gtin.Region, referenceYear int) error {
	switch {
	case es.AI.AI == "00":
		s, err := sscc.Parse(es.Value)
		if err != nil {
			return err
		}
		es.Sscc = s

	case es.AI.Domain == DomainGTIN:
		g, err := gtin.Parse(es.Value, region)
		if err != nil {
			return err
		}
		es.Gtin = g

	case es.AI.Domain == DomainDate:
		d, err := parseGS1Date(es.Value, referenceYear)
		if err != nil {
			return err
		}
		es.Date = &d

	case es.AI.Domain == DomainDecimal:
		d, err := measure.NewDecimalFromDigits(es.Value, uint8(es.AI.ImpliedDecimals))
		if err != nil {
			return err
		}
		es.Decimal = &d

	case es.AI.Domain == DomainMoney:
		digits := es.Value
		currency := ""
		if es.AI.CurrencyCoded {
			currency = isoNumericCurrency[es.Value[:3]]
			digits = es.Value[3:]
		}
		d, err := measure.NewDecimalFromDigits(digits, uint8(es.AI.ImpliedDecimals))
		if err != nil {
			return err
		}
		es.Money = &measure.Money{Amount: d, Currency: currency}
	}
	return nil
}
