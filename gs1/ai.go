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

// Package gs1 extracts GS1 Application-Identifier-tagged Element Strings
// from a scanned buffer, decodes the domain-specific ones (embedded GTIN,
// embedded SSCC, dates, implied-decimal measures, and currency amounts),
// and assembles a GS1 Message with Human-Readable Interpretation rendering.
package gs1

import "strconv"

// Domain names which domain-specific decode, if any, applies to an AI's
// value once it's been read off the buffer.
type Domain int

const (
	// DomainNone means the value is kept as a raw string with no further
	// decode.
	DomainNone Domain = iota
	// DomainGTIN means the value is a 14-digit embedded GTIN (AI 01/02).
	DomainGTIN
	// DomainSSCC means the value is an 18-digit embedded SSCC (AI 00).
	DomainSSCC
	// DomainDate means the value is a YYMMDD date, day 00 meaning the last
	// day of that month.
	DomainDate
	// DomainDecimal means the value is an implied-decimal numeric field:
	// an integer divided by 10^ImpliedDecimals.
	DomainDecimal
	// DomainMoney means the value is an implied-decimal amount, optionally
	// preceded by a 3-digit ISO 4217 numeric currency code.
	DomainMoney
)

// Entry is one immutable GS1 Application Identifier catalog record.
type Entry struct {
	AI          string
	DataTitle   string
	Description string
	// Length is the value's exact width for a fixed-length AI; zero for a
	// variable-length one.
	Length int
	// MaxLength is the value's maximum width for a variable-length AI;
	// zero for a fixed-length one.
	MaxLength int
	Domain    Domain
	// ImpliedDecimals is the number of fractional digits for
	// DomainDecimal and DomainMoney values.
	ImpliedDecimals int
	// CurrencyCoded is true for a DomainMoney AI whose value embeds its
	// own leading 3-digit ISO 4217 numeric currency code.
	CurrencyCoded bool
}

// Variable reports whether e's value is variable-length.
func (e Entry) Variable() bool { return e.MaxLength > 0 }

// FNC1Required reports whether a value of this AI, when not the last in a
// message, must be followed by a separator: true iff it's variable-length.
func (e Entry) FNC1Required() bool { return e.Variable() }

func fixed(ai, title, desc string, length int) Entry {
	return Entry{AI: ai, DataTitle: title, Description: desc, Length: length}
}

func variable(ai, title, desc string, maxLength int) Entry {
	return Entry{AI: ai, DataTitle: title, Description: desc, MaxLength: maxLength}
}

func date(ai, title, desc string) Entry {
	e := fixed(ai, title, desc, 6)
	e.Domain = DomainDate
	return e
}

func decimal(ai, title, desc string, length, impliedDecimals int) Entry {
	e := fixed(ai, title, desc, length)
	e.Domain = DomainDecimal
	e.ImpliedDecimals = impliedDecimals
	return e
}

// measureFamily generates the AIs base+"0" through base+"5", the standard
// GS1 convention for an implied-decimal measurement field where the AI's
// own last digit names the number of fractional digits.
func measureFamily(base, title, desc string) []Entry {
	entries := make([]Entry, 0, 6)
	for n := 0; n <= 5; n++ {
		entries = append(entries, decimal(base+itoa(n), title, desc, 6, n))
	}
	return entries
}

// moneyFamily generates an implied-decimal amount family, optionally with
// an embedded 3-digit ISO 4217 numeric currency code ahead of the amount.
func moneyFamily(base, title, desc string, currencyCoded bool) []Entry {
	entries := make([]Entry, 0, 6)
	length := 6
	if currencyCoded {
		length = 9
	}
	for n := 0; n <= 5; n++ {
		e := fixed(base+itoa(n), title, desc, length)
		e.Domain = DomainMoney
		e.ImpliedDecimals = n
		e.CurrencyCoded = currencyCoded
		entries = append(entries, e)
	}
	return entries
}

func itoa(n int) string {
	return string(rune('0' + n))
}

var literalEntries = []Entry{
	{AI: "00", DataTitle: "SSCC", Description: "Serial Shipping Container Code", Length: 18, Domain: DomainSSCC},
	{AI: "01", DataTitle: "GTIN", Description: "Global Trade Item Number", Length: 14, Domain: DomainGTIN},
	{AI: "02", DataTitle: "CONTENT", Description: "GTIN of contained trade items", Length: 14, Domain: DomainGTIN},

	date("11", "PROD DATE", "Production date"),
	date("12", "DUE DATE", "Due date"),
	date("13", "PACK DATE", "Packaging date"),
	date("15", "BEST BEFORE or BEST BY", "Best before date"),
	date("16", "SELL BY", "Sell by date"),
	date("17", "USE BY OR EXPIRY", "Expiration date"),

	fixed("20", "VARIANT", "Internal product variant", 2),
	variable("10", "BATCH/LOT", "Batch or lot number", 20),
	variable("21", "SERIAL", "Serial number", 20),
	variable("22", "CPV", "Consumer product variant", 20),
	variable("30", "VAR. COUNT", "Variable count of items", 8),
	variable("37", "COUNT", "Count of trade items contained", 8),

	variable("400", "ORDER NUMBER", "Customer purchase order number", 30),
	variable("401", "CONSIGNMENT", "Consignment number", 30),
	fixed("402", "GSIN", "Global shipment identification number", 17),
	variable("403", "ROUTE", "Routing code", 30),
	fixed("410", "SHIP TO LOC", "Ship to / deliver to global location number", 13),
	fixed("411", "BILL TO", "Bill to / invoice to global location number", 13),
	fixed("412", "PURCHASE FROM", "Purchase from global location number", 13),
	fixed("413", "SHIP FOR LOC", "Ship for / deliver for global location number", 13),
	fixed("414", "LOC No", "Physical location global location number", 13),
	fixed("415", "PAY TO", "Global location number of the invoicing party", 13),
	fixed("416", "PROD/SERV LOC", "Global location number of the production/service location", 13),
	variable("420", "SHIP TO POST", "Ship to / deliver to postal code (single postal authority)", 20),
	variable("421", "SHIP TO POST", "Ship to / deliver to postal code with ISO country code", 12),
	fixed("422", "ORIGIN", "Country of origin of trade item", 3),
	variable("423", "COUNTRY - INITIAL PROCESS", "Country of initial processing", 15),
	fixed("424", "COUNTRY - PROCESS", "Country of processing", 3),
	variable("425", "COUNTRY - DISASSEMBLY", "Country of disassembly", 15),
	fixed("426", "COUNTRY - FULL PROCESS", "Country covering full process chain", 3),

	fixed("7001", "NSN", "NATO stock number", 13),
	variable("7002", "MEAT CUT", "UN/ECE meat carcass classification", 30),
	fixed("8005", "PRICE PER UNIT", "Price per unit of measure", 6),
	fixed("8006", "ITIP", "Identification of an individual trade item piece", 22),
	variable("8007", "IBAN", "International bank account number", 34),
	variable("8008", "PROD TIME", "Date and time of production", 12),
	variable("8020", "REF No", "Payment slip reference number", 25),

	variable("90", "INTERNAL", "Mutually agreed information between trading partners", 30),
}

// moneyBase describes one generated moneyFamily (AIs base+"0" through
// base+"5"): GS1's published 390n-395n range alternates a plain single-area
// amount with a currency-coded sibling, two bases at a time.
type moneyBase struct {
	base          int
	title, desc   string
	currencyCoded bool
}

var moneyBases = []moneyBase{
	{390, "AMOUNT", "Amount payable, single monetary area", false},
	{391, "AMOUNT", "Amount payable with ISO currency code", true},
	{392, "PRICE", "Amount payable per unit, single monetary area", false},
	{393, "PRICE", "Amount payable per unit with ISO currency code", true},
	{394, "PRCNT OFF", "Percentage discount of a coupon", false},
	{395, "AMOUNT", "Amount payable per unit, single monetary area, variable measure", true},
}

func init() {
	var generated []Entry
	// 310n-316n, 320n-329n, 330n-337n, and 340n-369n are all GS1 implied-
	// decimal measurement families (net/gross weight, length, area, volume,
	// and logistics measures), every one keyed the same way: the AI's own
	// last digit names the number of fractional digits.
	for base := 310; base <= 316; base++ {
		generated = append(generated, measureFamily(strconv.Itoa(base), "measurement", "GS1 implied-decimal measurement")...)
	}
	for base := 320; base <= 329; base++ {
		generated = append(generated, measureFamily(strconv.Itoa(base), "measurement", "GS1 implied-decimal measurement")...)
	}
	for base := 330; base <= 337; base++ {
		generated = append(generated, measureFamily(strconv.Itoa(base), "measurement", "GS1 implied-decimal measurement")...)
	}
	for base := 340; base <= 369; base++ {
		generated = append(generated, measureFamily(strconv.Itoa(base), "measurement", "GS1 implied-decimal measurement")...)
	}
	for _, m := range moneyBases {
		generated = append(generated, moneyFamily(strconv.Itoa(m.base), m.title, m.desc, m.currencyCoded)...)
	}
	for n := 91; n <= 99; n++ {
		generated = append(generated, variable(itoa(n/10)+itoa(n%10), "INTERNAL", "Mutually agreed information between trading partners", 90))
	}

	catalog = make(map[string]Entry, len(literalEntries)+len(generated))
	for _, e := range append(append([]Entry{}, literalEntries...), generated...) {
		catalog[e.AI] = e
	}
}

var catalog map[string]Entry

// Lookup finds the catalog Entry whose AI is the longest prefix of buffer,
// trying lengths 4 down to 2. It reports false if no AI in the catalog
// prefixes buffer.
func Lookup(buffer string) (Entry, bool) {
	for length := 4; length >= 2; length-- {
		if len(buffer) < length {
			continue
		}
		if e, ok := catalog[buffer[:length]]; ok {
			return e, true
		}
	}
	return Entry{}, false
}
