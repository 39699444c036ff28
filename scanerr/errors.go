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

// Package scanerr holds the two error types every decoder in this module
// raises: ParseError for malformed input, and ChecksumError, a refinement of
// ParseError, for a check digit that doesn't match the payload it guards.
package scanerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports that a value could not be parsed as the format its
// decoder expected: wrong length, non-digit where a digit was required, an
// unknown Application Identifier, a separator appearing after a fixed-length
// field, and so on.
type ParseError struct {
	// Value is the offending input, or the specific substring that triggered
	// the failure when the decoder was only looking at part of a larger value.
	Value string
	msg   string
}

// NewParseError builds a ParseError whose message is formatted with fmt.Sprintf.
func NewParseError(value, format string, args ...interface{}) *ParseError {
	return &ParseError{Value: value, msg: fmt.Sprintf(format, args...)}
}

// WrapParseError builds a ParseError whose message is the formatted context
// followed by err's message. Only that text is kept: err itself, and any
// stack trace it carries, is not retained and is not printed by %+v.
func WrapParseError(err error, value, format string, args ...interface{}) *ParseError {
	return &ParseError{Value: value, msg: errors.Wrapf(err, format, args...).Error()}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.msg, e.Value)
}

// ChecksumError is a ParseError refinement raised when a check digit
// computed over a payload disagrees with the check digit found in the input.
type ChecksumError struct {
	*ParseError
	// Expected is the check digit computed from the payload.
	Expected string
	// Actual is the check digit found at the end of the input.
	Actual string
}

// NewChecksumError builds a ChecksumError for a mismatched check digit.
func NewChecksumError(value, expected, actual string) *ChecksumError {
	return &ChecksumError{
		ParseError: NewParseError(value,
			"invalid check digit: expected %s, got %s", expected, actual),
		Expected: expected,
		Actual:   actual,
	}
}

// AsChecksumError reports whether err is a *ChecksumError.
func AsChecksumError(err error) (*ChecksumError, bool) {
	ce, ok := err.(*ChecksumError)
	return ce, ok
}
