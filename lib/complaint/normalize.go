// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

package complaint

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Flag is a boolean that tolerates the remote layer's loose flag
// encodings. JSON true, the number 1, and the case-insensitive
// string "true" all decode to true; everything else (false, 0, other
// strings, null, even a malformed value) decodes to false.
// Normalization happens exactly once, here at the decode boundary.
type Flag bool

// UnmarshalJSON implements the tolerant decoding described on Flag.
// It never returns an error: an undecodable value is a data-shape
// anomaly absorbed as false.
func (flag *Flag) UnmarshalJSON(data []byte) error {
	*flag = Flag(truthy(data))
	return nil
}

// MarshalJSON encodes the normalized boolean.
func (flag Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(flag))
}

// Bool returns the flag as a plain bool.
func (flag Flag) Bool() bool {
	return bool(flag)
}

// truthy decides whether a raw JSON value represents an asserted flag.
func truthy(data []byte) bool {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return false
	}
	switch value := value.(type) {
	case bool:
		return value
	case float64:
		return value == 1
	case string:
		return strings.EqualFold(value, "true")
	}
	return false
}

// LooseStrings is a string list that tolerates the shapes the remote
// layer has been observed producing for the AI annotation lists:
// a proper string array, an array with numeric elements (related
// complaint IDs are sometimes numbers), a JSON-encoded array nested
// inside a string, or garbage. Anything unrecoverable decodes to an
// empty list; a data-shape anomaly is never a user-visible error.
type LooseStrings []string

// UnmarshalJSON implements the tolerant decoding described on
// LooseStrings. It never returns an error.
func (list *LooseStrings) UnmarshalJSON(data []byte) error {
	*list = parseLooseStrings(data)
	return nil
}

// MarshalJSON encodes the normalized list as a plain string array.
func (list LooseStrings) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(list))
}

func parseLooseStrings(data []byte) []string {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch raw := raw.(type) {
	case []any:
		return stringifyElements(raw)

	case string:
		// A list double-encoded as a JSON string, e.g. "[\"a\",\"b\"]".
		var nested []any
		if err := json.Unmarshal([]byte(raw), &nested); err != nil {
			return nil
		}
		return stringifyElements(nested)
	}

	return nil
}

// stringifyElements converts array elements to strings, keeping string
// and integral numeric elements and skipping anything else.
func stringifyElements(elements []any) []string {
	var result []string
	for _, element := range elements {
		switch element := element.(type) {
		case string:
			result = append(result, element)
		case float64:
			result = append(result, strconv.FormatFloat(element, 'f', -1, 64))
		}
	}
	return result
}
