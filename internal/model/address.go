package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Address status values stored in Address.AddressStatus.
const (
	AddressStatusFullAddress  = "full_address"
	AddressStatusStateCityZip = "state_city_zip"
	AddressStatusDontShow     = "dont_show"
)

const (
	addressKeyField       = "key"
	addressLatitudeField  = "latitude"
	addressLongitudeField = "longitude"
	addressStatusField    = "addressStatus"
)

// Coordinate is a latitude or longitude exactly as received from the member feed.
// Feeds send numbers, numeric strings or nothing at all, so the raw JSON is kept.
type Coordinate struct {
	raw json.RawMessage
}

// NewCoordinate returns a coordinate holding a valid number.
func NewCoordinate(v float64) Coordinate {
	return Coordinate{raw: json.RawMessage(strconv.FormatFloat(v, 'f', -1, 64))}
}

// Float reports the numeric value and whether it is a valid number.
// Numeric strings count as valid; null, absent, NaN, infinities and other values do not.
func (c Coordinate) Float() (float64, bool) {
	raw := bytes.TrimSpace(c.raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		raw = []byte(s)
	}

	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Address is a member address. Fields other than key, latitude, longitude and
// addressStatus are carried through untouched.
type Address struct {
	Key           string
	Latitude      Coordinate
	Longitude     Coordinate
	AddressStatus string

	fields map[string]json.RawMessage
}

// Fields returns a copy of the raw JSON fields the address was decoded from.
func (a Address) Fields() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(a.fields))
	for k, v := range a.fields {
		out[k] = v
	}
	return out
}

// WithStatus returns a copy of the address annotated with status.
func (a Address) WithStatus(status string) Address {
	out := a
	out.fields = a.Fields()
	out.AddressStatus = status
	return out
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("address: %w", err)
	}

	out := Address{fields: fields}
	if raw, ok := fields[addressKeyField]; ok {
		out.Key = rawKey(raw)
	}
	out.Latitude = Coordinate{raw: fields[addressLatitudeField]}
	out.Longitude = Coordinate{raw: fields[addressLongitudeField]}
	if raw, ok := fields[addressStatusField]; ok {
		_ = json.Unmarshal(raw, &out.AddressStatus)
	}

	*a = out
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	fields := a.Fields()

	if _, ok := fields[addressKeyField]; !ok && a.Key != "" {
		key, err := json.Marshal(a.Key)
		if err != nil {
			return nil, err
		}
		fields[addressKeyField] = key
	}
	if len(a.Latitude.raw) > 0 {
		fields[addressLatitudeField] = a.Latitude.raw
	}
	if len(a.Longitude.raw) > 0 {
		fields[addressLongitudeField] = a.Longitude.raw
	}
	if a.AddressStatus != "" {
		status, err := json.Marshal(a.AddressStatus)
		if err != nil {
			return nil, err
		}
		fields[addressStatusField] = status
	}

	return json.Marshal(fields)
}

// rawKey turns a JSON key value into its lookup string: strings as-is,
// numbers by their literal text.
func rawKey(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return ""
	}
	return trimmed
}
