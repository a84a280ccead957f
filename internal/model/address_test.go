package model_test

import (
	"encoding/json"
	"testing"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateFloat(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected float64
		valid    bool
	}{
		{name: "Number", raw: `40.5`, expected: 40.5, valid: true},
		{name: "Numeric string", raw: `" -73.25 "`, expected: -73.25, valid: true},
		{name: "Null", raw: `null`, valid: false},
		{name: "Empty string", raw: `""`, valid: false},
		{name: "Text", raw: `"n/a"`, valid: false},
		{name: "NaN string", raw: `"NaN"`, valid: false},
		{name: "Infinity string", raw: `"Infinity"`, valid: false},
		{name: "Negative inf string", raw: `"-Inf"`, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			var address model.Address
			require.NoError(t, json.Unmarshal([]byte(`{"key":"a","latitude":`+tc.raw+`}`), &address))

			// When
			value, ok := address.Latitude.Float()

			// Then
			assert.Equal(t, tc.valid, ok)
			if tc.valid {
				assert.InDelta(t, tc.expected, value, 1e-9)
			} else {
				assert.Zero(t, value)
			}
		})
	}
}
