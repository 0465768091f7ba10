package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalUnmarshalNumber(t *testing.T) {
	var payload struct {
		Price Decimal `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": 45000.50}`), &payload))
	assert.Equal(t, Decimal("45000.50"), payload.Price)
}

func TestDecimalUnmarshalString(t *testing.T) {
	var payload struct {
		Price Decimal `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": "199.99"}`), &payload))
	assert.Equal(t, Decimal("199.99"), payload.Price)
}

func TestDecimalUnmarshalNull(t *testing.T) {
	var payload struct {
		Price Decimal `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &payload))
	assert.Equal(t, Decimal(""), payload.Price)
}

func TestDecimalKeepsExactText(t *testing.T) {
	// A value that loses precision as float64 must survive untouched.
	var payload struct {
		Price Decimal `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": 0.30000000000000004}`), &payload))
	assert.Equal(t, Decimal("0.30000000000000004"), payload.Price)
}

func TestDecimalFloat64(t *testing.T) {
	f, err := Decimal("20").Float64()
	require.NoError(t, err)
	assert.Equal(t, 20.0, f)

	_, err = Decimal("not-a-number").Float64()
	assert.Error(t, err)
}
