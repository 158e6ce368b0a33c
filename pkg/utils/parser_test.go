package utils

import (
	"errors"
	"testing"

	"flightcal-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFlightNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SQ327", "SQ327"},
		{"sq327", "SQ327"},
		{"SQ 327", "SQ327"},
		{"sq 327", "SQ327"},
		{"SQ-327", "SQ327"},
		{"SQ0327", "SQ327"},
		{"SQ000", "SQ0"},
		{"327", "327"},
		{"SQ", "SQ"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeFlightNumber(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeFlightNumberIdempotent(t *testing.T) {
	inputs := []string{"SQ0327", "sq 327", "ba-929", "LH4", "x"}
	for _, in := range inputs {
		once := NormalizeFlightNumber(in)
		assert.Equal(t, once, NormalizeFlightNumber(once), "input %q", in)
	}
}

func TestCarrierCode(t *testing.T) {
	assert.Equal(t, "SQ", CarrierCode("SQ327"))
	assert.Equal(t, "BA", CarrierCode("BA929"))
	assert.Equal(t, "", CarrierCode("327"))
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2024-10-23")
	require.NoError(t, err)
	assert.Equal(t, "20241023", got)
}

func TestNormalizeDateInvalid(t *testing.T) {
	_, err := NormalizeDate("invalid-date")
	require.Error(t, err)

	var invalid *entity.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}
