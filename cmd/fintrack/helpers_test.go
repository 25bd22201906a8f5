package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-cli/fintrack/internal/common"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "150", want: 150},
		{input: " 99.50 ", want: 99.5},
		{input: "0", wantErr: true},
		{input: "-10", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseMonthFlag(t *testing.T) {
	empty, err := parseMonthFlag("  ")
	require.NoError(t, err)
	assert.True(t, empty.IsZero(), "empty flag means current month")

	m, err := parseMonthFlag("2024-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-07", m.String())

	_, err = parseMonthFlag("July 2024")
	require.Error(t, err)
}
