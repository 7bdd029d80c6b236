package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDepositID(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty set", nil, "DEP001"},
		{"sequential", []string{"DEP001", "DEP002", "DEP003"}, "DEP004"},
		{"gaps from deletions", []string{"DEP001", "DEP002", "DEP005"}, "DEP006"},
		{"unordered", []string{"DEP009", "DEP002", "DEP004"}, "DEP010"},
		{"width extends past three digits", []string{"DEP999"}, "DEP1000"},
		{"wide suffix no truncation", []string{"DEP12345"}, "DEP12346"},
		{"foreign ids ignored", []string{"XYZ001", "DEP", "DEPabc", "DEP002"}, "DEP003"},
		{"only foreign ids", []string{"XYZ001", "TD-17"}, "DEP001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextDepositID(tc.existing))
		})
	}
}

func TestFormatDepositID(t *testing.T) {
	assert.Equal(t, "DEP001", FormatDepositID(1))
	assert.Equal(t, "DEP042", FormatDepositID(42))
	assert.Equal(t, "DEP100", FormatDepositID(100))
	assert.Equal(t, "DEP12346", FormatDepositID(12346))
}
