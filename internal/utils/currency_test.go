package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"crore", 25000000, "₹2.50 Cr"},
		{"exactly one crore", 10000000, "₹1.00 Cr"},
		{"lakh", 1500000, "₹15.00 L"},
		{"exactly one lakh", 100000, "₹1.00 L"},
		{"just under one lakh", 99999, "₹99,999"},
		{"thousands", 40000, "₹40,000"},
		{"small", 750, "₹750"},
		{"zero", 0, "₹0"},
		{"negative", -1234, "₹-1,234"},
		{"beyond int64", -1e20, "₹-100,000,000,000,000,000,000"},
		{"rounds to whole rupees", 1234.6, "₹1,235"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}
