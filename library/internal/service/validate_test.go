package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidPatronID(t *testing.T) {
	var tests = []struct {
		id    string
		valid bool
	}{
		{"123456", true},
		{"000000", true},
		{"12345", false},
		{"1234567", false},
		{"12345a", false},
		{"12 456", false},
		{"", false},
		{"12345６", false}, // full-width digit is not ASCII
	}
	for _, tt := range tests {
		require.Equal(t, tt.valid, validPatronID(tt.id), "patron id %q", tt.id)
	}
}

func TestValidISBN(t *testing.T) {
	var tests = []struct {
		isbn  string
		valid bool
	}{
		{"1234567890123", true},
		{"0000000000000", true},
		{"123456789012", false},
		{"12345678901234", false},
		{"12345678901ab", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.valid, validISBN(tt.isbn), "isbn %q", tt.isbn)
	}
}

func TestValidTransactionID(t *testing.T) {
	var tests = []struct {
		id    string
		valid bool
	}{
		{"txn_abc123", true},
		{"txn_1", true},
		{"txn_", false},
		{"TXN_abc", false},
		{"payment_123", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.valid, validTransactionID(tt.id), "transaction id %q", tt.id)
	}
}
