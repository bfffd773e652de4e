package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openrent/sui-rental-gateway/internal/domain"
)

func TestParseSUI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "whole amount", input: "5", expected: "5000000000"},
		{name: "fractional amount", input: "0.1", expected: "100000000"},
		{name: "mixed amount", input: "1.5", expected: "1500000000"},
		{name: "full precision", input: "0.000000001", expected: "1"},
		{name: "leading dot", input: ".5", expected: "500000000"},
		{name: "zero", input: "0", expected: "0"},
		{name: "whitespace trimmed", input: " 2.25 ", expected: "2250000000"},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "too many decimals", input: "0.0000000001", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mist, err := domain.ParseSUI(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, mist.String())
		})
	}
}

func TestFormatSUI(t *testing.T) {
	tests := []struct {
		name     string
		mist     *big.Int
		expected string
	}{
		{name: "nil", mist: nil, expected: "0.00"},
		{name: "zero", mist: big.NewInt(0), expected: "0.00"},
		{name: "tenth", mist: big.NewInt(100_000_000), expected: "0.10"},
		{name: "whole", mist: big.NewInt(15_000_000_000), expected: "15.00"},
		{name: "truncates below cents", mist: big.NewInt(1_239_999_999), expected: "1.23"},
		{name: "sub-cent dust", mist: big.NewInt(1), expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.FormatSUI(tt.mist))
		})
	}
}

func TestParseMist(t *testing.T) {
	v, err := domain.ParseMist("100000000")
	assert.NoError(t, err)
	assert.Equal(t, "100000000", v.String())

	_, err = domain.ParseMist("-5")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = domain.ParseMist("1.5")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestRentTotal(t *testing.T) {
	// 5 SUI per day for 3 days = 15 SUI
	pricePerDay := big.NewInt(5_000_000_000)
	total := domain.RentTotal(pricePerDay, 3)
	assert.Equal(t, "15000000000", total.String())
	assert.Equal(t, "15.00", domain.FormatSUI(total))

	assert.Equal(t, "0", domain.RentTotal(nil, 3).String())
	assert.Equal(t, "0", domain.RentTotal(pricePerDay, 0).String())
}
