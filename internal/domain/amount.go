package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// mistPerSui as a big.Int for arbitrary-precision arithmetic
var mistPerSui = big.NewInt(MIST_PER_SUI)

// ParseSUI converts a decimal SUI-unit string (e.g. "0.1") into MIST, the
// smallest currency unit. Amounts are carried as big.Int end to end;
// conversion back to display units happens only at the presentation boundary.
func ParseSUI(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("%w: negative amount %q", ErrInvalidAmount, s)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 9 {
		return nil, fmt.Errorf("%w: %q exceeds 9 decimal places", ErrInvalidAmount, s)
	}
	// Right-pad the fractional part to 9 digits so "0.1" becomes 100000000
	frac += strings.Repeat("0", 9-len(frac))

	wholeInt, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	fracInt, ok := new(big.Int).SetString(frac, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	mist := new(big.Int).Mul(wholeInt, mistPerSui)
	return mist.Add(mist, fracInt), nil
}

// FormatSUI renders a MIST amount as a display-unit string with two decimals
// ("0.10", "15.00"). Truncates beyond two decimal places.
func FormatSUI(mist *big.Int) string {
	if mist == nil {
		return "0.00"
	}

	whole := new(big.Int)
	frac := new(big.Int)
	whole.QuoRem(mist, mistPerSui, frac)

	// Keep the two leading digits of the 9-digit fractional part
	cents := new(big.Int).Quo(frac, big.NewInt(10_000_000))
	return fmt.Sprintf("%s.%02d", whole.String(), cents.Int64())
}

// ParseMist parses a smallest-unit decimal string as carried on the wire
func ParseMist(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is not a valid MIST amount", ErrInvalidAmount, s)
	}
	return v, nil
}

// RentTotal computes the total rental price in MIST for a number of days
func RentTotal(pricePerDay *big.Int, days uint64) *big.Int {
	if pricePerDay == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Mul(pricePerDay, new(big.Int).SetUint64(days))
}
