//go:build unit

package ipcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("ValidAddress", func(t *testing.T) {
		cidr, err := Parse("192.168.1.15/24")
		require.NoError(t, err)
		assert.Equal(t, Address{192, 168, 1, 15}, cidr.Addr)
		assert.Equal(t, 24, cidr.Prefix)
		assert.Equal(t, "192.168.1.15/24", cidr.String())
	})

	t.Run("PrefixBoundaries", func(t *testing.T) {
		for _, raw := range []string{"10.0.0.1/0", "10.0.0.1/32"} {
			_, err := Parse(raw)
			assert.NoError(t, err, raw)
		}
	})

	t.Run("OctetBoundaries", func(t *testing.T) {
		cidr, err := Parse("0.0.0.0/8")
		require.NoError(t, err)
		assert.Equal(t, Address{0, 0, 0, 0}, cidr.Addr)

		cidr, err = Parse("255.255.255.255/8")
		require.NoError(t, err)
		assert.Equal(t, Address{255, 255, 255, 255}, cidr.Addr)
	})

	t.Run("LeadingZerosAccepted", func(t *testing.T) {
		cidr, err := Parse("010.001.000.001/08")
		require.NoError(t, err)
		assert.Equal(t, Address{10, 1, 0, 1}, cidr.Addr)
		assert.Equal(t, 8, cidr.Prefix)
	})

	t.Run("WrongDotCount", func(t *testing.T) {
		for _, raw := range []string{"192.168.1/24", "192.168.1.1.1/24", "19216811/24", "192.168.1.15."} {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrFormat, raw)
		}
	})

	t.Run("OctetOutOfRange", func(t *testing.T) {
		for _, raw := range []string{"256.0.0.1/24", "1.2.3.999/8", "300.300.300.300/8"} {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrFormat, raw)
		}
	})

	t.Run("PrefixOutOfRange", func(t *testing.T) {
		for _, raw := range []string{"10.0.0.1/33", "10.0.0.1/99", "10.0.0.1/123456789012345678901"} {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrFormat, raw)
		}
	})

	t.Run("NonNumericFields", func(t *testing.T) {
		for _, raw := range []string{"a.b.c.d/24", "10.0.0.x/8", "10.0.0.1/x", "10.0.-1.1/8", "10.0..1/8", "10.0.0.1/"} {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrFormat, raw)
		}
	})

	t.Run("WhitespaceNotTrimmed", func(t *testing.T) {
		for _, raw := range []string{" 10.0.0.1/8", "10.0.0.1/8 ", "10.0.0.1 /8"} {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrFormat, raw)
		}
	})

	t.Run("SecondSlash", func(t *testing.T) {
		_, err := Parse("10.0.0.1/8/8")
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("MissingPrefix", func(t *testing.T) {
		_, err := Parse("192.168.1.15")
		assert.ErrorIs(t, err, ErrMissingPrefix)
	})

	t.Run("MissingPrefixIgnoresOctetRange", func(t *testing.T) {
		// The no-slash path checks only that the fields are digits, so
		// an out-of-range octet still reports the missing prefix.
		_, err := Parse("999.1.2.3")
		assert.ErrorIs(t, err, ErrMissingPrefix)
	})

	t.Run("MissingPrefixWithNonNumericField", func(t *testing.T) {
		for _, raw := range []string{"192.168.one.15", "192.168..15"} {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrFormat, raw)
		}
	})
}
