//go:build unit

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"golang-ipcalc/internal/pkg/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeAddress(t *testing.T) {
	t.Run("ValidAddress", func(t *testing.T) {
		var out bytes.Buffer
		analyzeAddress(&out, "192.168.1.15/24", false)

		want := `IP address: 192.168.1.15
Network Address: 192.168.1.0
Broadcast Address: 192.168.1.255
Binary Subnet Mask: 11111111.11111111.11111111.00000000
First usable host IP: 192.168.1.1
Penultimate usable host IP: 192.168.1.253
Number of usable Hosts: 254
IP class: C
IP type private: true
`
		assert.Equal(t, want, out.String())
	})

	t.Run("ValidAddressJSON", func(t *testing.T) {
		var out bytes.Buffer
		analyzeAddress(&out, "91.124.230.205/30", true)

		var r report.Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &r))
		assert.Equal(t, "91.124.230.204", r.NetworkAddress)
		assert.Equal(t, "91.124.230.207", r.BroadcastAddress)
		assert.Equal(t, int64(2), r.UsableHosts)
		assert.Equal(t, "A", r.Class)
		assert.False(t, r.Private)
	})

	t.Run("MalformedAddress", func(t *testing.T) {
		for _, raw := range []string{"192.168.1/24", "256.0.0.1/24", "10.0.0.1/33", "a.b.c.d/8"} {
			var out bytes.Buffer
			analyzeAddress(&out, raw, false)
			assert.Equal(t, "Error\n", out.String(), raw)
		}
	})

	t.Run("MissingPrefix", func(t *testing.T) {
		var out bytes.Buffer
		analyzeAddress(&out, "192.168.1.15", false)
		assert.Equal(t, "Missing prefix\n", out.String())
	})

	t.Run("MissingPrefixNonNumeric", func(t *testing.T) {
		var out bytes.Buffer
		analyzeAddress(&out, "192.168.one.15", false)
		assert.Equal(t, "Error\n", out.String())
	})
}

func TestPromptAddress(t *testing.T) {
	t.Run("ReadsOneLine", func(t *testing.T) {
		var out bytes.Buffer
		raw, err := promptAddress(&out, strings.NewReader("10.0.0.1/8\n"))
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.1/8", raw)
		assert.Contains(t, out.String(), "###.###.###.###/##")
	})

	t.Run("EmptyInput", func(t *testing.T) {
		var out bytes.Buffer
		_, err := promptAddress(&out, strings.NewReader(""))
		assert.Error(t, err)
	})
}
