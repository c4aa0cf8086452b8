//go:build unit

package report

import (
	"testing"

	"golang-ipcalc/internal/pkg/ipcalc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("PrivateClassC", func(t *testing.T) {
		cidr, err := ipcalc.Parse("192.168.1.15/24")
		require.NoError(t, err)

		r := Build(cidr)
		assert.Equal(t, "192.168.1.15/24", r.CIDR)
		assert.Equal(t, "192.168.1.15", r.IP)
		assert.Equal(t, "192.168.1.0", r.NetworkAddress)
		assert.Equal(t, "192.168.1.255", r.BroadcastAddress)
		assert.Equal(t, "255.255.255.0", r.SubnetMask)
		assert.Equal(t, "11111111.11111111.11111111.00000000", r.BinarySubnetMask)
		assert.Equal(t, "192.168.1.1", r.FirstUsableHost)
		assert.Equal(t, "192.168.1.253", r.PenultimateUsableHost)
		assert.Equal(t, int64(254), r.UsableHosts)
		assert.Equal(t, "C", r.Class)
		assert.True(t, r.Private)
	})

	t.Run("PublicClassA", func(t *testing.T) {
		cidr, err := ipcalc.Parse("91.124.230.205/30")
		require.NoError(t, err)

		r := Build(cidr)
		assert.Equal(t, "91.124.230.204", r.NetworkAddress)
		assert.Equal(t, "91.124.230.207", r.BroadcastAddress)
		assert.Equal(t, "91.124.230.205", r.FirstUsableHost)
		assert.Equal(t, "91.124.230.205", r.PenultimateUsableHost)
		assert.Equal(t, int64(2), r.UsableHosts)
		assert.Equal(t, "A", r.Class)
		assert.False(t, r.Private)
	})

	t.Run("PrivateClassB", func(t *testing.T) {
		cidr, err := ipcalc.Parse("172.20.5.5/16")
		require.NoError(t, err)

		r := Build(cidr)
		assert.Equal(t, "B", r.Class)
		assert.True(t, r.Private)
	})
}

func TestText(t *testing.T) {
	cidr, err := ipcalc.Parse("192.168.1.15/24")
	require.NoError(t, err)

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
	assert.Equal(t, want, Build(cidr).Text())
}
