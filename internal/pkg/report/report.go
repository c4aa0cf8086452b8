// Package report assembles the displayable subnet properties of a
// parsed CIDR into a single value and renders them.
package report

import (
	"fmt"
	"strings"

	"golang-ipcalc/internal/pkg/ipcalc"
)

// Report carries every derived property of one CIDR in display form.
type Report struct {
	CIDR                  string `json:"cidr"`
	IP                    string `json:"ip"`
	NetworkAddress        string `json:"network_address"`
	BroadcastAddress      string `json:"broadcast_address"`
	SubnetMask            string `json:"subnet_mask"`
	BinarySubnetMask      string `json:"binary_subnet_mask"`
	FirstUsableHost       string `json:"first_usable_host"`
	PenultimateUsableHost string `json:"penultimate_usable_host"`
	UsableHosts           int64  `json:"usable_hosts"`
	Class                 string `json:"class"`
	Private               bool   `json:"private"`
}

// Build derives all report fields from a parsed CIDR.
func Build(c ipcalc.CIDR) Report {
	network := c.Network()
	broadcast := c.Broadcast()
	mask := c.Mask()

	return Report{
		CIDR:                  c.String(),
		IP:                    c.Addr.String(),
		NetworkAddress:        network.String(),
		BroadcastAddress:      broadcast.String(),
		SubnetMask:            mask.String(),
		BinarySubnetMask:      mask.Binary(),
		FirstUsableHost:       ipcalc.FirstUsableHost(network).String(),
		PenultimateUsableHost: ipcalc.PenultimateUsableHost(broadcast).String(),
		UsableHosts:           ipcalc.UsableHostCount(c.Prefix),
		Class:                 c.Addr.Class().String(),
		Private:               c.Addr.IsPrivate(),
	}
}

// Text renders the report as the reference nine-line block.
func (r Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "IP address: %s\n", r.IP)
	fmt.Fprintf(&b, "Network Address: %s\n", r.NetworkAddress)
	fmt.Fprintf(&b, "Broadcast Address: %s\n", r.BroadcastAddress)
	fmt.Fprintf(&b, "Binary Subnet Mask: %s\n", r.BinarySubnetMask)
	fmt.Fprintf(&b, "First usable host IP: %s\n", r.FirstUsableHost)
	fmt.Fprintf(&b, "Penultimate usable host IP: %s\n", r.PenultimateUsableHost)
	fmt.Fprintf(&b, "Number of usable Hosts: %d\n", r.UsableHosts)
	fmt.Fprintf(&b, "IP class: %s\n", r.Class)
	fmt.Fprintf(&b, "IP type private: %t\n", r.Private)
	return b.String()
}
