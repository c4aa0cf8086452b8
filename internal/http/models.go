package http

import (
	"net/netip"

	"golang-ipcalc/internal/pkg/ipcalc"
	"golang-ipcalc/internal/pkg/report"

	"go4.org/netipx"
)

// SubnetResponse is the JSON view of one subnet report. On top of the
// report fields it carries the exact address range the prefix spans.
type SubnetResponse struct {
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
	RangeStart            string `json:"range_start"`
	RangeEnd              string `json:"range_end"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

func subnetToResponse(c ipcalc.CIDR) SubnetResponse {
	r := report.Build(c)

	prefix := netip.PrefixFrom(netip.AddrFrom4(c.Addr), c.Prefix)
	ipRange := netipx.RangeOfPrefix(prefix.Masked())

	return SubnetResponse{
		CIDR:                  r.CIDR,
		IP:                    r.IP,
		NetworkAddress:        r.NetworkAddress,
		BroadcastAddress:      r.BroadcastAddress,
		SubnetMask:            r.SubnetMask,
		BinarySubnetMask:      r.BinarySubnetMask,
		FirstUsableHost:       r.FirstUsableHost,
		PenultimateUsableHost: r.PenultimateUsableHost,
		UsableHosts:           r.UsableHosts,
		Class:                 r.Class,
		Private:               r.Private,
		RangeStart:            ipRange.From().String(),
		RangeEnd:              ipRange.To().String(),
	}
}
