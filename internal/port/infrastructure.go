// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"github.com/vishvananda/netlink"
)

//go:generate mockgen -destination=../mock/network.go -package=mock golang-ipcalc/internal/port NetworkManager

// NetworkManager is a port for network interface operations.
// This interface abstracts the read-only netlink queries the inspector
// needs; nothing in this application mutates interface state.
type NetworkManager interface {
	// ListLinks returns all network links on the host
	ListLinks() ([]netlink.Link, error)

	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)
}
