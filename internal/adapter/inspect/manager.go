// Package inspect provides a subnet reporting adapter that reads the
// IPv4 addresses configured on local network interfaces.
package inspect

import (
	"context"
	"fmt"
	"net/netip"

	"golang-ipcalc/internal/pkg/ipcalc"
	"golang-ipcalc/internal/pkg/logging"
	"golang-ipcalc/internal/pkg/report"
	"golang-ipcalc/internal/port"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"go4.org/netipx"
)

// Manager is an adapter that implements the SubnetReporter port over the
// host's network interfaces. It only reads interface state; the subnet
// math itself stays in the ipcalc package.
type Manager struct {
	ifaceName  string
	networkMgr port.NetworkManager
}

// Ensure Manager implements the SubnetReporter port
var _ port.SubnetReporter = (*Manager)(nil)

// NewManager creates a new interface inspection adapter. An empty
// interface name puts every link on the host in scope.
func NewManager(ifaceName string, networkMgr port.NetworkManager) *Manager {
	return &Manager{
		ifaceName:  ifaceName,
		networkMgr: networkMgr,
	}
}

// Scope returns the name of the inspected interface, or "all interfaces".
func (m *Manager) Scope() string {
	if m.ifaceName == "" {
		return "all interfaces"
	}
	return m.ifaceName
}

// Reports derives a subnet report for every IPv4 address in scope.
// This method implements the SubnetReporter port.
func (m *Manager) Reports(ctx context.Context) ([]port.SubnetReport, error) {
	logger := logging.WithComponent("inspect")

	var links []netlink.Link
	if m.ifaceName != "" {
		link, err := m.networkMgr.GetLinkByName(m.ifaceName)
		if err != nil {
			return nil, err
		}
		links = []netlink.Link{link}
	} else {
		all, err := m.networkMgr.ListLinks()
		if err != nil {
			return nil, err
		}
		links = all
	}

	var reports []port.SubnetReport
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := link.Attrs().Name
		addrs, err := m.networkMgr.ListAddresses(link)
		if err != nil {
			return nil, fmt.Errorf("failed to list addresses on %s: %w", name, err)
		}

		for _, addr := range addrs {
			r, err := m.reportForAddress(name, addr)
			if err != nil {
				logger.WithError(err).WithField("interface", name).Warn("Skipping address")
				continue
			}
			reports = append(reports, r)
		}
	}

	logger.WithFields(logrus.Fields{
		"scope":   m.Scope(),
		"reports": len(reports),
	}).Info("Inspected interface addresses")
	return reports, nil
}

// reportForAddress turns one configured address into a subnet report.
func (m *Manager) reportForAddress(ifaceName string, addr netlink.Addr) (port.SubnetReport, error) {
	ip := addr.IPNet.IP.To4()
	if ip == nil {
		return port.SubnetReport{}, fmt.Errorf("not an IPv4 address: %s", addr.IPNet)
	}

	ones, bits := addr.IPNet.Mask.Size()
	if bits != 32 {
		return port.SubnetReport{}, fmt.Errorf("not an IPv4 mask on %s: %s", ifaceName, addr.IPNet)
	}

	raw := fmt.Sprintf("%d.%d.%d.%d/%d", ip[0], ip[1], ip[2], ip[3], ones)
	cidr, err := ipcalc.Parse(raw)
	if err != nil {
		return port.SubnetReport{}, fmt.Errorf("failed to parse %s: %w", raw, err)
	}

	prefix := netip.PrefixFrom(netip.AddrFrom4([4]byte(ip)), ones)
	ipRange := netipx.RangeOfPrefix(prefix.Masked())
	logging.WithComponentAndCIDR("inspect", raw).WithFields(logrus.Fields{
		"interface":  ifaceName,
		"range_from": ipRange.From().String(),
		"range_to":   ipRange.To().String(),
	}).Debug("Derived address range")

	return port.SubnetReport{
		Interface: ifaceName,
		Report:    report.Build(cidr),
	}, nil
}
