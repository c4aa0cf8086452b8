// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-ipcalc/internal/pkg/report"
)

// SubnetReport is one subnet report together with the interface the
// underlying address was found on.
type SubnetReport struct {
	Interface string
	Report    report.Report
}

// SubnetReporter is the primary port for producing subnet reports from
// some source of addresses. This interface defines the contract that
// reporting adapters must implement; the local-interface inspector is
// the "adapter" side of the pattern.
type SubnetReporter interface {
	// Reports derives a subnet report for every IPv4 address in scope.
	// It returns an error if the address source cannot be read or the
	// context is cancelled.
	Reports(ctx context.Context) ([]SubnetReport, error)

	// Scope returns a human-readable description of the address source,
	// e.g. an interface name or "all interfaces".
	Scope() string
}
