package cmd

import (
	"context"
	"fmt"

	"golang-ipcalc/internal/adapter/infrastructure/network"
	"golang-ipcalc/internal/adapter/inspect"
	"golang-ipcalc/internal/pkg/config"
	"golang-ipcalc/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	interfacesConfigFlag string
	interfacesIfaceFlag  string
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "Report the subnets of the IPv4 addresses on local interfaces",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(interfacesConfigFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Config validation error: %v\n", err)
			return
		}

		logging.InitLogger(cfg.Logging)
		logger := logging.WithComponent("interfaces")

		networkMgr := network.NewManagerAdapter()
		manager := inspect.NewManager(interfacesIfaceFlag, networkMgr)

		reports, err := manager.Reports(context.Background())
		if err != nil {
			logger.WithError(err).Error("Failed to inspect interfaces")
			return
		}
		if len(reports) == 0 {
			logger.WithField("scope", manager.Scope()).Warn("No IPv4 addresses found")
			return
		}

		for _, r := range reports {
			fmt.Printf("%s on %s:\n", r.Report.CIDR, r.Interface)
			fmt.Print(r.Report.Text())
			fmt.Println()
		}
	},
}

func init() {
	interfacesCmd.Flags().StringVarP(&interfacesConfigFlag, "config", "f", "", "Path to config file (YAML)")
	interfacesCmd.Flags().StringVarP(&interfacesIfaceFlag, "iface", "i", "", "Only inspect this interface")
	rootCmd.AddCommand(interfacesCmd)
}
