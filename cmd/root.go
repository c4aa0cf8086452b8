package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-ipcalc",
	Short: "golang-ipcalc is an IPv4 subnet calculator written in Go",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
