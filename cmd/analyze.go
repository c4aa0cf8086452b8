package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang-ipcalc/internal/pkg/config"
	"golang-ipcalc/internal/pkg/ipcalc"
	"golang-ipcalc/internal/pkg/logging"
	"golang-ipcalc/internal/pkg/report"

	"github.com/spf13/cobra"
)

var (
	analyzeConfigFlag string
	analyzeJSONFlag   bool
)

// analyzeAddress runs the calculator over one raw address and writes the
// outcome to out. Format violations produce the two reference messages
// instead of a diagnostic; there is no non-zero exit signaling.
func analyzeAddress(out io.Writer, raw string, asJSON bool) {
	cidr, err := ipcalc.Parse(raw)
	if err != nil {
		if errors.Is(err, ipcalc.ErrMissingPrefix) {
			fmt.Fprintln(out, "Missing prefix")
		} else {
			fmt.Fprintln(out, "Error")
		}
		return
	}

	r := report.Build(cidr)
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			logging.WithComponentAndCIDR("analyze", raw).WithError(err).Error("Failed to encode report")
		}
		return
	}
	fmt.Fprint(out, r.Text())
}

// promptAddress asks for a raw address and reads one line from in.
func promptAddress(out io.Writer, in io.Reader) (string, error) {
	fmt.Fprint(out, "Input raw address in the ###.###.###.###/## format: ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read address: %w", err)
		}
		return "", fmt.Errorf("no input")
	}
	return scanner.Text(), nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [raw-address]",
	Short: "Compute the subnet properties of one CIDR address",
	Long: `Compute network and broadcast addresses, the binary subnet mask,
the usable host range, the classful category and the private flag of an
IPv4 address given in ###.###.###.###/## notation. With no argument the
address is read interactively from stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(analyzeConfigFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Config validation error: %v\n", err)
			return
		}

		logging.InitLogger(cfg.Logging)

		var raw string
		if len(args) == 1 {
			raw = args[0]
		} else {
			raw, err = promptAddress(os.Stdout, os.Stdin)
			if err != nil {
				fmt.Println("Error")
				return
			}
		}

		asJSON := analyzeJSONFlag || cfg.Output.Format == config.FormatJSON
		analyzeAddress(os.Stdout, raw, asJSON)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigFlag, "config", "f", "", "Path to config file (YAML)")
	analyzeCmd.Flags().BoolVar(&analyzeJSONFlag, "json", false, "Emit the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}
