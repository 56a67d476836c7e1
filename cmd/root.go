package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Francis1918/citamed_backend/cmd/http"
	systemcmd "github.com/Francis1918/citamed_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "citamed",
	Short: "CitaMed medical appointment scheduling engine.",
	Long: `CitaMed is the scheduling engine for outpatient medical centers.
It manages patient and doctor registries, computes availability, runs the
appointment lifecycle and keeps the notification audit log.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
