package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"expgate/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "expgate",
	Short: "Experimental-API usage gate",
	Long:  `expgate checks resolved compilation fixtures for usages of experimentally-marked declarations that lack opt-in or propagation`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color mode against the output terminal.
func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
