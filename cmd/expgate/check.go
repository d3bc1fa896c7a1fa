package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"expgate/internal/diagfmt"
	"expgate/internal/driver"
	"expgate/internal/sema"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <manifest.toml>...",
	Short: "Run the experimental-API usage gate over compilation fixtures",
	Long:  `Check loads resolved compilation manifests and reports every usage of an experimentally-marked declaration that is neither opted into nor propagated`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|msgpack)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().String("experimental-class", "", "override the marker-declaring annotation class")
	checkCmd.Flags().String("optin-class", "", "override the opt-in annotation class")
	checkCmd.Flags().String("target-class", "", "override the target-restriction annotation class")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	jobs, _ := cmd.Flags().GetInt("jobs")
	withNotes, _ := cmd.Flags().GetBool("with-notes")
	maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")
	colorMode, _ := cmd.Flags().GetString("color")

	names := sema.WellKnown{}
	names.Experimental, _ = cmd.Flags().GetString("experimental-class")
	names.OptIn, _ = cmd.Flags().GetString("optin-class")
	names.Target, _ = cmd.Flags().GetString("target-class")

	fs, results, err := driver.CheckFiles(cmd.Context(), args, driver.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Names:          names,
	})
	if err != nil {
		return err
	}
	bag := driver.Merge(results, maxDiagnostics)

	switch format {
	case "pretty":
		diagfmt.Pretty(cmd.OutOrStdout(), bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(colorMode, os.Stdout),
			ShowNotes: withNotes,
		})
	case "msgpack":
		if err := diagfmt.EncodeMsgpack(cmd.OutOrStdout(), bag, fs); err != nil {
			return fmt.Errorf("encode diagnostics: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if bag.HasErrors() {
		// Error-severity findings block a successful run; the diagnostics
		// above are the explanation.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		os.Exit(1)
	}
	return nil
}
