package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "currseed",
	Short: "Generate the curriculum seed script from vendor CSV exports",
	Long: `currseed reads the curriculum CSV exports published by each provider,
derives stable identifiers for providers, libraries, lessons and standards,
and writes one idempotent SQL script that upserts them all.

Running currseed without a subcommand is the same as "currseed generate".

Configuration (highest precedence first):
  --output, --csv flags
  CURRSEED_OUTPUT, CURRSEED_CSV_<PROVIDER> environment variables (.env and --env-file)
  currseed.yaml in the working directory
  built-in defaults

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  14 - Input CSV not found
  15 - Input CSV could not be parsed
  16 - Seed script on disk is stale (check)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	addSourceFlags(rootCmd, &sources)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
