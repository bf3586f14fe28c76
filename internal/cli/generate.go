package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mathclaw/currseed/internal/files/filesystem"
	"github.com/mathclaw/currseed/internal/logging"
	"github.com/mathclaw/currseed/internal/services"
	"github.com/mathclaw/currseed/internal/tui"
	"github.com/mathclaw/currseed/pkg/currseed"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the seed script from the configured CSV exports",
	Long: `Reads every provider's CSV export and writes the curriculum seed script.

The script is written to a temporary file next to the destination and renamed
into place, so an existing seed is never left half written. Any failure leaves
the previous file untouched.

Examples:
  currseed generate
  currseed generate --csv math_medic=exports/mm.csv
  currseed generate -o - | psql "$DATABASE_URL"`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	logger := logging.NewConsoleLogger(stderr, verbose)

	cfg, err := resolveGenerateConfig(".", sources, logger)
	if err != nil {
		return err
	}
	cfg.Verbose = verbose

	svc := services.NewGeneratorService(filesystem.NewOSFileSystem(), logger)

	if cfg.OutputPath == currseed.StdoutPath {
		result, err := svc.Build(commandContext(cmd), cfg)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, result.Script); err != nil {
			return fmt.Errorf("failed to write script: %w", err)
		}
		fmt.Fprint(stderr, tui.RenderSummary(result.Summary, tui.DetectMode(stderr)))
		return nil
	}

	summary, err := svc.Generate(commandContext(cmd), cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, tui.RenderSummary(*summary, tui.DetectMode(stdout)))
	return nil
}
