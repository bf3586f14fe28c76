package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathclaw/currseed/internal/files/filesystem"
	"github.com/mathclaw/currseed/internal/logging"
	"github.com/mathclaw/currseed/internal/services"
	"github.com/mathclaw/currseed/internal/tui"
	"github.com/mathclaw/currseed/pkg/currseed"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the committed seed script matches the CSV exports",
	Long: `Regenerates the seed script in memory and compares its SHA-256 with the
file at the output path. Nothing is written.

Exits 0 when the file is current and 16 when it is stale or missing.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)
	stdout := cmd.OutOrStdout()
	logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), verbose)

	cfg, err := resolveGenerateConfig(".", sources, logger)
	if err != nil {
		return err
	}
	if cfg.OutputPath == currseed.StdoutPath {
		return fmt.Errorf("check needs a file path, not %q: %w", currseed.StdoutPath, currseed.ErrInvalidConfig)
	}
	cfg.Verbose = verbose

	svc := services.NewGeneratorService(filesystem.NewOSFileSystem(), logger)
	result, err := svc.Check(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, tui.RenderCheck(*result, tui.DetectMode(stdout)))
	if !result.UpToDate() {
		return fmt.Errorf("%s: %w", result.Path, currseed.ErrStaleSeed)
	}
	return nil
}
