package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/textline-regions/internal/config"
	"github.com/ironsheep/textline-regions/internal/server"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information shown by --version and reported
// to MCP clients. main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
	server.Version = v
}

// Execute runs the CLI. With no subcommand it serves MCP over stdio, which is
// how MCP clients launch it.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "textline-regions",
		Short:        "Group detected text lines into reading regions",
		Long:         `textline-regions clusters text-line quadrilaterals from a detector into paragraphs, columns and captions, and serves the clustering to MCP clients.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.ApplyEnv(); err != nil {
				return err
			}

			level, err := cfg.LogLevel()
			if err != nil {
				return err
			}
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			logger.Debug("loaded configuration", "path", configPath, "refine", cfg.Refine, "ocr_language", cfg.OCR.Language)

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveStdio(cmd.Context())
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("textline-regions %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("TEXTLINE_CONFIG"), "TOML configuration file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMergeCmd())
	root.AddCommand(newDetectCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newOCRCmd())

	return root
}
