package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/linguista/linguista"
	"github.com/linguista/linguista/internal/composer"
)

const defaultDraft = "post.md"

func newComposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compose [DRAFT]",
		Short: "Open the terminal composer on a draft file",
		Long: `compose opens a full-screen editor for a post draft: title, type, tags and
a Markdown body with a formatting toolbar. The draft is saved as Markdown with
TOML front matter. Logs go to log.file (default linguista.log next to the
draft) so they do not disturb the screen.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultDraft
			if len(args) == 1 {
				path = args[0]
			}

			logPath := a.cfg.LogFile()
			if !filepath.IsAbs(logPath) {
				logPath = filepath.Join(filepath.Dir(path), logPath)
			}
			f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()

			logger := log.NewWithOptions(f, log.Options{
				Prefix:          linguista.Name,
				Level:           a.logger.GetLevel(),
				ReportTimestamp: true,
			})
			return composer.Run(composer.Options{
				Path:   path,
				Config: a.cfg,
				Logger: logger,
			})
		},
	}
}
