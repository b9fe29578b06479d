// Package cmd holds the linguista command tree.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/linguista/linguista"
	"github.com/linguista/linguista/config"
)

// app is the state shared by every subcommand once the root has resolved
// configuration.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *log.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   linguista.Name,
		Short: "Selection-aware Markdown formatting for posts and poems",
		Long: `linguista applies Markdown formatting rules (bold, italic, quote, lists...)
to a selection of text and returns the new text with the selection moved onto
the formatted content. It also ships a terminal composer for drafting posts.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(
		newFormatCmd(a),
		newRulesCmd(a),
		newPreviewCmd(),
		newComposeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: linguista.Name,
		Level:  lvl,
	})
	return nil
}

// readInput reads the file named by args[0], or stdin when there is no
// argument or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeLine(w io.Writer, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
