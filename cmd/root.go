package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lexa/internal/config"
	"lexa/internal/log"
	"lexa/internal/scan"
	"lexa/internal/watcher"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "lexa <file>",
	Short:   "A streaming lexer for source text",
	Long:    `Lexa reads a source file through a windowed character stream and prints one classified token per line (kind, position, lexeme) plus a final count.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .lexa.yaml, then ~/.config/lexa/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug output to lexa.log")
	rootCmd.Flags().Bool("color", false,
		"print the source with syntax highlighting instead of a token listing")
	rootCmd.Flags().Bool("watch", false,
		"re-lex and re-print whenever the file changes")
	rootCmd.Flags().Int("buffer-width", 0,
		"read-ahead window size in bytes")

	// Bind flags to viper
	_ = viper.BindPFlag("buffer_width", rootCmd.Flags().Lookup("buffer-width"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("keywords", defaults.Keywords)
	viper.SetDefault("operator_chars", defaults.OperatorChars)
	viper.SetDefault("two_char_prefixes", defaults.TwoCharPrefixes)
	viper.SetDefault("buffer_width", defaults.BufferWidth)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .lexa.yaml (current directory)
		// 2. ~/.config/lexa/config.yaml (user config)
		if _, err := os.Stat(".lexa.yaml"); err == nil {
			viper.SetConfigFile(".lexa.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "lexa"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .lexa.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".lexa.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		} else if cfgFile != "" {
			// A present but unreadable file is worth surfacing.
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)

	// The flag binding leaves buffer_width at 0 when the flag is unset;
	// fall back to the configured default.
	if cfg.BufferWidth == 0 {
		cfg.BufferWidth = defaults.BufferWidth
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("LEXA_DEBUG") != "" {
		cleanup, err := log.Init("lexa.log")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("source file not found: %s", path)
		}
		return fmt.Errorf("reading source file: %w", err)
	}

	color, _ := cmd.Flags().GetBool("color")
	watch, _ := cmd.Flags().GetBool("watch")

	out := cmd.OutOrStdout()
	if err := lexOnce(out, path, color); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchLoop(out, path, color)
}

// lexOnce lexes the file at path once, printing either a token listing
// or a highlighted rendering of the source.
func lexOnce(out io.Writer, path string, color bool) error {
	if color {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user-supplied input file
		if err != nil {
			return fmt.Errorf("reading source file: %w", err)
		}
		fmt.Fprint(out, scan.Highlight(string(data), cfg.Options()))
		return nil
	}

	src, err := scan.Open(path, cfg.BufferWidth)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	lexer := scan.NewLexer(src, cfg.Options())
	count := 0
	for {
		tok := lexer.NextToken()
		fmt.Fprintf(out, "%4d:%-4d %-14s %s\n", tok.Line, tok.Col, tok.Kind, tok.Lexeme)
		if tok.Kind == scan.KindEOF {
			break
		}
		count++
	}
	fmt.Fprintf(out, "%d tokens\n", count)
	log.Debug(log.CatCLI, "lexed file", "path", path, "tokens", count)
	return nil
}

// watchLoop re-lexes the file whenever it changes, until interrupted.
func watchLoop(out io.Writer, path string, color bool) error {
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case <-onChange:
			log.Debug(log.CatWatcher, "source changed, re-lexing", "path", path)
			if err := lexOnce(out, path, color); err != nil {
				// The file may be mid-save; report and keep watching.
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		case <-sig:
			return nil
		}
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
