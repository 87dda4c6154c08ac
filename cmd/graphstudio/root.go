package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstudio/config"
	"github.com/katalvlaran/graphstudio/editor"
	"github.com/katalvlaran/graphstudio/geometry"
	"github.com/katalvlaran/graphstudio/runner"
)

// Terminal palette.
var (
	brand  = color.New(color.FgHiGreen, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	info   = color.New(color.FgCyan)
)

// app carries state resolved once per invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "graphstudio",
		Short:         "Interactive graph editing and algorithm playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		serveCmd(a),
		runCmd(a),
		playCmd(a),
		importCmd(a),
		exportCmd(a),
		generateCmd(a),
		algorithmsCmd(a),
		configCmd(a),
	)

	return root
}

func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		a.logger = slog.New(slog.NewJSONHandler(stderr, hopts))
	} else {
		a.logger = slog.New(slog.NewTextHandler(stderr, hopts))
	}
	return nil
}

// geometry returns the layout options from [editor].
func (a *app) geometry() []geometry.Option {
	return []geometry.Option{
		geometry.WithCurveStep(a.cfg.Editor.CurveStep),
		geometry.WithNodeRadius(a.cfg.Editor.NodeRadius),
	}
}

// editor builds an Editor wired to r and the configured defaults.
func (a *app) editor(r runner.Runner, extra ...editor.Option) *editor.Editor {
	opts := []editor.Option{
		editor.WithLogger(a.logger),
		editor.WithHistoryLimit(a.cfg.Editor.HistoryLimit),
		editor.WithPlaybackSpeed(a.cfg.Editor.PlaybackSpeed.Std()),
		editor.WithGeometry(a.geometry()...),
		editor.WithRunner(r),
	}
	return editor.New(append(opts, extra...)...)
}

// client returns the remote runner for baseURL, or the configured one.
func (a *app) client(baseURL string) *runner.Client {
	if baseURL == "" {
		baseURL = a.cfg.Client.BaseURL
	}
	return runner.NewClient(baseURL,
		runner.WithTimeout(a.cfg.Client.Timeout.Std()),
		runner.WithLogger(a.logger),
	)
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
