package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpreview"
	"github.com/fwojciec/diffpreview/afero"
	"github.com/fwojciec/diffpreview/bubbletea"
	"github.com/fwojciec/diffpreview/chroma"
	"github.com/fwojciec/diffpreview/clipboard"
	"github.com/fwojciec/diffpreview/config"
	"github.com/fwojciec/diffpreview/difflib"
	"github.com/fwojciec/diffpreview/dmp"
	"github.com/fwojciec/diffpreview/eventloop"
	"github.com/fwojciec/diffpreview/fs"
	"github.com/fwojciec/diffpreview/git"
	"github.com/fwojciec/diffpreview/gitdiff"
	"github.com/fwojciec/diffpreview/jsonl"
	"github.com/fwojciec/diffpreview/lipgloss"
	"github.com/fwojciec/diffpreview/udiff"
	"github.com/spf13/cobra"
)

type showFlags struct {
	configPath string
	repoPath   string
	rev        string
	output     string
	out        string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "diffpreview",
		Short: "Preview the effect of a patch on a solution",
		Long: `diffpreview shows what a patch changes in a solution described by a
YAML manifest: document edits with surrounding context, added and removed
documents, reference changes, and added or removed projects.

Examples:
  git diff | diffpreview show solution.yaml
  diffpreview show solution.yaml change.patch --output unified
  diffpreview show solution.yaml --git . --rev HEAD~1
  diffpreview replay previews.jsonl`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.AddCommand(newShowCmd(), newReplayCmd())
	return root
}

func newShowCmd() *cobra.Command {
	var flags showFlags
	cmd := &cobra.Command{
		Use:   "show <solution.yaml> [patch]",
		Short: "Preview a patch against a solution",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if flags.output != "" {
				cfg.Output = flags.output
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			app, cleanup, err := newApp(cfg, flags, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			app.ManifestPath = args[0]
			if len(args) > 1 {
				app.PatchPath = args[1]
			}
			return app.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/diffpreview/config.yaml)")
	cmd.Flags().StringVar(&flags.repoPath, "git", "", "read old content and the patch from this git repository")
	cmd.Flags().StringVar(&flags.rev, "rev", "HEAD", "revision holding the old content in --git mode")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: tui, text, jsonl, unified")
	cmd.Flags().StringVar(&flags.out, "out", "", "append jsonl records to this file instead of stdout")
	return cmd
}

// newApp wires an App from cfg. The returned cleanup stops background work.
func newApp(cfg *config.Config, flags showFlags, stdin io.Reader, stdout, stderr io.Writer) (*App, func(), error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	differ, err := newDiffer(cfg)
	if err != nil {
		return nil, nil, err
	}

	theme, err := lipgloss.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, nil, err
	}
	opts := []bubbletea.Option{
		bubbletea.WithTheme(theme),
		bubbletea.WithTokenizer(chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))),
		bubbletea.WithTabWidth(cfg.Preview.TabWidth),
	}
	if cfg.Output == config.OutputText {
		opts = append(opts, bubbletea.WithRenderer(lg.NewRenderer(stdout)))
	}
	if cfg.Output == config.OutputTUI && clipboard.Available() {
		opts = append(opts, bubbletea.WithClipboard(clipboard.NewSystem()))
	}

	var dispatcher diffpreview.Dispatcher = diffpreview.InlineDispatcher{}
	cleanup := func() {}
	if cfg.Output == config.OutputTUI {
		loop := eventloop.New(cfg.Preview.Concurrency)
		dispatcher = loop
		cleanup = loop.Close
	}

	composer := diffpreview.NewComposer(differ, bubbletea.NewViewHost(opts...),
		diffpreview.WithProjector(diffpreview.NewEllipsisProjector(cfg.Preview.Ellipsis)),
		diffpreview.WithWorkspaceHost(afero.NewWorkspaceHost(nil, "")),
		diffpreview.WithDispatcher(dispatcher),
		diffpreview.WithContentTypeDetector(chroma.NewDetector()),
		diffpreview.WithLineSpanOptions(cfg.Preview.LineSpanOptions()),
		diffpreview.WithLogger(logger),
	)

	var presenter diffpreview.Presenter
	switch cfg.Output {
	case config.OutputText:
		presenter = bubbletea.NewPrinter(stdout, 0, cfg.Preview.Concurrency, opts...)
	case config.OutputJSONL:
		if flags.out != "" {
			presenter = &recordSaver{saver: jsonl.NewSaver(), path: flags.out, limit: cfg.Preview.Concurrency}
		} else {
			presenter = jsonl.NewPresenter(stdout, cfg.Preview.Concurrency)
		}
	case config.OutputUnified:
		presenter = udiff.NewPresenter(stdout, cfg.Preview.Concurrency)
	default:
		presenter = bubbletea.NewViewer(opts...)
	}

	app := &App{
		Stdin:      stdin,
		RepoPath:   flags.repoPath,
		Rev:        flags.rev,
		Git:        git.NewRunner(),
		Applier:    gitdiff.NewApplier(),
		Enumerator: diffpreview.NewEnumerator(composer, logger),
		Presenter:  presenter,
		Logger:     logger,
	}
	return app, cleanup, nil
}

func newDiffer(cfg *config.Config) (diffpreview.Differ, error) {
	var differ diffpreview.Differ
	switch cfg.Preview.Differ {
	case config.DifferDMP:
		differ = dmp.NewDiffer()
	case config.DifferUdiff:
		differ = udiff.NewDiffer()
	case config.DifferDifflib:
		differ = difflib.NewDiffer()
	default:
		return nil, fmt.Errorf("unknown differ %q", cfg.Preview.Differ)
	}
	if !cfg.Cache.Enabled {
		return differ, nil
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		dir = fs.DefaultCacheDir()
	}
	return fs.NewDiffer(differ, dir, cfg.Preview.Differ), nil
}

// recordSaver appends a summary's records to a JSONL file.
type recordSaver struct {
	saver *jsonl.Saver
	path  string
	limit int
}

func (s *recordSaver) Present(ctx context.Context, summary *diffpreview.SolutionChangeSummary) error {
	records, err := jsonl.Records(ctx, summary, s.limit)
	if err != nil {
		return err
	}
	return s.saver.Save(s.path, records)
}
