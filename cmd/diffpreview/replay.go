package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/diffpreview/jsonl"
	"github.com/spf13/cobra"
)

// ReplayApp prints preview records saved with --output jsonl.
type ReplayApp struct {
	Path string
	Out  io.Writer
}

// Run writes each record's unified diff, or its description as a comment
// line when it has none.
func (a *ReplayApp) Run() error {
	records, err := jsonl.NewLoader().Load(a.Path)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.Path, err)
	}
	for _, r := range records {
		if r.Unified != "" {
			_, err = io.WriteString(a.Out, r.Unified)
		} else {
			_, err = fmt.Fprintf(a.Out, "# %s\n", r.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <previews.jsonl>",
		Short: "Print saved preview records as unified diffs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := &ReplayApp{Path: args[0], Out: cmd.OutOrStdout()}
			return app.Run()
		},
	}
}
