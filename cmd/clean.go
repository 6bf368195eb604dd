package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"batbroom/internal/catalog"
	"batbroom/internal/config"
	"batbroom/internal/engine"
	"batbroom/internal/privilege"
	"batbroom/internal/purger"
	"batbroom/internal/report"
	"batbroom/internal/runlock"
	"batbroom/internal/tui"
	"batbroom/pkg/pathtmpl"
)

var errNotConfirmed = errors.New("refusing to delete without confirmation; pass --yes to skip the prompt")

func newCleanCmd(a *app) *cobra.Command {
	var sel selectionFlags
	cmd := &cobra.Command{
		Use:   "clean [flags]",
		Short: "Delete the selected temporary files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := sel.build(a.catalog)
			if err != nil {
				return err
			}

			if len(selection) > 0 && !a.cfg.Yes {
				ok, err := confirm()
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cleanup cancelled.")
					return nil
				}
			}

			lock, err := runlock.New(a.cfg.LockFile)
			if err != nil {
				return err
			}
			if err := lock.TryLock(); err != nil {
				return err
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					a.logger.Warn("releasing run lock", "err", err)
				}
			}()

			elevated := privilege.Elevated()
			a.logger.Debug("privilege probe", "elevated", elevated)
			opts := engine.Options{Elevated: elevated, Logger: a.logger}

			var tee engine.MultiSink
			if a.cfg.Report != "" {
				f, err := afero.NewOsFs().Create(a.cfg.Report)
				if err != nil {
					return fmt.Errorf("creating report: %w", err)
				}
				defer f.Close()
				rep := report.NewJSONSink(f)
				defer func() {
					if err := rep.Err(); err != nil {
						a.logger.Warn("writing report", "path", a.cfg.Report, "err", err)
					}
				}()
				tee = append(tee, rep)
			}

			out := cmd.OutOrStdout()
			started := time.Now()
			var summary engine.Summary
			switch outputFormat(a.cfg.Format, out) {
			case config.FormatTUI:
				summary, err = runInteractive(a, out, selection, tee, opts)
			case config.FormatJSON:
				sink := report.NewJSONSink(out)
				summary, err = runWith(a, selection, append(engine.MultiSink{sink}, tee...), opts)
				if err == nil {
					err = sink.Err()
				}
				return err
			default:
				text := tui.NewTextSink(out, isTerminal(out))
				summary, err = runWith(a, selection, append(engine.MultiSink{text}, tee...), opts)
			}
			if err != nil {
				return err
			}

			if summary.Total > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, tui.RenderSummary(tui.SummaryRows(summary, time.Since(started))))
			}
			return nil
		},
	}
	sel.register(cmd)
	cmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	cmd.Flags().String("format", config.FormatAuto, "output format: auto, tui, text or json")
	cmd.Flags().String("report", "", "also write the run as JSON lines to this file")
	return cmd
}

func newEngine(a *app, sink engine.Sink, opts engine.Options) *engine.Engine {
	return engine.New(a.catalog, pathtmpl.NewResolver(), purger.NewOS(a.logger), sink, opts)
}

func runWith(a *app, sel catalog.Selection, sink engine.Sink, opts engine.Options) (engine.Summary, error) {
	summary, _, err := newEngine(a, sink, opts).Run(sel)
	return summary, err
}

func runInteractive(a *app, out io.Writer, sel catalog.Selection, tee engine.MultiSink, opts engine.Options) (engine.Summary, error) {
	events := make(chan engine.Event, 64)
	program := tea.NewProgram(tui.NewModel(events))

	viewDone := make(chan struct{})
	go func() {
		defer close(viewDone)
		final, err := program.Run()
		if err != nil {
			a.logger.Error("progress view failed", "err", err)
		}
		// Whatever the view did not consume still has to be drained so the
		// run can finish; after a ctrl+c it is shown as plain text instead.
		var rest engine.Sink
		if m, ok := final.(tui.Model); ok && m.Detached() {
			fmt.Fprintln(out, "View closed, cleanup continues in the background.")
			rest = tui.NewTextSink(out, isTerminal(out))
		}
		for ev := range events {
			if rest != nil {
				engine.Dispatch(rest, ev)
			}
		}
	}()

	sink := append(engine.MultiSink{engine.NewChannelSink(events)}, tee...)
	done, _, err := newEngine(a, sink, opts).Start(sel)
	if err != nil {
		close(events)
		<-viewDone
		return engine.Summary{}, err
	}
	summary := <-done
	close(events)
	<-viewDone
	return summary, nil
}

func confirm() (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false, errNotConfirmed
	}
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show("This will permanently delete the selected temporary files. Continue?")
}

func outputFormat(format string, out io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	if isTerminal(out) {
		return config.FormatTUI
	}
	return config.FormatText
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
