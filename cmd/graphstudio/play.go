package main

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstudio/editor"
	"github.com/katalvlaran/graphstudio/playback"
	"github.com/katalvlaran/graphstudio/step"
)

func playCmd(a *app) *cobra.Command {
	var (
		flags runFlags
		speed time.Duration
	)
	cmd := &cobra.Command{
		Use:   "play <graph>",
		Short: "Run an algorithm and replay its steps at the playback speed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var (
				mu       sync.Mutex
				steps    []step.Step
				last     = -1
				once     sync.Once
				finished = make(chan struct{})
			)
			// observe runs on the caller's goroutine and on the ticker's.
			observe := func(st playback.State) {
				mu.Lock()
				defer mu.Unlock()
				if st.Index > last && st.Index < len(steps) {
					last = st.Index
					printStep(out, st.Index, st.Len, steps[st.Index])
				}
				if !st.Playing && last >= 0 {
					once.Do(func() { close(finished) })
				}
			}

			e, err := a.runInEditor(cmd, args[0], &flags, editor.WithPlaybackObserver(observe))
			if err != nil {
				return err
			}
			defer e.Close()

			p := e.Player()
			if speed > 0 {
				p.SetSpeed(speed)
			}
			mu.Lock()
			steps = p.Steps()
			mu.Unlock()
			brand.Fprintf(out, "%s: %d steps every %s\n", e.LastRun(), len(steps), p.Speed())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			p.Play()
			select {
			case <-finished:
				good.Fprintln(out, "done")
			case <-ctx.Done():
				p.Pause()
				subtle.Fprintf(out, "stopped at step %d/%d\n", p.Index()+1, p.Len())
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&speed, "speed", 0, "interval between steps (default from config, 800ms)")
	return cmd
}
