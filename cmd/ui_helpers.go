package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"wall/cli/internal/httperrors"
	"wall/cli/internal/query"
	"wall/cli/internal/view"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// screen describes how one command presents its query.
type screen struct {
	// action completes "Could not ..." and "Cancelled ..."
	action string
	// spinner is shown next to the spinner while the query is in flight
	spinner  string
	paginate bool
}

// runQuery runs q for one command: it drives a spinner while the call is
// loading, commits every transition to a fresh view.State and prints
// failures. Ctrl-C aborts the call. A failed or cancelled call returns
// errReported after it has been printed.
func runQuery[P, T any](cmd *cobra.Command, s screen, q query.Query[P, T], payload P) (query.Result[T], *view.State, error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sig := query.NewSignal()
	// Abort as soon as the interrupt arrives, and again synchronously after
	// the query returns so settlement always sees it.
	stopAfter := context.AfterFunc(ctx, sig.Abort)
	defer stopAfter()
	aborting := func(ctx context.Context, p P) (*query.Envelope[T], error) {
		env, err := q(ctx, p)
		if ctx.Err() != nil {
			sig.Abort()
		}
		return env, err
	}

	log := app.log
	if log != nil {
		log = log.With("command", cmd.CommandPath())
	}
	opts := query.Options{Name: s.action, Logger: log}
	st := view.NewState()
	cb := st.Callbacks(s.paginate)

	var res query.Result[T]
	stopSpinner := func() {}
	for r := range query.Go(ctx, aborting, query.Input[P]{Payload: payload, Signal: sig}, opts) {
		query.Apply(r, cb, opts)
		if r.State == query.StateLoading {
			stopSpinner = startSpinner(os.Stderr, s.spinner)
			continue
		}
		stopSpinner()
		res = r
	}

	render := view.NewRenderer(cmd.OutOrStdout())
	switch {
	case res.State == query.StateCancelled:
		render.Cancelled(s.action)
		return res, st, errReported
	case res.Failed():
		transport := res.State == query.StateTransportError
		render.Failure(s.action, st.Snapshot(), transport)
		if transport && verbose {
			fmt.Fprintln(os.Stderr)
			httperrors.Explain(os.Stderr, res.Err, s.action, httperrors.ExtractHostFromURL(app.cfg.APIBaseURL))
		}
		return res, st, errReported
	}
	return res, st, nil
}

// withSpinner runs fn with a spinner showing text.
func withSpinner(text string, fn func()) {
	stop := startSpinner(os.Stderr, text)
	defer stop()
	fn()
}

// startSpinner starts an inline spinner on w when w is a terminal and
// returns the function that stops it. On other writers it does nothing.
func startSpinner(w *os.File, text string) func() {
	if !term.IsTerminal(int(w.Fd())) {
		return func() {}
	}
	cursor.Hide()
	stop := startInlineSpinner(w, text, spinnerFrames, 120*time.Millisecond)
	return func() {
		stop()
		cursor.Show()
	}
}

// startInlineSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line in the terminal. The spinner runs in a separate goroutine and
// can be stopped by calling the returned function, which clears the line.
// Calling the returned function more than once is safe.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
			select {
			case <-stop:
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
		})
	}
}
