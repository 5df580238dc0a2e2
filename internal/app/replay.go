package app

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/listviz/internal/logging"
	"github.com/five82/listviz/internal/script"
	"github.com/five82/listviz/internal/session"
	"github.com/five82/listviz/internal/ui"
	"github.com/five82/listviz/internal/visualizer"
)

// ReplayOptions configure Replay.
type ReplayOptions struct {
	Options
	ScriptPath string
	// Realtime honours the delays with real timers. Otherwise a virtual
	// clock advances by each step's wait and fires due tasks instantly.
	Realtime  bool
	Width     int
	Reference bool
	Out       io.Writer
}

// Replay runs a script headlessly and writes a frame for every step and
// every task that fires.
func Replay(ctx context.Context, opts ReplayOptions) error {
	e, err := load(opts.Options)
	if err != nil {
		return err
	}
	defer func() { _ = e.closer.Close() }()

	s, err := script.Load(opts.ScriptPath)
	if err != nil {
		return err
	}

	policy := e.cfg.OverlapPolicy
	if s.Policy != nil {
		policy = *s.Policy
	}
	initial := visualizer.New(e.cfg.Timing(), policy)

	p := printer{
		out:    opts.Out,
		frame:  ui.FrameOptions{ThemeName: e.prefs.Theme, Width: opts.Width, Reference: opts.Reference},
		logger: logging.Component(e.logger, "replay"),
	}
	p.logger.Info().
		Str("script", opts.ScriptPath).
		Int("steps", len(s.Steps)).
		Str("policy", policy.String()).
		Bool("realtime", opts.Realtime).
		Msg("replay started")

	if opts.Realtime {
		err = replayRealtime(ctx, initial, s, &p, e.logger)
	} else {
		err = replayVirtual(ctx, initial, s, &p)
	}
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// printer writes captioned frames and keeps the first write error.
type printer struct {
	out    io.Writer
	frame  ui.FrameOptions
	logger zerolog.Logger

	mu  sync.Mutex
	err error
}

func (p *printer) emit(at time.Duration, caption string, st visualizer.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return
	}
	p.logger.Debug().Dur("at", at).Str("caption", caption).Msg("frame")
	_, p.err = fmt.Fprintf(p.out, "=== %s  %s\n%s\n\n", formatOffset(at), caption, ui.RenderFrame(st, p.frame))
}

func formatOffset(d time.Duration) string {
	return fmt.Sprintf("t=%.3fs", d.Seconds())
}

// virtualTimer is a task waiting on the virtual clock.
type virtualTimer struct {
	due time.Duration
	id  visualizer.TaskID
	op  visualizer.Op
}

func replayVirtual(ctx context.Context, st visualizer.State, s script.Script, p *printer) error {
	var (
		now    time.Duration
		timers []virtualTimer
	)

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, tasks := step.Apply(st)
		st = next
		for _, task := range tasks {
			timers = append(timers, virtualTimer{due: now + task.Delay, id: task.ID, op: task.Op})
		}
		p.emit(now, stepCaption(i, step, len(tasks) > 0), st)

		now += step.Wait
		st, timers = advance(st, timers, now, p)
	}

	// Let everything still pending run out.
	for _, t := range timers {
		now = max(now, t.due)
	}
	advance(st, timers, now, p)
	return nil
}

// advance fires, in due order, every timer due at or before until. Timers
// whose tasks were superseded fire as no-ops and print nothing.
func advance(st visualizer.State, timers []virtualTimer, until time.Duration, p *printer) (visualizer.State, []virtualTimer) {
	slices.SortStableFunc(timers, func(a, b virtualTimer) int {
		return cmp.Compare(a.due, b.due)
	})

	n := 0
	for _, t := range timers {
		if t.due > until {
			break
		}
		n++
		next, ok := st.Fire(t.id)
		if !ok {
			continue
		}
		st = next
		p.emit(t.due, "task fired: "+t.op.Label(), st)
	}
	return st, timers[n:]
}

func replayRealtime(ctx context.Context, initial visualizer.State, s script.Script, p *printer, logger zerolog.Logger) error {
	start := time.Now()

	// caption is only touched inside Do and OnChange, both of which run
	// under the session lock.
	var caption string

	sess := session.New(initial, session.Options{
		Logger: logger,
		OnChange: func(snap session.Snapshot) {
			c := caption
			if c == "" {
				c = "task fired"
			}
			caption = ""
			p.emit(time.Since(start), c, snap.State)
		},
	})
	defer sess.Close()

	for i, step := range s.Steps {
		_, ok := sess.Do(func(st visualizer.State) (visualizer.State, []visualizer.Task) {
			next, tasks := step.Apply(st)
			if len(tasks) > 0 {
				caption = stepCaption(i, step, true)
			}
			return next, tasks
		})
		if !ok {
			p.emit(time.Since(start), stepCaption(i, step, false), sess.Snapshot().State)
		}

		if step.Wait > 0 {
			timer := time.NewTimer(step.Wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return sess.WaitIdle(ctx)
}

func stepCaption(i int, step script.Step, accepted bool) string {
	caption := fmt.Sprintf("step %d: %s", i+1, step)
	if !accepted {
		caption += " (ignored)"
	}
	return caption
}
