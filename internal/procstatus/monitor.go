package procstatus

import (
	"context"
	"sync"
	"time"

	"pkt.systems/pslog"

	"github.com/dshills/pagedit/internal/logx"
)

// Defaults for a Monitor.
const (
	DefaultInterval     = time.Second
	DefaultStallTimeout = 20 * time.Second
	DefaultLabel        = "Export"
)

// Monitor polls one process until it reaches a terminal state.
//
// Monitor is safe for concurrent use; Stop may be called from any goroutine.
type Monitor struct {
	id       string
	fetcher  Fetcher
	renderer Renderer
	logger   pslog.Logger

	interval time.Duration
	stall    time.Duration
	label    string
	now      func() time.Time

	mu         sync.Mutex
	state      State
	err        error
	lastStatus string
	lastChange time.Time

	stopOnce sync.Once
	stopped  chan struct{}
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithStallTimeout sets how long the status may stay unchanged.
func WithStallTimeout(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.stall = d
		}
	}
}

// WithLabel sets the process kind shown in messages ("Export").
func WithLabel(label string) Option {
	return func(m *Monitor) {
		if label != "" {
			m.label = label
		}
	}
}

// WithClock replaces time.Now for stall detection.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the monitor's logger.
func WithLogger(l pslog.Logger) Option {
	return func(m *Monitor) {
		m.logger = l
	}
}

// New creates a monitor for process id. The stall timer starts now.
// A nil renderer discards messages.
func New(id string, fetcher Fetcher, renderer Renderer, opts ...Option) *Monitor {
	m := &Monitor{
		id:       id,
		fetcher:  fetcher,
		renderer: renderer,
		interval: DefaultInterval,
		stall:    DefaultStallTimeout,
		label:    DefaultLabel,
		now:      time.Now,
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.renderer == nil {
		m.renderer = RendererFunc(func(Message) {})
	}
	m.logger = logx.WithProcess(m.logger, id)
	m.lastChange = m.now()
	return m
}

// ID returns the monitored process id.
func (m *Monitor) ID() string {
	return m.id
}

// State returns the current state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the error that ended monitoring, if any.
func (m *Monitor) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Stop ends monitoring. Calling Stop more than once, or after a terminal
// state, has no effect beyond the first call.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopped)
	})
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Polling {
		m.finish(Stopped, nil)
	}
}

// Run polls every interval until a terminal state is reached, Stop is
// called or ctx is done. It returns the final state and, for Stalled,
// Unreachable and a cancelled ctx, the cause.
func (m *Monitor) Run(ctx context.Context) (State, error) {
	if m.State().Terminal() {
		return m.result()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Debug("process monitor started", "interval", m.interval, "stall_timeout", m.stall)
	for {
		select {
		case <-ctx.Done():
			m.cancelled(ctx.Err())
			return m.result()
		case <-m.stopped:
			return m.result()
		case <-ticker.C:
			if !m.tick(ctx, cancel) {
				return m.result()
			}
		}
	}
}

// tick runs Tick, aborting an in-flight request when Stop is called.
func (m *Monitor) tick(ctx context.Context, cancel context.CancelFunc) bool {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-m.stopped:
			cancel()
		case <-done:
		}
	}()
	return m.Tick(ctx)
}

// Tick performs one poll and reports whether polling continues.
// Ticking a monitor in a terminal state does nothing.
func (m *Monitor) Tick(ctx context.Context) bool {
	m.mu.Lock()
	if m.state != Polling {
		m.mu.Unlock()
		return false
	}
	idle := m.now().Sub(m.lastChange)
	if idle > m.stall {
		m.stalled(idle)
		m.mu.Unlock()
		m.renderer.Render(stalledMessage(m.label))
		return false
	}
	m.mu.Unlock()

	// A request may run until the stall deadline, and for at least one
	// interval when it is issued right at the boundary.
	budget := max(m.stall-idle, m.interval)
	fctx, cancel := context.WithTimeout(ctx, budget)
	st, err := m.fetcher.Fetch(fctx, m.id)
	timedOut := err != nil && fctx.Err() != nil && ctx.Err() == nil
	cancel()

	m.mu.Lock()
	var (
		msg        Message
		more, show bool
	)
	if timedOut && m.state == Polling {
		m.stalled(m.now().Sub(m.lastChange))
		msg, show = stalledMessage(m.label), true
	} else {
		msg, more, show = m.apply(ctx, st, err)
	}
	m.mu.Unlock()

	if show {
		m.renderer.Render(msg)
	}
	return more
}

// apply folds one fetch result into the state. Called with mu held.
func (m *Monitor) apply(ctx context.Context, st Status, err error) (Message, bool, bool) {
	if m.state != Polling {
		return Message{}, false, false
	}

	if err != nil {
		if ctx.Err() != nil {
			m.finish(Stopped, ctx.Err())
			return Message{}, false, false
		}
		m.logger.Warn("process status unavailable", "err", err)
		m.finish(Unreachable, err)
		return unreachableMessage(), false, true
	}

	if st.IsComplete {
		if st.WasSuccessful {
			m.finish(Completed, nil)
			return completeMessage(m.label), false, true
		}
		m.finish(Failed, nil)
		return failedMessage(m.label), false, true
	}

	if st.Status == "" {
		return Message{}, true, false
	}
	if st.Status != m.lastStatus {
		m.logger.Debug("process status", "status", st.Status)
		m.lastStatus = st.Status
		m.lastChange = m.now()
	}
	return progressMessage(m.label, st.Status), true, true
}

// stalled gives up on the process. Called with mu held.
func (m *Monitor) stalled(idle time.Duration) {
	m.logger.Warn("process stalled", "idle", idle, "status", m.lastStatus)
	m.finish(Stalled, ErrStalled)
}

func (m *Monitor) cancelled(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Polling {
		m.finish(Stopped, err)
	}
}

// finish enters a terminal state once. Called with mu held.
func (m *Monitor) finish(state State, err error) {
	if m.state != Polling {
		return
	}
	m.state = state
	m.err = err
	m.logger.Info("process monitor finished", "state", state.String())
}

func (m *Monitor) result() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.err
}
