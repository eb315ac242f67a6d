package toolbox

import (
	"context"
	"sync"
)

// Phase is the lifecycle position of a tool adapter.
type Phase int

const (
	Idle Phase = iota
	Validating
	Requesting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Requesting:
		return "requesting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of an adapter's state.
type Snapshot[R any] struct {
	Phase      Phase
	Result     R
	Err        error
	Generation uint64
}

// Loading reports whether a request is in flight.
func (s Snapshot[R]) Loading() bool { return s.Phase == Requesting }

// ErrorText is the user-facing text for Err, or "".
func (s Snapshot[R]) ErrorText() string { return DisplayError(s.Err) }

// Outcome is what a Job produced. It is applied with Complete.
type Outcome[R any] struct {
	Generation uint64
	Result     R
	Err        error
}

// Job is one accepted submission. Do performs the model call and may run on
// any goroutine.
type Job[R any] struct {
	gen  uint64
	call func(ctx context.Context) (R, error)
}

// Generation identifies the submission the job belongs to.
func (j *Job[R]) Generation() uint64 { return j.gen }

// Do performs the single model call for this submission.
func (j *Job[R]) Do(ctx context.Context) Outcome[R] {
	res, err := j.call(ctx)
	return Outcome[R]{Generation: j.gen, Result: res, Err: err}
}

// Gate reports whether model calls are allowed.
type Gate interface {
	Present() bool
}

// machine is the state shared by all adapters. The loading flag is
// phase == Requesting; gen identifies the current submission.
type machine[R any] struct {
	mu     sync.RWMutex
	phase  Phase
	result R
	err    error
	gen    uint64
}

// begin moves to Validating then Requesting. validate runs under the lock.
func (m *machine[R]) begin(gate Gate, validate func() error) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.phase == Requesting {
		return 0, ErrBusy
	}
	if gate != nil && !gate.Present() {
		return 0, ErrDisabled
	}

	m.phase = Validating
	var zero R
	m.result = zero
	m.err = nil
	if err := validate(); err != nil {
		m.phase = Failed
		m.err = err
		return 0, err
	}

	m.gen++
	m.phase = Requesting
	return m.gen, nil
}

// complete applies o if it belongs to the current submission. It reports
// whether the outcome was applied.
func (m *machine[R]) complete(o Outcome[R]) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o.Generation != m.gen || m.phase != Requesting {
		return false
	}
	if o.Err != nil {
		m.phase = Failed
		m.err = o.Err
		return true
	}
	m.phase = Succeeded
	m.result = o.Result
	return true
}

// update changes the stored result in place, for locally derived values.
func (m *machine[R]) update(fn func(*R)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.result)
}

// Snapshot returns a copy of the current state
func (m *machine[R]) Snapshot() Snapshot[R] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot[R]{Phase: m.phase, Result: m.result, Err: m.err, Generation: m.gen}
}

// Loading reports whether a request is in flight
func (m *machine[R]) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase == Requesting
}

// Reset returns to Idle. A request in flight is orphaned and its outcome
// is discarded.
func (m *machine[R]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero R
	m.phase = Idle
	m.result = zero
	m.err = nil
	m.gen++
}

// Adapter is a typed request: validate In, call the model once, decode R.
type Adapter[In, R any] struct {
	machine[R]
	gate     Gate
	validate func(In) error
	call     func(ctx context.Context, in In) (R, error)
}

func newAdapter[In, R any](gate Gate, validate func(In) error, call func(context.Context, In) (R, error)) *Adapter[In, R] {
	return &Adapter[In, R]{gate: gate, validate: validate, call: call}
}

// Start validates in and, when accepted, returns the job to run.
func (a *Adapter[In, R]) Start(in In) (*Job[R], error) {
	gen, err := a.begin(a.gate, func() error { return a.validate(in) })
	if err != nil {
		return nil, err
	}
	return &Job[R]{gen: gen, call: func(ctx context.Context) (R, error) { return a.call(ctx, in) }}, nil
}

// Complete applies a job's outcome. Stale outcomes are dropped.
func (a *Adapter[In, R]) Complete(o Outcome[R]) bool {
	return a.complete(o)
}

// Run is the blocking form of Start, Do and Complete.
func (a *Adapter[In, R]) Run(ctx context.Context, in In) (R, error) {
	job, err := a.Start(in)
	if err != nil {
		var zero R
		return zero, err
	}
	o := job.Do(ctx)
	a.Complete(o)
	return o.Result, o.Err
}
