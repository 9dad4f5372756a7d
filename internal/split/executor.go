package split

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/litai12/Tanva-sub005/internal/source"
)

// Executor runs the full byte-to-Result split pipeline under one execution
// strategy. Both implementations are deterministic: identical bytes and
// requested count always produce an identical Result, whichever strategy
// runs them.
type Executor interface {
	Split(ctx context.Context, src []byte, requested int) (Result, error)
}

// run is the strategy-independent pipeline: decode, then split. The context
// is honored at the stage boundaries; the flood fill itself is not
// interruptible mid-pass.
func run(ctx context.Context, src []byte, requested int, opts Options) (Result, error) {
	if len(src) == 0 {
		return Result{}, ErrEmptySource
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	img, err := source.Decode(src)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return SplitWithOptions(img, requested, opts)
}

// InlineExecutor runs the pipeline synchronously on the calling goroutine.
type InlineExecutor struct {
	Opts Options
}

// NewInlineExecutor returns an inline executor with the given options.
func NewInlineExecutor(opts Options) *InlineExecutor {
	return &InlineExecutor{Opts: opts}
}

func (e *InlineExecutor) Split(ctx context.Context, src []byte, requested int) (Result, error) {
	return run(ctx, src, requested, e.Opts)
}

type workerRequest struct {
	ctx       context.Context
	src       []byte
	requested int
	reply     chan workerReply
}

type workerReply struct {
	res Result
	err error
}

// WorkerExecutor runs the pipeline on a dedicated background goroutine and
// marshals the Result back as plain data. A panic inside the worker is
// recovered and surfaced as an ErrWorker, which the Host turns into an
// inline retry.
type WorkerExecutor struct {
	requests  chan workerRequest
	stop      chan struct{}
	done      chan struct{}
	opts      Options
	closeOnce sync.Once
}

// NewWorkerExecutor starts the background worker.
func NewWorkerExecutor(opts Options) *WorkerExecutor {
	w := &WorkerExecutor{
		requests: make(chan workerRequest),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		opts:     opts,
	}
	go w.loop()
	return w
}

func (w *WorkerExecutor) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.stop:
			return
		case req := <-w.requests:
			req.reply <- w.process(req)
		}
	}
}

func (w *WorkerExecutor) process(req workerRequest) (reply workerReply) {
	defer func() {
		if r := recover(); r != nil {
			reply = workerReply{err: fmt.Errorf("%w: panic: %v", ErrWorker, r)}
		}
	}()
	res, err := run(req.ctx, req.src, req.requested, w.opts)
	return workerReply{res: res, err: err}
}

func (w *WorkerExecutor) Split(ctx context.Context, src []byte, requested int) (Result, error) {
	req := workerRequest{
		ctx:       ctx,
		src:       src,
		requested: requested,
		reply:     make(chan workerReply, 1),
	}

	select {
	case w.requests <- req:
	case <-w.stop:
		return Result{}, fmt.Errorf("%w: executor closed", ErrWorker)
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	select {
	case rep := <-req.reply:
		return rep.res, rep.err
	case <-w.done:
		// The worker may have replied just before shutting down, or
		// exited without ever picking the request up.
		select {
		case rep := <-req.reply:
			return rep.res, rep.err
		default:
			return Result{}, fmt.Errorf("%w: executor closed", ErrWorker)
		}
	case <-ctx.Done():
		// The worker finishes the in-flight request on its own; the
		// reply channel is buffered so it never blocks on us.
		return Result{}, ctx.Err()
	}
}

// Close shuts the worker goroutine down and waits for it to exit. Safe to
// call more than once and concurrently with Split: in-flight and later
// calls fail with ErrWorker instead of a result.
func (w *WorkerExecutor) Close() {
	w.closeOnce.Do(func() { close(w.stop) })
	<-w.done
}

// Host selects the preferred execution strategy and falls back to the
// synchronous one when background execution fails. Decode and empty-source
// failures are not retried: they fail identically under either strategy.
type Host struct {
	worker *WorkerExecutor
	inline *InlineExecutor
}

// NewHost returns a Host using the background worker strategy backed by an
// inline fallback.
func NewHost(opts Options) *Host {
	return &Host{
		worker: NewWorkerExecutor(opts),
		inline: NewInlineExecutor(opts),
	}
}

// NewInlineHost returns a Host that only ever executes synchronously.
func NewInlineHost(opts Options) *Host {
	return &Host{inline: NewInlineExecutor(opts)}
}

func (h *Host) Split(ctx context.Context, src []byte, requested int) (Result, error) {
	if h.worker != nil {
		res, err := h.worker.Split(ctx, src, requested)
		if err == nil || !isWorkerFailure(err) {
			return res, err
		}
	}
	return h.inline.Split(ctx, src, requested)
}

// Close releases the background worker, if any. The Host stays usable
// afterwards: a closed worker fails with ErrWorker, which Split recovers
// by running inline.
func (h *Host) Close() {
	if h.worker != nil {
		h.worker.Close()
	}
}

func isWorkerFailure(err error) bool {
	return errors.Is(err, ErrWorker)
}
