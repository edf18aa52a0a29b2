package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"nabrasa-storefront/internal/domain/order"
	"nabrasa-storefront/internal/infra/webhook"
	"nabrasa-storefront/internal/pkg/clock"
	"nabrasa-storefront/internal/pkg/errs"
	"nabrasa-storefront/internal/usecase/shared"
)

const failureNotice = "Não conseguimos avisar a loja automaticamente. Seu pedido pelo WhatsApp continua valendo."

type Sender interface {
	Send(ctx context.Context, payload order.Payload, idempotencyKey string) (webhook.Result, error)
}

type Options struct {
	Workers   int
	QueueSize int
}

// Dispatcher posts queued orders to the intake service from a fixed pool of
// workers. Failures are logged, recorded and turned into session notices;
// they never reach the customer's request.
type Dispatcher struct {
	sender   Sender
	log      shared.DispatchLog
	sessions shared.SessionStore
	clock    clock.Clock
	logger   *slog.Logger
	workers  int

	jobs    chan shared.DispatchJob
	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

var _ shared.OrderDispatcher = (*Dispatcher)(nil)

func New(
	sender Sender,
	dispatchLog shared.DispatchLog,
	sessions shared.SessionStore,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) *Dispatcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	return &Dispatcher{
		sender:   sender,
		log:      dispatchLog,
		sessions: sessions,
		clock:    clk,
		logger:   logger,
		workers:  opts.Workers,
		jobs:     make(chan shared.DispatchJob, opts.QueueSize),
	}
}

// Start launches the workers. They drain the queue after Stop.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
}

// Stop closes the queue and waits for in-flight jobs or ctx, whichever ends first.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enqueue never blocks. A full or stopped queue is reported as ErrDispatchQueueFull.
func (d *Dispatcher) Enqueue(_ context.Context, job shared.DispatchJob) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return errs.Mark(errs.New("dispatcher stopped"), errs.ErrDispatchQueueFull)
	}

	select {
	case d.jobs <- job:
		return nil
	default:
		d.logger.Warn("order dispatch queue full",
			slog.String("external_id", job.ExternalID),
			slog.String("session_id", job.SessionID),
		)
		return errs.ErrDispatchQueueFull
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for job := range d.jobs {
		d.deliver(job)
	}
}

func (d *Dispatcher) deliver(job shared.DispatchJob) {
	// Jobs outlive the request that queued them.
	ctx := context.Background()

	res, err := d.sender.Send(ctx, job.Payload, job.IdempotencyKey)
	rec := shared.DispatchRecord{
		ExternalID:     job.ExternalID,
		IdempotencyKey: job.IdempotencyKey,
		ContentHash:    job.Payload.Order.Meta.ContentHash,
		AttemptedAt:    d.clock.Now(),
	}

	if err != nil {
		rec.Status = shared.DispatchFailed
		rec.LastError = err.Error()
		d.logger.Error("order dispatch failed",
			slog.String("external_id", job.ExternalID),
			slog.String("idempotency_key", job.IdempotencyKey),
			slog.String("session_id", job.SessionID),
			slog.Any("error", err),
		)
		d.notify(ctx, job)
	} else {
		rec.Status = shared.DispatchDelivered
		rec.OrderID = res.OrderID
		rec.PrintQueued = res.PrintQueued
		d.logger.Info("order dispatched",
			slog.String("external_id", job.ExternalID),
			slog.String("order_id", res.OrderID),
			slog.Bool("print_queued", res.PrintQueued),
		)
	}

	if err := d.log.Record(ctx, rec); err != nil {
		d.logger.Warn("failed to record order dispatch",
			slog.String("external_id", job.ExternalID),
			slog.Any("error", err),
		)
	}
}

func (d *Dispatcher) notify(ctx context.Context, job shared.DispatchJob) {
	if job.SessionID == "" {
		return
	}
	n := shared.Notice{Kind: shared.NoticeDispatchFailed, Message: failureNotice, At: d.clock.Now()}
	if err := d.sessions.AppendNotice(ctx, job.SessionID, n); err != nil {
		d.logger.Warn("failed to queue session notice",
			slog.String("session_id", job.SessionID),
			slog.Any("error", err),
		)
	}
}

// Disabled drops every job; it stands in when no intake URL is configured.
type Disabled struct {
	logger *slog.Logger
}

var _ shared.OrderDispatcher = Disabled{}

func NewDisabled(logger *slog.Logger) Disabled {
	return Disabled{logger: logger}
}

func (d Disabled) Enqueue(_ context.Context, job shared.DispatchJob) error {
	d.logger.Debug("order intake disabled, skipping dispatch", slog.String("external_id", job.ExternalID))
	return nil
}
