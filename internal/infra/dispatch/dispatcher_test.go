//go:build unit

package dispatch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"nabrasa-storefront/internal/domain/order"
	"nabrasa-storefront/internal/infra/dispatch"
	"nabrasa-storefront/internal/infra/memstore"
	"nabrasa-storefront/internal/infra/webhook"
	"nabrasa-storefront/internal/pkg/clock"
	"nabrasa-storefront/internal/pkg/errs"
	"nabrasa-storefront/internal/usecase/shared"
	"nabrasa-storefront/tests/common/builder"
	dispatchmock "nabrasa-storefront/tests/mock/dispatch"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	sender   *dispatchmock.MockSender
	log      *memstore.DispatchLog
	sessions *memstore.SessionStore
	clock    *clock.MockClock
	logger   *slog.Logger
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sender = dispatchmock.NewMockSender(s.ctrl)
	s.log = memstore.NewDispatchLog()
	s.clock = clock.NewMockClock(builder.StoreNow)
	s.sessions = memstore.NewSessionStore(s.clock, time.Hour)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) newDispatcher(opts dispatch.Options) *dispatch.Dispatcher {
	return dispatch.New(s.sender, s.log, s.sessions, s.clock, s.logger, opts)
}

func job(externalID string) shared.DispatchJob {
	return shared.DispatchJob{
		SessionID:      "sess-1",
		ExternalID:     externalID,
		IdempotencyKey: "key-" + externalID,
		Payload: order.Payload{
			EstablishmentSlug: "na-brasa",
			Order: order.PayloadOrder{
				ExternalID: externalID,
				Meta:       order.PayloadMeta{ContentHash: "hash-" + externalID},
			},
		},
	}
}

func (s *DispatcherTestSuite) stop(d *dispatch.Dispatcher) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.Require().NoError(d.Stop(ctx))
}

func (s *DispatcherTestSuite) TestDelivered() {
	j := job("NB-1")
	s.sender.EXPECT().Send(gomock.Any(), j.Payload, j.IdempotencyKey).
		Return(webhook.Result{OK: true, OrderID: "ord-9", PrintQueued: true}, nil).Times(1)

	d := s.newDispatcher(dispatch.Options{Workers: 2, QueueSize: 4})
	d.Start()
	s.Require().NoError(d.Enqueue(context.Background(), j))
	s.stop(d)

	recs := s.log.ByExternalID("NB-1")
	s.Require().Len(recs, 1)
	s.Equal(shared.DispatchDelivered, recs[0].Status)
	s.Equal("ord-9", recs[0].OrderID)
	s.True(recs[0].PrintQueued)
	s.Equal("hash-NB-1", recs[0].ContentHash)
	s.Equal("key-NB-1", recs[0].IdempotencyKey)

	sess, err := s.sessions.Get(context.Background(), "sess-1")
	s.Require().NoError(err)
	s.Empty(sess.Notices)
}

func (s *DispatcherTestSuite) TestFailureRecordsAndNotifies() {
	j := job("NB-2")
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(webhook.Result{}, &webhook.StatusError{StatusCode: 502, Body: "bad gateway"}).Times(1)

	d := s.newDispatcher(dispatch.Options{Workers: 1, QueueSize: 1})
	d.Start()
	s.Require().NoError(d.Enqueue(context.Background(), j))
	s.stop(d)

	recs := s.log.ByExternalID("NB-2")
	s.Require().Len(recs, 1)
	s.Equal(shared.DispatchFailed, recs[0].Status)
	s.Contains(recs[0].LastError, "502")

	sess, err := s.sessions.Get(context.Background(), "sess-1")
	s.Require().NoError(err)
	s.Require().Len(sess.Notices, 1)
	s.Equal(shared.NoticeDispatchFailed, sess.Notices[0].Kind)
	s.NotEmpty(sess.Notices[0].Message)
}

func (s *DispatcherTestSuite) TestFailureWithoutSessionSkipsNotice() {
	j := job("NB-3")
	j.SessionID = ""
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(webhook.Result{}, errors.New("connection refused")).Times(1)

	d := s.newDispatcher(dispatch.Options{})
	d.Start()
	s.Require().NoError(d.Enqueue(context.Background(), j))
	s.stop(d)

	s.Len(s.log.ByExternalID("NB-3"), 1)
	s.Zero(s.sessions.Len())
}

func (s *DispatcherTestSuite) TestEnqueueFullQueue() {
	// no workers started, so the single slot stays occupied
	d := s.newDispatcher(dispatch.Options{Workers: 1, QueueSize: 1})

	s.Require().NoError(d.Enqueue(context.Background(), job("NB-4")))
	err := d.Enqueue(context.Background(), job("NB-5"))
	s.True(errs.Is(err, errs.ErrDispatchQueueFull))

	s.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(webhook.Result{OK: true}, nil).Times(1)
	d.Start()
	s.stop(d)
}

func (s *DispatcherTestSuite) TestEnqueueAfterStop() {
	d := s.newDispatcher(dispatch.Options{})
	d.Start()
	s.stop(d)

	err := d.Enqueue(context.Background(), job("NB-6"))
	s.Error(err)
	s.True(errs.Is(err, errs.ErrDispatchQueueFull))
}

func (s *DispatcherTestSuite) TestStopHonoursDeadline() {
	release := make(chan struct{})
	s.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, order.Payload, string) (webhook.Result, error) {
			<-release
			return webhook.Result{OK: true}, nil
		}).Times(1)

	d := s.newDispatcher(dispatch.Options{Workers: 1, QueueSize: 1})
	d.Start()
	s.Require().NoError(d.Enqueue(context.Background(), job("NB-7")))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	s.ErrorIs(d.Stop(ctx), context.DeadlineExceeded)

	close(release)
	s.stop(d)
}

func (s *DispatcherTestSuite) TestDisabledDropsJobs() {
	d := dispatch.NewDisabled(s.logger)
	s.NoError(d.Enqueue(context.Background(), job("NB-8")))
}
