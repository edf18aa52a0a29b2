package shared

import (
	"context"
	"time"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/domain/order"
)

type NoticeKind string

const NoticeDispatchFailed NoticeKind = "dispatch_failed"

// Notice is a non-blocking message shown to the customer on the next cart read.
type Notice struct {
	Kind    NoticeKind
	Message string
	At      time.Time
}

type Session struct {
	ID        string
	Cart      *cart.Cart
	Notices   []Notice
	UpdatedAt time.Time
}

// SessionStore keeps one cart per session id. Update serializes mutations of a
// single session and creates the session on first use; Get returns a copy.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, id string, fn func(s *Session) error) error
	AppendNotice(ctx context.Context, id string, n Notice) error
}

type DispatchJob struct {
	SessionID      string
	ExternalID     string
	IdempotencyKey string
	Payload        order.Payload
}

// OrderDispatcher delivers intake payloads off the request path.
type OrderDispatcher interface {
	Enqueue(ctx context.Context, job DispatchJob) error
}

type DispatchStatus string

const (
	DispatchDelivered DispatchStatus = "delivered"
	DispatchFailed    DispatchStatus = "failed"
)

type DispatchRecord struct {
	ExternalID     string
	IdempotencyKey string
	ContentHash    string
	Status         DispatchStatus
	OrderID        string
	PrintQueued    bool
	LastError      string
	AttemptedAt    time.Time
}

type DispatchLog interface {
	Record(ctx context.Context, rec DispatchRecord) error
}
