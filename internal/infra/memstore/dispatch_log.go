package memstore

import (
	"context"
	"sync"

	"nabrasa-storefront/internal/usecase/shared"
)

type DispatchLog struct {
	mu      sync.Mutex
	records []shared.DispatchRecord
}

var _ shared.DispatchLog = (*DispatchLog)(nil)

func NewDispatchLog() *DispatchLog {
	return &DispatchLog{}
}

func (l *DispatchLog) Record(_ context.Context, rec shared.DispatchRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	return nil
}

// ByExternalID returns the attempts recorded for one order, oldest first.
func (l *DispatchLog) ByExternalID(externalID string) []shared.DispatchRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []shared.DispatchRecord
	for _, r := range l.records {
		if r.ExternalID == externalID {
			out = append(out, r)
		}
	}
	return out
}
