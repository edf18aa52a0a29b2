package memstore

import (
	"context"
	"sync"

	"nabrasa-storefront/internal/domain/coupon"
)

type CouponUsageStore struct {
	mu      sync.RWMutex
	records map[coupon.Code]coupon.UsageRecord
}

var _ coupon.UsageStore = (*CouponUsageStore)(nil)

func NewCouponUsageStore() *CouponUsageStore {
	return &CouponUsageStore{records: make(map[coupon.Code]coupon.UsageRecord)}
}

func (s *CouponUsageStore) Get(_ context.Context, code coupon.Code) (coupon.UsageRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[code]
	if !ok {
		return coupon.UsageRecord{Code: code}, false, nil
	}
	return rec, true, nil
}

func (s *CouponUsageStore) Set(_ context.Context, rec coupon.UsageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Code] = rec
	return nil
}
