// Package catalog keeps the last fetched product catalog. The snapshot is
// immutable and replaced wholesale on every successful refresh; readers never
// block writers.
package catalog

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// Fetcher loads a fresh catalog from the upstream API.
type Fetcher interface {
	FetchCatalog(ctx context.Context) domain.Result[domain.Catalog]
}

// Store holds the current catalog snapshot.
type Store struct {
	fetcher  Fetcher
	snapshot atomic.Pointer[domain.Catalog]
	lastFail atomic.Pointer[domain.Failure]
	inflight atomic.Int32
	group    singleflight.Group
}

// NewStore returns an empty store backed by f.
func NewStore(f Fetcher) *Store {
	return &Store{fetcher: f}
}

// Current reports the store's state without fetching: Success with the
// snapshot once one is loaded, Failure if the only attempts so far failed,
// Pending otherwise.
func (s *Store) Current() domain.Result[domain.Catalog] {
	if snap := s.snapshot.Load(); snap != nil {
		return domain.Success(*snap)
	}
	if f := s.lastFail.Load(); f != nil && s.inflight.Load() == 0 {
		return domain.Fail[domain.Catalog](f)
	}
	return domain.Pending[domain.Catalog]()
}

// Get returns the snapshot, fetching it first if none is loaded.
func (s *Store) Get(ctx context.Context) domain.Result[domain.Catalog] {
	if snap := s.snapshot.Load(); snap != nil {
		return domain.Success(*snap)
	}
	return s.Refresh(ctx)
}

// Refresh fetches a new catalog and replaces the snapshot on success.
// Concurrent callers share one upstream request. The shared request runs
// detached from every caller's cancellation: a caller whose ctx ends gets its
// own Unknown failure while the fetch completes for the others. A failed
// refresh keeps the previous snapshot.
func (s *Store) Refresh(ctx context.Context) domain.Result[domain.Catalog] {
	ch := s.group.DoChan("catalog", func() (any, error) {
		s.inflight.Add(1)
		defer s.inflight.Add(-1)

		res := s.fetcher.FetchCatalog(context.WithoutCancel(ctx))
		if cat, ok := res.Value(); ok {
			s.snapshot.Store(&cat)
			s.lastFail.Store(nil)
		} else if f, ok := res.Failure(); ok && !errors.Is(f, context.Canceled) {
			s.lastFail.Store(f)
		}
		return res, nil
	})

	select {
	case r := <-ch:
		return r.Val.(domain.Result[domain.Catalog])
	case <-ctx.Done():
		return domain.Fail[domain.Catalog](&domain.Failure{
			Kind:   domain.FailureUnknown,
			Detail: "request cancelled",
			Cause:  ctx.Err(),
		})
	}
}

// Replace installs cat as the snapshot without fetching.
func (s *Store) Replace(cat domain.Catalog) {
	s.snapshot.Store(&cat)
	s.lastFail.Store(nil)
}
