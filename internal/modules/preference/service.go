package preference

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrMissingID = errors.New("preference: missing id")

type Service struct {
	store Store
	// mu serializes read-merge-write so concurrent partial updates are not lost.
	mu sync.Mutex
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load returns the stored record; a missing record is an empty one.
func (s *Service) Load(ctx context.Context, id string) (Record, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false, ErrMissingID
	}
	return s.store.Get(ctx, id)
}

// Save merges a partial update into the stored record and returns the result.
func (s *Service) Save(ctx context.Context, id string, update Record) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	current, _, err := s.store.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	merged := current.Merge(update)
	if err := s.store.Set(ctx, id, merged); err != nil {
		return Record{}, err
	}
	return merged, nil
}
