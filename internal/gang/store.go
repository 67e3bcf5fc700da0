package gang

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
)

var errStoreLoad = errors.New("failed to load session state")

// Backend persists the aggregate as a single JSON document under a fixed
// key.
type Backend interface {
	// LoadDoc returns the stored document, or ok=false when none exists.
	LoadDoc(ctx context.Context, key string) (doc []byte, ok bool, err error)
	SaveDoc(ctx context.Context, key string, doc []byte) error
}

// Store owns the in-memory aggregate and is the only sanctioned mutation
// path. Mutations are pure transformations applied under a lock so no two
// of them can observe a stale intermediate aggregate. Persistence is a
// best-effort side effect: if the backend fails the in-memory state stays
// authoritative for the rest of the session.
type Store struct {
	mu      sync.Mutex
	backend Backend
	data    AppData
}

// NewStore loads the prior session state, or starts from defaults when
// nothing was persisted yet.
func NewStore(ctx context.Context, backend Backend) (*Store, error) {
	doc, ok, errLoad := backend.LoadDoc(ctx, StorageKey)
	if errLoad != nil {
		return nil, errors.Join(errLoad, errStoreLoad)
	}

	data := Default()
	if ok {
		data = decodeDoc(doc)
	}

	return &Store{backend: backend, data: data}, nil
}

// decodeDoc repairs a possibly partial document by unmarshalling over the
// defaults: missing fields, including individual settings fields, keep their
// default values. A document that cannot be parsed at all is discarded.
func decodeDoc(doc []byte) AppData {
	data := Default()
	if err := json.Unmarshal(doc, &data); err != nil {
		slog.Warn("Discarding unparseable session document", slog.String("error", err.Error()))

		return Default()
	}

	return data
}

// Data returns the current aggregate.
func (s *Store) Data() AppData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data
}

// Update applies a pure transformation to the current aggregate, keeps the
// result as the new state and persists it. When the transformation fails the
// aggregate is unchanged and nothing is written.
func (s *Store) Update(ctx context.Context, mutate func(AppData) (AppData, error)) (AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, errMutate := mutate(s.data)
	if errMutate != nil {
		return s.data, errMutate
	}

	s.data = next
	s.persist(ctx)

	return next, nil
}

func (s *Store) persist(ctx context.Context) {
	doc, errMarshal := json.Marshal(s.data)
	if errMarshal != nil {
		slog.Error("Failed to encode session state", slog.String("error", errMarshal.Error()))

		return
	}

	if err := s.backend.SaveDoc(ctx, StorageKey, doc); err != nil {
		slog.Warn("Failed to persist session state, continuing in memory",
			slog.String("error", err.Error()))
	}
}
