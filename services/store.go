package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	appContext "github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
	log "github.com/sirupsen/logrus"
)

const STORE_SVC = "store_svc"

const (
	StoreDriverSqlite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
	StoreDriverMinIO    = "minio"
	StoreDriverMemory   = "memory"
)

// Store is the durable string-keyed blob store both engines persist to.
// Get reports found=false for a key that was never written.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// StoreService is a Store that also runs inside the service container.
type StoreService interface {
	appContext.Service
	Store
}

// NewStoreService picks the backend registered under STORE_SVC.
func NewStoreService(driver string) (StoreService, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", StoreDriverSqlite:
		return &SqliteService{}, nil
	case StoreDriverPostgres:
		return &PostgresService{}, nil
	case StoreDriverRedis:
		return &RedisService{}, nil
	case StoreDriverMinIO:
		return &MinIOService{}, nil
	case StoreDriverMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}

// OpenStore configures and starts the chosen backend outside the service
// container. The caller must Shutdown it.
func OpenStore(driver string) (StoreService, error) {
	svc, err := NewStoreService(driver)
	if err != nil {
		return nil, err
	}
	if c, ok := svc.(interface{ loadConfig() }); ok {
		c.loadConfig()
	}
	if err := svc.Start(); err != nil {
		return nil, err
	}
	return svc, nil
}

// MemoryStore keeps blobs in process memory. State is lost on exit.
type MemoryStore struct {
	appContext.DefaultService

	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (s *MemoryStore) Id() string {
	return STORE_SVC
}

func (s *MemoryStore) Configure(ctx *appContext.Context) error {
	if s.items == nil {
		s.items = make(map[string]string)
	}
	return s.DefaultService.Configure(ctx)
}

func (s *MemoryStore) Start() error {
	log.Println("Using in-memory store, progress will not survive a restart")
	return nil
}

func (s *MemoryStore) Shutdown() {}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// loadRecord decodes the blob stored under key into dest. It returns false
// when the key is absent or the blob cannot be decoded; the caller then
// falls back to its default record.
func loadRecord(ctx context.Context, store Store, key string, dest interface{}) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return false, nil
	}

	if err := shared.Unmarshal([]byte(raw), dest); err != nil {
		log.WithFields(log.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Discarding unreadable stored record")
		return false, nil
	}
	return true, nil
}

// saveRecord writes the whole record in a single Set.
func saveRecord(ctx context.Context, store Store, key string, record interface{}) error {
	data, err := shared.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
