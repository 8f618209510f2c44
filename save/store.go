package save

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

const itemKey = "progress"

// Store loads and saves a Record.
type Store interface {
	Load() (*Record, error)
	Save(r *Record) error
}

// items is the part of *gdata.Manager the disk store uses.
type items interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// DiskStore keeps the record in the per-user data directory through gdata.
type DiskStore struct {
	m items
}

// OpenDisk opens the gdata storage for appName.
func OpenDisk(appName string) (*DiskStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save storage: %w", err)
	}
	return &DiskStore{m: m}, nil
}

// Load returns the stored record, or a default one when nothing was saved
// yet. A record that cannot be read or decoded is an error.
func (s *DiskStore) Load() (*Record, error) {
	data, err := s.m.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("read save data: %w", err)
	}
	return decode(data)
}

func (s *DiskStore) Save(r *Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	if err := s.m.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("write save data: %w", err)
	}
	return nil
}

// MemoryStore keeps the encoded record in memory. It is used by tests and
// when disk storage is unavailable.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	// Saves counts successful Save calls.
	Saves int
}

func (s *MemoryStore) Load() (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decode(s.data)
}

func (s *MemoryStore) Save(r *Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	s.mu.Lock()
	s.data = data
	s.Saves++
	s.mu.Unlock()
	return nil
}

// Raw replaces the stored bytes.
func (s *MemoryStore) Raw(data []byte) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

func decode(data []byte) (*Record, error) {
	if len(data) == 0 {
		return Default(), nil
	}
	r := Default()
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("decode save data: %w", err)
	}
	return r, nil
}

// Flush saves r and logs instead of failing. Gameplay code uses it after
// checkpoints and state changes.
func Flush(s Store, r *Record) {
	if s == nil || r == nil {
		return
	}
	if err := s.Save(r); err != nil {
		log.Printf("Warning: %v", err)
	}
}
