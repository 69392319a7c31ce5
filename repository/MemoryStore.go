package repository

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Aditya231356/Carpenter-Website/models"
)

// MemoryStore keeps collections in process memory. It backs tests and local
// runs without a Redis instance; the JSON round-trip mirrors RedisStore so
// both enforce the same serialization contract.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Load(key string, dest any) (found bool, err error) {
	s.mu.RLock()
	val, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return
	}
	err = json.Unmarshal(val, dest)
	if err != nil {
		log.Printf("Load: Unmarshal err: %v", err)
		err = models.ErrServerError
		return
	}
	found = true
	return
}

func (s *MemoryStore) Save(key string, value any) (err error) {
	jsonData, err := json.Marshal(value)
	if err != nil {
		log.Printf("Save: Marshal err: %v", err)
		err = models.ErrServerError
		return
	}
	s.mu.Lock()
	s.data[key] = jsonData
	s.mu.Unlock()
	return
}

func (s *MemoryStore) Delete(key string) (err error) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return
}

// Put stores a raw value under key, bypassing marshaling. Used by tests to
// plant corrupt payloads.
func (s *MemoryStore) Put(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
}
