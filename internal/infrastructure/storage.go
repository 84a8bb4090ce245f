package infrastructure

import (
	"fmt"
	"sync"
)

// MemoryStorage is a process-local key-value storage
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string]string),
	}
}

func (ms *MemoryStorage) GetItem(key string) (string, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	value, ok := ms.items[key]
	return value, ok
}

func (ms *MemoryStorage) SetItem(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.items[key] = value
	return nil
}

// Session is the part of a gin-contrib/sessions Session used by SessionStorage
type Session interface {
	Get(key interface{}) interface{}
	Set(key interface{}, val interface{})
	Save() error
}

// SessionStorage stores items in the browser session. Every write is saved immediately.
type SessionStorage struct {
	session Session
}

func NewSessionStorage(session Session) *SessionStorage {
	return &SessionStorage{
		session: session,
	}
}

func (ss SessionStorage) GetItem(key string) (string, bool) {
	value, ok := ss.session.Get(key).(string)
	return value, ok
}

func (ss SessionStorage) SetItem(key, value string) error {
	ss.session.Set(key, value)
	if err := ss.session.Save(); err != nil {
		return fmt.Errorf("could not save session item '%s': %w", key, err)
	}
	return nil
}
