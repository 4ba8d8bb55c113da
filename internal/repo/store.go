package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/needsomevibe/passcard/pass-service/internal/service"
)

// Store — кэш готовых пассов, реализует порт service.PassStore:
// карта в памяти под RWMutex плюс зеркало <serial>.pkpass на диске.
// Диск — не источник истины: list() после рестарта дисковые файлы
// не видит, get() — видит.
type Store struct {
	dir string

	mu      sync.RWMutex
	entries map[string]service.PassEntry
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &Store{dir: dir, entries: make(map[string]service.PassEntry)}, nil
}

// Put сохраняет запись: сперва файл, затем карта; последний
// писатель по одному serial выигрывает
func (s *Store) Put(serial string, e service.PassEntry) error {
	if err := os.WriteFile(s.path(serial), e.Data, 0o644); err != nil {
		return fmt.Errorf("write %s.pkpass: %w", serial, err)
	}
	s.mu.Lock()
	s.entries[serial] = e
	s.mu.Unlock()
	return nil
}

// Get — память, затем диск, затем service.ErrNotFound
func (s *Store) Get(serial string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.entries[serial]
	s.mu.RUnlock()
	if ok {
		return e.Data, nil
	}
	data, err := os.ReadFile(s.path(serial))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("read %s.pkpass: %w", serial, err)
	}
	return data, nil
}

// GetEntry — запись целиком, только из памяти
func (s *Store) GetEntry(serial string) (service.PassEntry, bool) {
	s.mu.RLock()
	e, ok := s.entries[serial]
	s.mu.RUnlock()
	return e, ok
}

// Delete — идемпотентно убирает запись из памяти и файл с диска
func (s *Store) Delete(serial string) error {
	s.mu.Lock()
	delete(s.entries, serial)
	s.mu.Unlock()
	if err := os.Remove(s.path(serial)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s.pkpass: %w", serial, err)
	}
	return nil
}

// List — сводки записей в памяти, отсортированы по времени создания
func (s *Store) List() []service.PassSummary {
	s.mu.RLock()
	out := make([]service.PassSummary, 0, len(s.entries))
	for serial, e := range s.entries {
		out = append(out, service.PassSummary{
			SerialNumber: serial,
			EventName:    e.Ticket.EventName(),
			CreatedAt:    e.CreatedAt,
		})
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].SerialNumber < out[j].SerialNumber
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *Store) path(serial string) string {
	return filepath.Join(s.dir, serial+".pkpass")
}
