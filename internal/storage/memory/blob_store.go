package memory

import (
	"context"
	"sync"

	"github.com/MOWLI17/luxora-sub001/internal/domain"
)

// blobStoreInMemory — простая in-memory реализация BlobStore.
type blobStoreInMemory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewBlobStore возвращает in-memory хранилище блобов для локальной
// разработки и тестов.
func NewBlobStore() domain.BlobStore {
	return &blobStoreInMemory{
		blobs: make(map[string][]byte),
	}
}

// Get возвращает копию блоба; false — если ключа нет.
func (s *blobStoreInMemory) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	// Возвращаем копию, чтобы избежать непредсказуемых мутаций извне.
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

// Set перезаписывает блоб целиком.
func (s *blobStoreInMemory) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.blobs[key] = stored
	return nil
}

// Delete удаляет ключ; отсутствие ключа не считается ошибкой.
func (s *blobStoreInMemory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

var _ domain.BlobStore = (*blobStoreInMemory)(nil)
