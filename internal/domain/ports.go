package domain

import "context"

// BlobStore описывает key-value поверхность хранения, в которой реестр
// заказов живёт одним сериализованным блобом под фиксированным ключом.
type BlobStore interface {
	// Get возвращает блоб по ключу; второй результат false, если ключа нет.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set атомарно перезаписывает блоб целиком.
	Set(ctx context.Context, key string, value []byte) error
	// Delete удаляет ключ; отсутствие ключа не является ошибкой.
	Delete(ctx context.Context, key string) error
}

// ProductSource — read-only источник каталожных записей. Каталогом владеет
// внешний контур; ядро его только читает.
type ProductSource interface {
	// List возвращает записи в стабильном порядке источника.
	List(ctx context.Context) ([]Product, error)
}

// EventPublisher публикует события жизненного цикла заказов наружу.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}
