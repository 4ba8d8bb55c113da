package service

import (
	"time"

	"github.com/needsomevibe/passcard/pass-service/internal/models"
)

// Clock — абстракция времени для тестируемости
type Clock interface {
	Now() time.Time
}

// TokenSource — генерация authenticationToken для webServiceURL
type TokenSource interface {
	AuthToken() (string, error)
}

// Signer — отсоединённая CMS-подпись манифеста
type Signer interface {
	Sign(manifest []byte) ([]byte, error)
}

// PassStore — порт кэша готовых пассов (память + зеркало на диске)
type PassStore interface {
	Put(serial string, e PassEntry) error
	Get(serial string) ([]byte, error)
	// GetEntry смотрит только в память: web-service стабу нужен
	// момент создания, которого у дисковых файлов нет
	GetEntry(serial string) (PassEntry, bool)
	Delete(serial string) error
	List() []PassSummary
}

// PassEntry — запись кэша: исходный билет, момент создания и готовые байты
type PassEntry struct {
	Ticket    models.Ticket
	CreatedAt time.Time
	Data      []byte
}

// PassSummary — проекция записи для list()
type PassSummary struct {
	SerialNumber string
	EventName    string
	CreatedAt    time.Time
}
