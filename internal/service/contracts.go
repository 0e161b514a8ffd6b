package service

import (
	"context"
	"time"

	"github.com/shenikar/dispatch_feed_sync/internal/models"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

// IncidentRepository определяет контракт хранилища инцидентов и подразделений
type IncidentRepository interface {
	// UpsertIncident вставляет инцидент или обновляет изменяемые поля существующего.
	// При reactivate повторное появление в ленте снимает отметку о разрешении.
	UpsertIncident(ctx context.Context, incident models.LiveIncident, parser string, now time.Time, reactivate bool) error
	// ResolveIncident ставит resolved_at, если инцидент еще не разрешен
	ResolveIncident(ctx context.Context, number int64, now time.Time) (bool, error)
	// UpsertUnits в одной транзакции вставляет подразделения или обновляет last_seen.
	// При reactivate повторное появление снимает отметку о снятии.
	UpsertUnits(ctx context.Context, number int64, units []models.LiveUnit, now time.Time, reactivate bool) (int, error)
	// RemoveUnits в одной транзакции отмечает подразделения снятыми
	RemoveUnits(ctx context.Context, number int64, shortNames []string, now time.Time) (int, error)
	ResolveStaleIncidents(ctx context.Context, now, cutoff time.Time) (int64, error)
	RemoveStaleUnits(ctx context.Context, now, cutoff time.Time) (int64, error)
	// ListActive возвращает неразрешенные инциденты с активными подразделениями
	ListActive(ctx context.Context) ([]models.LiveIncident, error)
}

// FeedRequestRepository определяет контракт журнала опросов ленты
type FeedRequestRepository interface {
	Create(ctx context.Context, req *models.FeedRequest) error
	ListRecent(ctx context.Context, limit int) ([]*models.FeedRequest, error)
}

// FeedClient получает текущий список инцидентов из внешней ленты
type FeedClient interface {
	Fetch(ctx context.Context) ([]models.LiveIncident, error)
	// Parser идентифицирует клиента/парсер в аудите и в поле client инцидента
	Parser() string
}

// Geocoder переводит адрес в координаты. nil без ошибки означает "недоступно".
type Geocoder interface {
	Resolve(ctx context.Context, address string) (*models.Coordinates, error)
}

// EventPublisher отдает события изменений внешним потребителям
type EventPublisher interface {
	Publish(ctx context.Context, events []models.ChangeEvent) error
}

// FeedService определяет контракт операционного API
type FeedService interface {
	Status() models.FeedStatus
	CheckReadiness(ctx context.Context) error
	RecentRequests(ctx context.Context, limit int) ([]*models.FeedRequest, error)
	ResolveStale(ctx context.Context) (models.ResolveResult, error)
}
