package v1

import (
	"time"

	"github.com/google/uuid"
)

// RecentRequestsQuery параметры выборки журнала опросов
// @Description Параметры выборки журнала опросов
type RecentRequestsQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=500"`
}

// CycleSummaryResponse DTO со сводкой последнего цикла сверки
// @Description Сводка последнего цикла сверки
type CycleSummaryResponse struct {
	StartedAt        time.Time `json:"started_at"`
	DurationSeconds  float64   `json:"duration_seconds"`
	Success          bool      `json:"success"`
	Live             int       `json:"live"`
	New              int       `json:"new"`
	Known            int       `json:"known"`
	Resolved         int       `json:"resolved"`
	Geocoded         int       `json:"geocoded"`
	FailedIncidents  int       `json:"failed_incidents"`
	FailedUnits      int       `json:"failed_units"`
	SkippedUnits     int       `json:"skipped_units"`
	UnitsAssigned    int       `json:"units_assigned"`
	UnitsUnassigned  int       `json:"units_unassigned"`
	IncidentsUpdated int       `json:"incidents_updated"`
}

// FeedStatusResponse DTO состояния планировщика
// @Description Состояние планировщика опроса ленты
type FeedStatusResponse struct {
	LastAttempt     *time.Time            `json:"last_attempt,omitempty"`
	LastSuccess     *time.Time            `json:"last_success,omitempty"`
	CachedIncidents int                   `json:"cached_incidents"`
	LastCycle       *CycleSummaryResponse `json:"last_cycle,omitempty"`
}

// FeedRequestResponse DTO записи журнала опросов
// @Description Запись журнала опросов ленты
type FeedRequestResponse struct {
	ID               uuid.UUID `json:"id"`
	RequestedAt      time.Time `json:"requested_at"`
	ExecutionSeconds float64   `json:"execution_seconds"`
	Success          bool      `json:"success"`
	Parser           string    `json:"parser"`
	Incidents        *int      `json:"incidents,omitempty"`
	Message          string    `json:"message,omitempty"`
}

// ResolveStaleResponse DTO результата ручного прохода разрешения
// @Description Результат прохода автоматического разрешения
type ResolveStaleResponse struct {
	Incidents int64 `json:"incidents"`
	Units     int64 `json:"units"`
}
