package models

import "time"

// IncidentResult - итог применения инцидентов за один цикл
type IncidentResult struct {
	Upserted int `json:"upserted"`
	Resolved int `json:"resolved"`
	Failed   int `json:"failed"`
}

// UnitResult - итог применения одного прохода по подразделениям
type UnitResult struct {
	Affected int `json:"affected"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
}

// CycleResult - сводка одного цикла опроса
type CycleResult struct {
	StartedAt     time.Time      `json:"started_at"`
	Duration      time.Duration  `json:"duration"`
	Success       bool           `json:"success"`
	LiveCount     int            `json:"live"`
	NewCount      int            `json:"new"`
	KnownCount    int            `json:"known"`
	ResolvedCount int            `json:"resolved"`
	Incidents     IncidentResult `json:"incidents"`
	Assigned      UnitResult     `json:"assigned"`
	Persisted     UnitResult     `json:"persisted"`
	Unassigned    UnitResult     `json:"unassigned"`
	Geocoded      int            `json:"geocoded"`
}

// FeedStatus - состояние планировщика для операционного API
type FeedStatus struct {
	LastAttempt     *time.Time   `json:"last_attempt,omitempty"`
	LastSuccess     *time.Time   `json:"last_success,omitempty"`
	CachedIncidents int          `json:"cached_incidents"`
	LastCycle       *CycleResult `json:"last_cycle,omitempty"`
}

// ResolveResult - итог прохода автоматического разрешения
type ResolveResult struct {
	Incidents int64 `json:"incidents"`
	Units     int64 `json:"units"`
}
