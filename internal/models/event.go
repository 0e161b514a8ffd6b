package models

import "time"

// EventType - тип изменения, обнаруженного при сверке
type EventType string

const (
	EventIncidentNew      EventType = "incident.new"
	EventIncidentResolved EventType = "incident.resolved"
	EventUnitAssigned     EventType = "unit.assigned"
	EventUnitUnassigned   EventType = "unit.unassigned"
)

// ChangeEvent - событие для внешних потребителей. Доставка не гарантируется.
type ChangeEvent struct {
	Type           EventType `json:"type"`
	IncidentNumber int64     `json:"incident_number"`
	Category       Category  `json:"category,omitempty"`
	Description    string    `json:"description,omitempty"`
	Municipality   string    `json:"municipality,omitempty"`
	UnitShortName  string    `json:"unit_short_name,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
