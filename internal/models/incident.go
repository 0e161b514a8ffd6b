package models

import (
	"strings"
	"time"
)

// Category - категория вызова из диспетчерской ленты
type Category string

const (
	CategoryFire    Category = "fire"
	CategoryMedical Category = "medical"
	CategoryTraffic Category = "traffic"
	CategoryUnknown Category = "unknown"
)

// ParseCategory приводит значение из ленты к одной из известных категорий
func ParseCategory(raw string) Category {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fire":
		return CategoryFire
	case "medical", "ems":
		return CategoryMedical
	case "traffic":
		return CategoryTraffic
	default:
		return CategoryUnknown
	}
}

// Coordinates - координаты места происшествия
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Incident - строка таблицы incidents. Ключ сверки - Number.
// Цикл сверки пишет в хранилище LiveIncident, эта структура описывает то, что в нем лежит.
type Incident struct {
	Number                int64        `json:"number"`
	Category              Category     `json:"category"`
	Description           string       `json:"description"`
	Intersection          string       `json:"intersection,omitempty"`
	Municipality          string       `json:"municipality"`
	DispatchedAt          time.Time    `json:"dispatched_at"`
	Priority              *int         `json:"priority,omitempty"`
	Agency                string       `json:"agency"`
	Coordinates           *Coordinates `json:"coordinates,omitempty"`
	AddedAt               time.Time    `json:"added_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
	ResolvedAt            *time.Time   `json:"resolved_at,omitempty"`
	AutomaticallyResolved bool         `json:"automatically_resolved"`
	Client                string       `json:"client,omitempty"`
}

// Unit - строка таблицы units. Уникальна в паре (IncidentNumber, ShortName).
type Unit struct {
	IncidentNumber       int64      `json:"incident_number"`
	ShortName            string     `json:"short_name"`
	Name                 string     `json:"name,omitempty"`
	AddedAt              time.Time  `json:"added_at"`
	LastSeen             time.Time  `json:"last_seen"`
	RemovedAt            *time.Time `json:"removed_at,omitempty"`
	AutomaticallyRemoved bool       `json:"automatically_removed"`
}
