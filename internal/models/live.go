package models

import "time"

// LiveUnit - подразделение в том виде, в котором его отдает лента
type LiveUnit struct {
	ShortName string `json:"short_name"`
	Name      string `json:"name,omitempty"`
}

// LiveIncident - инцидент, который прямо сейчас присутствует в ленте
type LiveIncident struct {
	Number       int64        `json:"number"`
	Category     Category     `json:"category"`
	Description  string       `json:"description"`
	Intersection string       `json:"intersection,omitempty"`
	Municipality string       `json:"municipality"`
	DispatchedAt time.Time    `json:"dispatched_at"`
	Priority     *int         `json:"priority,omitempty"`
	Agency       string       `json:"agency"`
	Units        []LiveUnit   `json:"units"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// UnitShortNames возвращает короткие имена подразделений в порядке ленты
func (i LiveIncident) UnitShortNames() []string {
	names := make([]string, 0, len(i.Units))
	for _, u := range i.Units {
		names = append(names, u.ShortName)
	}
	return names
}
