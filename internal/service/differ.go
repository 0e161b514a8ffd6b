package service

import (
	"sort"

	"github.com/shenikar/dispatch_feed_sync/internal/models"
)

// DiffResult - классификация живого снимка относительно закэшированного
type DiffResult struct {
	// Live - живой снимок без дубликатов номеров, в порядке ленты
	Live     []models.LiveIncident
	New      []models.LiveIncident
	Known    []models.LiveIncident
	Resolved []models.LiveIncident

	// Дельты подразделений по номеру инцидента. Пустые списки не попадают в карты.
	NewlyAssigned map[int64][]models.LiveUnit
	Unassigned    map[int64][]models.LiveUnit
	Persisted     map[int64][]models.LiveUnit

	// Duplicates - сколько повторов номера отброшено из ленты
	Duplicates int
}

// Diff сравнивает живой снимок с закэшированным. Чистая функция: не читает
// часы и не меняет аргументы, одинаковый вход дает одинаковый выход.
func Diff(cached map[int64]models.LiveIncident, live []models.LiveIncident) DiffResult {
	res := DiffResult{
		Live:          make([]models.LiveIncident, 0, len(live)),
		New:           []models.LiveIncident{},
		Known:         []models.LiveIncident{},
		Resolved:      []models.LiveIncident{},
		NewlyAssigned: map[int64][]models.LiveUnit{},
		Unassigned:    map[int64][]models.LiveUnit{},
		Persisted:     map[int64][]models.LiveUnit{},
	}

	seen := make(map[int64]struct{}, len(live))
	for _, incident := range live {
		if _, dup := seen[incident.Number]; dup {
			res.Duplicates++
			continue
		}
		seen[incident.Number] = struct{}{}

		incident.Units = dedupeUnits(incident.Units)
		res.Live = append(res.Live, incident)

		previous, known := cached[incident.Number]
		if !known {
			res.New = append(res.New, incident)
			putUnits(res.NewlyAssigned, incident.Number, incident.Units)
			continue
		}

		res.Known = append(res.Known, incident)
		assigned, unassigned, persisted := diffUnits(dedupeUnits(previous.Units), incident.Units)
		putUnits(res.NewlyAssigned, incident.Number, assigned)
		putUnits(res.Unassigned, incident.Number, unassigned)
		putUnits(res.Persisted, incident.Number, persisted)
	}

	numbers := make([]int64, 0, len(cached))
	for number := range cached {
		if _, ok := seen[number]; !ok {
			numbers = append(numbers, number)
		}
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	for _, number := range numbers {
		incident := cached[number]
		incident.Units = dedupeUnits(incident.Units)
		res.Resolved = append(res.Resolved, incident)
		putUnits(res.Unassigned, number, incident.Units)
	}

	return res
}

// Snapshot строит новый кэш целиком из живого снимка
func (d DiffResult) Snapshot() map[int64]models.LiveIncident {
	snapshot := make(map[int64]models.LiveIncident, len(d.Live))
	for _, incident := range d.Live {
		snapshot[incident.Number] = incident
	}
	return snapshot
}

// diffUnits сравнивает наборы подразделений по ShortName
func diffUnits(cached, live []models.LiveUnit) (assigned, unassigned, persisted []models.LiveUnit) {
	before := make(map[string]struct{}, len(cached))
	for _, u := range cached {
		before[u.ShortName] = struct{}{}
	}
	now := make(map[string]struct{}, len(live))
	for _, u := range live {
		now[u.ShortName] = struct{}{}
		if _, ok := before[u.ShortName]; ok {
			persisted = append(persisted, u)
		} else {
			assigned = append(assigned, u)
		}
	}
	for _, u := range cached {
		if _, ok := now[u.ShortName]; !ok {
			unassigned = append(unassigned, u)
		}
	}
	return assigned, unassigned, persisted
}

func dedupeUnits(units []models.LiveUnit) []models.LiveUnit {
	if len(units) < 2 {
		return units
	}
	seen := make(map[string]struct{}, len(units))
	out := make([]models.LiveUnit, 0, len(units))
	for _, u := range units {
		if _, ok := seen[u.ShortName]; ok {
			continue
		}
		seen[u.ShortName] = struct{}{}
		out = append(out, u)
	}
	return out
}

func putUnits(dst map[int64][]models.LiveUnit, number int64, units []models.LiveUnit) {
	if len(units) > 0 {
		dst[number] = units
	}
}
