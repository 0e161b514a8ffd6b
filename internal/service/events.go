package service

import (
	"sort"
	"time"

	"github.com/shenikar/dispatch_feed_sync/internal/models"
)

// changeEvents превращает результат сравнения в события для внешних потребителей
func changeEvents(diff DiffResult, now time.Time) []models.ChangeEvent {
	events := make([]models.ChangeEvent, 0, len(diff.New)+len(diff.Resolved))

	for _, incident := range diff.New {
		events = append(events, incidentEvent(models.EventIncidentNew, incident, now))
	}
	for _, incident := range diff.Resolved {
		events = append(events, incidentEvent(models.EventIncidentResolved, incident, now))
	}
	events = append(events, unitEvents(models.EventUnitAssigned, diff.NewlyAssigned, now)...)
	events = append(events, unitEvents(models.EventUnitUnassigned, diff.Unassigned, now)...)
	return events
}

func incidentEvent(kind models.EventType, incident models.LiveIncident, now time.Time) models.ChangeEvent {
	return models.ChangeEvent{
		Type:           kind,
		IncidentNumber: incident.Number,
		Category:       incident.Category,
		Description:    incident.Description,
		Municipality:   incident.Municipality,
		OccurredAt:     now,
	}
}

func unitEvents(kind models.EventType, byIncident map[int64][]models.LiveUnit, now time.Time) []models.ChangeEvent {
	numbers := make([]int64, 0, len(byIncident))
	for number := range byIncident {
		numbers = append(numbers, number)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	var events []models.ChangeEvent
	for _, number := range numbers {
		for _, unit := range byIncident[number] {
			events = append(events, models.ChangeEvent{
				Type:           kind,
				IncidentNumber: number,
				UnitShortName:  unit.ShortName,
				OccurredAt:     now,
			})
		}
	}
	return events
}
