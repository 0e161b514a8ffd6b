package service

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// newTestLogger - логгер с отключенным выводом
func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

type unitKey struct {
	number    int64
	shortName string
}

// memStore повторяет семантику SQL-репозитория в памяти
type memStore struct {
	mu        sync.Mutex
	incidents map[int64]*models.Incident
	units     map[unitKey]*models.Unit
	requests  []*models.FeedRequest

	failUpsert map[int64]error
	failUnits  map[int64]error
}

func newMemStore() *memStore {
	return &memStore{
		incidents:  map[int64]*models.Incident{},
		units:      map[unitKey]*models.Unit{},
		failUpsert: map[int64]error{},
		failUnits:  map[int64]error{},
	}
}

func (s *memStore) UpsertIncident(_ context.Context, in models.LiveIncident, parser string, now time.Time, reactivate bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failUpsert[in.Number]; err != nil {
		return err
	}

	existing, ok := s.incidents[in.Number]
	if !ok {
		s.incidents[in.Number] = &models.Incident{
			Number:       in.Number,
			Category:     in.Category,
			Description:  in.Description,
			Intersection: in.Intersection,
			Municipality: in.Municipality,
			DispatchedAt: in.DispatchedAt,
			Priority:     in.Priority,
			Agency:       in.Agency,
			Coordinates:  in.Coordinates,
			AddedAt:      now,
			UpdatedAt:    now,
			Client:       parser,
		}
		return nil
	}

	existing.Category = in.Category
	existing.Description = in.Description
	existing.Intersection = in.Intersection
	existing.Municipality = in.Municipality
	existing.Priority = in.Priority
	if in.Coordinates != nil {
		existing.Coordinates = in.Coordinates
	}
	existing.UpdatedAt = now
	if reactivate {
		existing.ResolvedAt = nil
		existing.AutomaticallyResolved = false
	}
	return nil
}

func (s *memStore) ResolveIncident(_ context.Context, number int64, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inc, ok := s.incidents[number]
	if !ok || inc.ResolvedAt != nil {
		return false, nil
	}
	inc.ResolvedAt = &now
	return true, nil
}

func (s *memStore) UpsertUnits(_ context.Context, number int64, units []models.LiveUnit, now time.Time, reactivate bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failUnits[number]; err != nil {
		return 0, err
	}
	if _, ok := s.incidents[number]; !ok {
		return 0, ErrIncidentNotFound
	}
	for _, u := range units {
		key := unitKey{number, u.ShortName}
		if existing, ok := s.units[key]; ok {
			existing.LastSeen = now
			if reactivate {
				existing.RemovedAt = nil
				existing.AutomaticallyRemoved = false
			}
			continue
		}
		s.units[key] = &models.Unit{
			IncidentNumber: number,
			ShortName:      u.ShortName,
			Name:           u.Name,
			AddedAt:        now,
			LastSeen:       now,
		}
	}
	return len(units), nil
}

func (s *memStore) RemoveUnits(_ context.Context, number int64, shortNames []string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failUnits[number]; err != nil {
		return 0, err
	}
	if _, ok := s.incidents[number]; !ok {
		return 0, ErrIncidentNotFound
	}
	n := 0
	for _, name := range shortNames {
		if u, ok := s.units[unitKey{number, name}]; ok && u.RemovedAt == nil {
			u.RemovedAt = &now
			n++
		}
	}
	return n, nil
}

func (s *memStore) ResolveStaleIncidents(_ context.Context, now, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, inc := range s.incidents {
		if inc.ResolvedAt == nil && !inc.UpdatedAt.After(cutoff) {
			inc.ResolvedAt = &now
			inc.AutomaticallyResolved = true
			n++
		}
	}
	return n, nil
}

func (s *memStore) RemoveStaleUnits(_ context.Context, now, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, u := range s.units {
		if u.RemovedAt == nil && !u.LastSeen.After(cutoff) {
			u.RemovedAt = &now
			u.AutomaticallyRemoved = true
			n++
		}
	}
	return n, nil
}

func (s *memStore) ListActive(_ context.Context) ([]models.LiveIncident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.LiveIncident
	for _, inc := range s.incidents {
		if inc.ResolvedAt != nil {
			continue
		}
		live := models.LiveIncident{
			Number:       inc.Number,
			Category:     inc.Category,
			Description:  inc.Description,
			Intersection: inc.Intersection,
			Municipality: inc.Municipality,
			DispatchedAt: inc.DispatchedAt,
			Priority:     inc.Priority,
			Agency:       inc.Agency,
			Coordinates:  inc.Coordinates,
		}
		for key, u := range s.units {
			if key.number == inc.Number && u.RemovedAt == nil {
				live.Units = append(live.Units, models.LiveUnit{ShortName: u.ShortName, Name: u.Name})
			}
		}
		sort.Slice(live.Units, func(i, j int) bool { return live.Units[i].ShortName < live.Units[j].ShortName })
		out = append(out, live)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s *memStore) Create(_ context.Context, req *models.FeedRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *req
	s.requests = append(s.requests, &cp)
	return nil
}

func (s *memStore) ListRecent(_ context.Context, limit int) ([]*models.FeedRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.FeedRequest, 0, limit)
	for i := len(s.requests) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.requests[i])
	}
	return out, nil
}

func (s *memStore) incident(number int64) *models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inc, ok := s.incidents[number]; ok {
		cp := *inc
		return &cp
	}
	return nil
}

func (s *memStore) unit(number int64, shortName string) *models.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.units[unitKey{number, shortName}]; ok {
		cp := *u
		return &cp
	}
	return nil
}

func (s *memStore) unitCount(number int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key := range s.units {
		if key.number == number {
			n++
		}
	}
	return n
}

func (s *memStore) feedRequests() []*models.FeedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.FeedRequest(nil), s.requests...)
}

// incidentWith - короткий конструктор живого инцидента для тестов
func incidentWith(number int64, units ...string) models.LiveIncident {
	inc := models.LiveIncident{
		Number:       number,
		Category:     models.CategoryFire,
		Description:  "STRUCTURE FIRE",
		Intersection: "MAIN ST & KING ST",
		Municipality: "LANCASTER CITY",
		DispatchedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Agency:       "LANCASTER CITY FIRE",
	}
	for _, u := range units {
		inc.Units = append(inc.Units, models.LiveUnit{ShortName: u})
	}
	return inc
}
