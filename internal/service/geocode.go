package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// BuildAddress собирает адрес для геокодера. Без перекрестка адрес не строится:
// по одному муниципалитету точку не найти.
func BuildAddress(incident models.LiveIncident, suffix string) (string, bool) {
	intersection := strings.TrimSpace(incident.Intersection)
	if intersection == "" {
		return "", false
	}
	parts := []string{intersection}
	if m := strings.TrimSpace(incident.Municipality); m != "" {
		parts = append(parts, m)
	}
	if s := strings.TrimSpace(suffix); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), true
}

// geocodeNew дополняет координатами только новые инциденты, у которых их нет.
// Возвращает координаты по номеру инцидента.
func (u *Updater) geocodeNew(ctx context.Context, incidents []models.LiveIncident) map[int64]models.Coordinates {
	found := make(map[int64]models.Coordinates)
	if u.geocoder == nil {
		return found
	}

	for _, incident := range incidents {
		if incident.Coordinates != nil {
			continue
		}
		address, ok := BuildAddress(incident, u.addressSuffix)
		if !ok {
			u.metrics.GeocodeRequests.WithLabelValues("skipped").Inc()
			continue
		}

		coords, err := u.geocoder.Resolve(ctx, address)
		switch {
		case err != nil:
			u.logger.WithFields(logrus.Fields{
				"service":  "updater",
				"incident": incident.Number,
				"address":  address,
			}).WithError(err).Warn("Geocoding failed, leaving coordinates unset")
			u.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		case coords == nil:
			u.metrics.GeocodeRequests.WithLabelValues("unavailable").Inc()
		default:
			found[incident.Number] = *coords
			u.metrics.GeocodeRequests.WithLabelValues("success").Inc()
		}
	}
	return found
}

// applyCoordinates проставляет найденные координаты в срез инцидентов
func applyCoordinates(incidents []models.LiveIncident, coords map[int64]models.Coordinates) {
	for i := range incidents {
		if c, ok := coords[incidents[i].Number]; ok {
			incidents[i].Coordinates = &c
		}
	}
}

func describeIncident(incident models.LiveIncident) string {
	return fmt.Sprintf("%d - %s - %s - %s - %s - %v",
		incident.Number,
		incident.Description,
		incident.Intersection,
		incident.Municipality,
		incident.DispatchedAt.Format("2006-01-02 15:04:05"),
		incident.UnitShortNames(),
	)
}
