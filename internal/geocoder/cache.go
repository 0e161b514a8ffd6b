package geocoder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/shenikar/dispatch_feed_sync/internal/observability"
	"github.com/shenikar/dispatch_feed_sync/internal/service"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "geocode:"

// CachedGeocoder оборачивает геокодер кэшем в Redis.
// Недоступность Redis не мешает геокодированию: запрос уходит во внутренний геокодер.
type CachedGeocoder struct {
	inner       service.Geocoder
	redisClient *redis.Client
	ttl         time.Duration
	metrics     *observability.Metrics
	logger      *logrus.Logger
}

func NewCachedGeocoder(inner service.Geocoder, redisClient *redis.Client, ttl time.Duration, metrics *observability.Metrics, logger *logrus.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		inner:       inner,
		redisClient: redisClient,
		ttl:         ttl,
		metrics:     metrics,
		logger:      logger,
	}
}

func (c *CachedGeocoder) Resolve(ctx context.Context, address string) (*models.Coordinates, error) {
	key := cacheKey(address)
	log := c.logger.WithFields(logrus.Fields{
		"service": "geocoder",
		"address": address,
	})

	val, err := c.redisClient.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var coords models.Coordinates
		if err := json.Unmarshal(val, &coords); err == nil {
			c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
			return &coords, nil
		}
		log.Warn("Corrupted geocode cache entry, ignoring")
		c.metrics.GeocodeCache.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		c.metrics.GeocodeCache.WithLabelValues("miss").Inc()
	default:
		log.WithError(err).Warn("Failed to read geocode cache")
		c.metrics.GeocodeCache.WithLabelValues("error").Inc()
	}

	coords, err := c.inner.Resolve(ctx, address)
	if err != nil {
		return nil, err
	}
	// Пустой результат не кэшируем: адрес может найтись позже
	if coords == nil {
		return nil, nil
	}

	payload, err := json.Marshal(coords)
	if err != nil {
		return coords, nil
	}
	if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("Failed to write geocode cache")
	}
	return coords, nil
}

// cacheKey нормализует адрес и хэширует его
func cacheKey(address string) string {
	normalized := strings.ToUpper(strings.Join(strings.Fields(address), " "))
	sum := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
