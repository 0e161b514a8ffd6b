package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/dispatch_feed_sync/internal/config"
	"github.com/shenikar/dispatch_feed_sync/internal/service"
	"github.com/sirupsen/logrus"
)

const defaultRequestsLimit = 50

type Handler struct {
	feedService service.FeedService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(feedService service.FeedService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		feedService: feedService,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Get readiness status
// @Description Ready after the first successful feed cycle
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Ready"
// @Failure 503 {object} map[string]string "Not ready"
// @Router /system/ready [get]
func (h *Handler) readinessCheck(c *gin.Context) {
	if err := h.feedService.CheckReadiness(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// @Summary Get feed scheduler status
// @Description Last attempt, last successful update, cached snapshot size and last cycle summary
// @Tags Feed
// @Produce json
// @Success 200 {object} FeedStatusResponse
// @Router /feed/status [get]
func (h *Handler) getFeedStatus(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToFeedStatusResponse(h.feedService.Status()))
}

// @Summary List recent feed requests
// @Description Recent feed poll audit records, newest first. Requires API key.
// @Tags Feed
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Number of records" default(50)
// @Success 200 {array} FeedRequestResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feed/requests [get]
func (h *Handler) listFeedRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listFeedRequests")

	var query RecentRequestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultRequestsLimit
	}

	requests, err := h.feedService.RecentRequests(c.Request.Context(), query.Limit)
	if err != nil {
		log.WithError(err).Error("Failed to list feed requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToFeedRequestResponses(requests))
}

// @Summary Run a staleness resolver pass
// @Description Resolves incidents and removes units not seen within the threshold. Requires API key.
// @Tags Feed
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ResolveStaleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Pass already in progress"
// @Failure 503 {object} map[string]string "Resolver disabled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feed/resolve-stale [post]
func (h *Handler) resolveStale(c *gin.Context) {
	log := h.logger.WithField("method", "resolveStale")

	res, err := h.feedService.ResolveStale(c.Request.Context())
	switch {
	case errors.Is(err, service.ErrPassInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "resolver pass already in progress"})
		return
	case errors.Is(err, service.ErrResolverDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "resolver is disabled"})
		return
	case err != nil:
		log.WithError(err).Error("Failed to resolve stale records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	log.WithFields(logrus.Fields{
		"incidents": res.Incidents,
		"units":     res.Units,
	}).Info("Manual stale pass completed")
	c.JSON(http.StatusOK, ResolveStaleResponse{Incidents: res.Incidents, Units: res.Units})
}
