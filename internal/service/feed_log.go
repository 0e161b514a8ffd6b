package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// FeedRequestLogger пишет по одной записи аудита на каждый опрос ленты
type FeedRequestLogger struct {
	repo   FeedRequestRepository
	logger *logrus.Logger
}

func NewFeedRequestLogger(repo FeedRequestRepository, logger *logrus.Logger) *FeedRequestLogger {
	return &FeedRequestLogger{
		repo:   repo,
		logger: logger,
	}
}

// Record сохраняет запись. Сбой аудита только логируется: цикл из-за него не прерывается.
func (l *FeedRequestLogger) Record(ctx context.Context, req *models.FeedRequest) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if err := l.repo.Create(ctx, req); err != nil {
		l.logger.WithFields(logrus.Fields{
			"service": "feed_log",
			"method":  "Record",
			"success": req.Success,
		}).WithError(err).Warn("Failed to record feed request")
	}
}

// Recent возвращает последние записи аудита, новые первыми
func (l *FeedRequestLogger) Recent(ctx context.Context, limit int) ([]*models.FeedRequest, error) {
	reqs, err := l.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list feed requests: %w", err)
	}
	return reqs, nil
}
