package service

import (
	"context"

	"github.com/shenikar/dispatch_feed_sync/internal/models"
)

type feedService struct {
	updater  *Updater
	audit    *FeedRequestLogger
	resolver *StalenessResolver
}

// NewFeedService собирает операционный фасад. resolver может быть nil,
// если автоматическое разрешение выключено.
func NewFeedService(updater *Updater, audit *FeedRequestLogger, resolver *StalenessResolver) FeedService {
	return &feedService{
		updater:  updater,
		audit:    audit,
		resolver: resolver,
	}
}

func (s *feedService) Status() models.FeedStatus {
	return s.updater.Status()
}

func (s *feedService) CheckReadiness(ctx context.Context) error {
	return s.updater.CheckReadiness(ctx)
}

func (s *feedService) RecentRequests(ctx context.Context, limit int) ([]*models.FeedRequest, error) {
	return s.audit.Recent(ctx, limit)
}

func (s *feedService) ResolveStale(ctx context.Context) (models.ResolveResult, error) {
	if s.resolver == nil {
		return models.ResolveResult{}, ErrResolverDisabled
	}
	return s.resolver.Resolve(ctx)
}
