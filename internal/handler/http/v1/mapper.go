package v1

import "github.com/shenikar/dispatch_feed_sync/internal/models"

// ModelToFeedStatusResponse преобразует состояние планировщика в DTO для ответа
func ModelToFeedStatusResponse(status models.FeedStatus) *FeedStatusResponse {
	resp := &FeedStatusResponse{
		LastAttempt:     status.LastAttempt,
		LastSuccess:     status.LastSuccess,
		CachedIncidents: status.CachedIncidents,
	}
	if c := status.LastCycle; c != nil {
		resp.LastCycle = &CycleSummaryResponse{
			StartedAt:        c.StartedAt,
			DurationSeconds:  c.Duration.Seconds(),
			Success:          c.Success,
			Live:             c.LiveCount,
			New:              c.NewCount,
			Known:            c.KnownCount,
			Resolved:         c.ResolvedCount,
			Geocoded:         c.Geocoded,
			FailedIncidents:  c.Incidents.Failed,
			FailedUnits:      c.Assigned.Failed + c.Persisted.Failed + c.Unassigned.Failed,
			SkippedUnits:     c.Assigned.Skipped + c.Persisted.Skipped + c.Unassigned.Skipped,
			UnitsAssigned:    c.Assigned.Affected,
			UnitsUnassigned:  c.Unassigned.Affected,
			IncidentsUpdated: c.Incidents.Upserted,
		}
	}
	return resp
}

// ModelToFeedRequestResponse преобразует запись аудита в DTO для ответа
func ModelToFeedRequestResponse(model *models.FeedRequest) *FeedRequestResponse {
	return &FeedRequestResponse{
		ID:               model.ID,
		RequestedAt:      model.RequestedAt,
		ExecutionSeconds: model.ExecutionTime.Seconds(),
		Success:          model.Success,
		Parser:           model.Parser,
		Incidents:        model.Incidents,
		Message:          model.Message,
	}
}

// ModelsToFeedRequestResponses преобразует слайс записей в слайс DTO
func ModelsToFeedRequestResponses(models []*models.FeedRequest) []*FeedRequestResponse {
	responses := make([]*FeedRequestResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToFeedRequestResponse(model)
	}
	return responses
}
