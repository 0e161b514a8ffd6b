package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// unitSeparator - подразделения в ленте перечислены через <br> или запятую
var unitSeparator = regexp.MustCompile(`(?i)<br\s*/?>|,`)

// Client читает живые инциденты из ArcGIS FeatureServer
type Client struct {
	url        string
	parser     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(url, parser string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		url:    url,
		parser: parser,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Parser возвращает тег клиента, который пишется в инциденты и аудит
func (c *Client) Parser() string {
	return c.parser
}

// Fetch запрашивает текущий снимок ленты. Любая ошибка означает, что снимка нет.
func (c *Client) Fetch(ctx context.Context) ([]models.LiveIncident, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed error: status %d: %s", resp.StatusCode, body)
	}

	var payload queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	// ArcGIS отдает ошибки запроса со статусом 200
	if payload.Error != nil {
		return nil, fmt.Errorf("feed error: code %d: %s", payload.Error.Code, payload.Error.Message)
	}

	incidents := make([]models.LiveIncident, 0, len(payload.Features))
	for _, f := range payload.Features {
		incident, ok := f.toLiveIncident()
		if !ok {
			c.logger.WithFields(logrus.Fields{
				"service": "feed",
				"parser":  c.parser,
			}).Warn("Skipping feature without incident number")
			continue
		}
		incidents = append(incidents, incident)
	}
	return incidents, nil
}

// ArcGIS query response types.

type queryResponse struct {
	Features []feature  `json:"features"`
	Error    *featError `json:"error,omitempty"`
}

type featError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type feature struct {
	Attributes attributes `json:"attributes"`
	Geometry   *geometry  `json:"geometry,omitempty"`
}

type attributes struct {
	IncidentNumber int64   `json:"IncidentNumber"`
	CallType       string  `json:"CallType"`
	Description    string  `json:"Description"`
	Intersection   *string `json:"Intersection"`
	Municipality   string  `json:"Municipality"`
	DispatchTime   int64   `json:"DispatchTime"` // epoch ms
	Priority       *int    `json:"Priority"`
	Agency         string  `json:"Agency"`
	Units          *string `json:"UnitsAssigned"`
}

type geometry struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (f feature) toLiveIncident() (models.LiveIncident, bool) {
	a := f.Attributes
	if a.IncidentNumber == 0 {
		return models.LiveIncident{}, false
	}

	incident := models.LiveIncident{
		Number:       a.IncidentNumber,
		Category:     models.ParseCategory(a.CallType),
		Description:  strings.TrimSpace(a.Description),
		Municipality: strings.TrimSpace(a.Municipality),
		DispatchedAt: time.UnixMilli(a.DispatchTime).UTC(),
		Priority:     a.Priority,
		Agency:       strings.TrimSpace(a.Agency),
	}
	if a.Intersection != nil {
		incident.Intersection = strings.TrimSpace(*a.Intersection)
	}
	if a.Units != nil {
		incident.Units = parseUnits(*a.Units)
	}
	if f.Geometry != nil && f.Geometry.X != nil && f.Geometry.Y != nil {
		incident.Coordinates = &models.Coordinates{
			Latitude:  *f.Geometry.Y,
			Longitude: *f.Geometry.X,
		}
	}
	return incident, true
}

func parseUnits(raw string) []models.LiveUnit {
	var units []models.LiveUnit
	for _, part := range unitSeparator.Split(raw, -1) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		units = append(units, models.LiveUnit{ShortName: name})
	}
	return units
}
