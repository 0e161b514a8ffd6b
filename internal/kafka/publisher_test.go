package kafka

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shenikar/dispatch_feed_sync/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written []kafkago.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(w messageWriter) *Publisher {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return &Publisher{writer: w, logger: logger}
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := models.ChangeEvent{
		Type:           models.EventUnitAssigned,
		IncidentNumber: 240012345,
		UnitShortName:  "ENGINE 1-1",
		OccurredAt:     now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("240012345"), msg.Key)
	assert.Contains(t, string(msg.Value), `"unit_short_name":"ENGINE 1-1"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("unit.assigned"), msg.Headers[0].Value)
	assert.Equal(t, "occurred_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newTestPublisher(w)

	events := []models.ChangeEvent{
		{Type: models.EventIncidentNew, IncidentNumber: 1},
		{Type: models.EventIncidentResolved, IncidentNumber: 2},
	}
	require.NoError(t, p.Publish(context.Background(), events))
	require.NoError(t, p.Publish(context.Background(), nil))

	require.Len(t, w.written, 2)
	assert.Equal(t, []byte("1"), w.written[0].Key)
	assert.Equal(t, []byte("2"), w.written[1].Key)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	brokerErr := errors.New("leader not available")
	p := newTestPublisher(&fakeWriter{err: brokerErr})

	err := p.Publish(context.Background(), []models.ChangeEvent{{Type: models.EventIncidentNew, IncidentNumber: 1}})
	assert.ErrorIs(t, err, brokerErr)
}
