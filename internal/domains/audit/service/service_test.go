package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pms/config"
	"pms/infras/kafka"
	kafkaMocks "pms/infras/kafka/mocks"
	"pms/infras/otel/mocks"
	auditMocks "pms/internal/domains/audit/mocks"
	"pms/internal/domains/audit/model"
	"pms/internal/domains/audit/service"
	gDto "pms/shared/dto"
)

func newSink(t *testing.T, auditEnable, kafkaEnable bool) (service.Sink, *auditMocks.MockAuditLog, *kafkaMocks.MockClient) {
	ctrl := gomock.NewController(t)

	mockRepo := auditMocks.NewMockAuditLog(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Booking.AuditEnable = auditEnable
	cfg.Kafka.Enable = kafkaEnable
	cfg.Kafka.AuditTopic = "pms.audit"

	return service.New(mockRepo, mockKafka, cfg, mocks.NewOtel()), mockRepo, mockKafka
}

func bookingEvent() model.Event {
	return model.Event{
		PropertyID: "p-1",
		EventID:    "b-1",
		TableName:  "bookings",
		EventType:  model.EventStatusChange,
		Details:    map[string]string{"from": "CONFIRMED", "to": "CHECKED_IN"},
		Actor:      "front-desk",
	}
}

func TestSink_Record(t *testing.T) {
	t.Run("writes row and publishes", func(t *testing.T) {
		sink, mockRepo, mockKafka := newSink(t, true, true)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log model.AuditLog) error {
			assert.Equal(t, "b-1", log.EventID)
			assert.Equal(t, "front-desk", log.Actor)
			assert.False(t, log.CreatedOn.IsZero())
			assert.JSONEq(t, `{"from":"CONFIRMED","to":"CHECKED_IN"}`, log.Details)

			return nil
		})
		mockKafka.EXPECT().SendMessages(gomock.Any(), "pms.audit", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, messages ...kafka.Message) error {
				require.Len(t, messages, 1)
				assert.Equal(t, "b-1", messages[0].Key)

				return nil
			})

		sink.Record(context.Background(), bookingEvent())
	})

	t.Run("database failure still publishes", func(t *testing.T) {
		sink, mockRepo, mockKafka := newSink(t, true, true)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
		mockKafka.EXPECT().SendMessages(gomock.Any(), "pms.audit", gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() { sink.Record(context.Background(), bookingEvent()) })
	})

	t.Run("kafka disabled", func(t *testing.T) {
		sink, mockRepo, _ := newSink(t, true, false)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		sink.Record(context.Background(), bookingEvent())
	})

	t.Run("audit disabled", func(t *testing.T) {
		sink, _, _ := newSink(t, false, true)

		sink.Record(context.Background(), bookingEvent())
	})

	t.Run("unmarshalable details fall back to empty object", func(t *testing.T) {
		sink, mockRepo, _ := newSink(t, true, false)

		event := bookingEvent()
		event.Details = map[string]any{"bad": make(chan int)}

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log model.AuditLog) error {
			assert.Equal(t, "{}", log.Details)

			return nil
		})

		sink.Record(context.Background(), event)
	})
}

func TestSink_List(t *testing.T) {
	sink, mockRepo, _ := newSink(t, true, false)

	filter := gDto.FilterGroup{}
	details, _ := json.Marshal(map[string]string{"to": "CANCELLED"})

	mockRepo.EXPECT().Count(gomock.Any(), filter).Return(1, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), filter).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.AuditLog, error) {
			assert.Equal(t, model.FieldCreatedOn, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.AuditLog{{ID: "a-1", EventID: "b-1", EventType: model.EventCancelled, Details: string(details)}}, nil
		})

	res, err := sink.List(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)
	require.NoError(t, err)
	require.Len(t, res.AuditLogs, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.JSONEq(t, `{"to":"CANCELLED"}`, string(res.AuditLogs[0].Details))
}

func TestSink_List_Error(t *testing.T) {
	sink, mockRepo, _ := newSink(t, true, false)

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))

	_, err := sink.List(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
	assert.Error(t, err)
}
