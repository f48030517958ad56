package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"pms/config"
	"pms/infras/kafka"
	"pms/infras/otel"
	"pms/internal/domains/audit/model"
	"pms/internal/domains/audit/model/dto"
	"pms/internal/domains/audit/repository"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"
	"pms/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Sink records lifecycle events. Record never fails the caller: errors are
// logged and dropped.
type Sink interface {
	Record(ctx context.Context, event model.Event)
	List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
}

type serviceImpl struct {
	repo  repository.AuditLog
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.AuditLog, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Sink {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, event model.Event) {
	if !s.cfg.Booking.AuditEnable {
		return
	}

	var err error

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".audit.Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if event.OccurredOn.IsZero() {
		event.OccurredOn = timezone.Now()
	}

	details := []byte("{}")
	if event.Details != nil {
		if details, err = json.Marshal(event.Details); err != nil {
			log.Error().Err(err).Str("event_id", event.EventID).Msg("failed to marshal audit details")

			details = []byte("{}")
		}
	}

	auditLog := model.AuditLog{
		ID:         uuid.NewString(),
		PropertyID: event.PropertyID,
		EventID:    event.EventID,
		TableName:  event.TableName,
		EventType:  event.EventType,
		Details:    string(details),
		Actor:      event.Actor,
		Metadata: gModel.Metadata{
			CreatedOn: event.OccurredOn,
			CreatedBy: event.Actor,
			UpdatedOn: event.OccurredOn,
			UpdatedBy: event.Actor,
		},
	}

	if err = s.repo.Insert(ctx, auditLog); err != nil {
		log.Error().Err(err).Str("event_id", event.EventID).Str("event_type", event.EventType).Msg("failed to write audit log")
	}

	if !s.cfg.Kafka.Enable {
		return
	}

	if err = s.kafka.SendMessages(ctx, s.cfg.Kafka.AuditTopic, kafka.Message{Key: event.EventID, Value: event}); err != nil {
		log.Error().Err(err).Str("event_id", event.EventID).Str("event_type", event.EventType).Msg("failed to publish audit event")
	}
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".audit.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(model.FieldCreatedOn, model.FieldEventType)

	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldCreatedOn
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	logs, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(logs, total, params.Limit)

	return res, nil
}
