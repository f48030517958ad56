package audit

import (
	"net/http"
	"pms/infras/otel"
	"pms/internal/domains/audit/model"
	"pms/internal/domains/audit/model/dto"
	"pms/internal/domains/audit/service"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Sink
	otel    otel.Otel
}

func New(service service.Sink, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/audit-logs", handler.GetAuditLogs)
}

// GetAuditLogs lists recorded lifecycle events.
// @Summary Get audit logs
// @Tags Audit
// @Produce json
// @Param event_id query string false "Filter by the audited record"
// @Param table_name query string false "Filter by table"
// @Param event_type query string false "Filter by event type"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetAuditLogsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/audit-logs [get]
// @Security BearerAuth
func (handler *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldEventID, model.FieldTableName, model.FieldEventType} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if propertyID, _ := ctx.Value(constant.ContextKeyPropertyID).(string); propertyID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Operator: gDto.FilterOperatorEq,
			Value:    propertyID,
			Table:    model.TableName,
		})
	}

	var logs dto.GetAuditLogsResponse

	logs, err := handler.service.List(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}
