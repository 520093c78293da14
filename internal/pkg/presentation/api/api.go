package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/events"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/ingest"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/notifications"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/rules"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("machine-rule-engine/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, ingestSvc ingest.IngestService, ruleSvc rules.RuleService, eventSvc events.EventService, dispatcher notifications.Dispatcher) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Post("/telemetry", postTelemetryHandler(log, ingestSvc))

		r.Route("/rules", func(r chi.Router) {
			r.Get("/", queryRulesHandler(log, ruleSvc))
			r.Post("/", createRuleHandler(log, ruleSvc))
			r.Get("/{ruleID}", getRuleHandler(log, ruleSvc))
			r.Patch("/{ruleID}", patchRuleHandler(log, ruleSvc))
			r.Delete("/{ruleID}", deleteRuleHandler(log, ruleSvc))
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", queryEventsHandler(log, eventSvc))
			r.Get("/{eventID}", getEventHandler(log, eventSvc))
			r.Patch("/{eventID}", patchEventHandler(log, eventSvc))
		})

		r.Get("/deliveries", queryDeliveriesHandler(log, dispatcher))
	})

	return router, nil
}

type meta struct {
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}

func writeCollection[T any](w http.ResponseWriter, c types.Collection[T]) error {
	b, err := json.Marshal(struct {
		Data []T  `json:"data"`
		Meta meta `json:"meta"`
	}{
		Data: c.Data,
		Meta: meta{Count: c.Count, Offset: c.Offset, Limit: c.Limit, TotalCount: c.TotalCount},
	})
	if err != nil {
		return err
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)

	return nil
}

func offsetLimit(r *http.Request) (int, int) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return offset, limit
}

func postTelemetryHandler(log *slog.Logger, svc ingest.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "post-telemetry")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var in ingest.IncomingReading
		err = json.Unmarshal(body, &in)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		reading, err := svc.Accept(ctx, in)
		if errors.Is(err, ingest.ErrDeviceNotFound) {
			requestLogger.Debug("device not found", "serial_number", in.SerialNumber)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, ingest.ErrInvalidReading) {
			requestLogger.Debug("invalid reading", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err != nil {
			requestLogger.Error("could not process reading", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(reading)
		if err != nil {
			requestLogger.Error("unable to marshal reading", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func createRuleHandler(log *slog.Logger, svc rules.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var rule types.Rule
		err = json.Unmarshal(body, &rule)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.Create(ctx, rule)
		if err != nil {
			requestLogger.Error("unable to create rule", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		b, err := json.Marshal(created)
		if err != nil {
			requestLogger.Error("unable to marshal rule", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func queryRulesHandler(log *slog.Logger, svc rules.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-rules")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := offsetLimit(r)

		collection, err := svc.Query(ctx, r.URL.Query().Get("deviceID"), offset, limit)
		if err != nil {
			requestLogger.Error("unable to fetch rules", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = writeCollection(w, collection)
		if err != nil {
			requestLogger.Error("unable to marshal rules", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func getRuleHandler(log *slog.Logger, svc rules.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		ruleID := chi.URLParam(r, "ruleID")
		if ruleID != "" {
			requestLogger = requestLogger.With(slog.String("rule_id", ruleID))
		}

		rule, err := svc.GetByID(ctx, ruleID)
		if errors.Is(err, rules.ErrRuleNotFound) {
			requestLogger.Debug("rule not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch rule", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(rule)
		if err != nil {
			requestLogger.Error("unable to marshal rule", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func patchRuleHandler(log *slog.Logger, svc rules.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		ruleID := chi.URLParam(r, "ruleID")
		if ruleID != "" {
			requestLogger = requestLogger.With(slog.String("rule_id", ruleID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var patch struct {
			Enabled *bool `json:"enabled"`
		}
		err = json.Unmarshal(body, &patch)
		if err != nil || patch.Enabled == nil {
			requestLogger.Error("patch must set enabled")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.SetEnabled(ctx, ruleID, *patch.Enabled)
		if errors.Is(err, rules.ErrRuleNotFound) {
			requestLogger.Debug("rule not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update rule", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteRuleHandler(log *slog.Logger, svc rules.RuleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		ruleID := chi.URLParam(r, "ruleID")
		if ruleID != "" {
			requestLogger = requestLogger.With(slog.String("rule_id", ruleID))
		}

		err = svc.Delete(ctx, ruleID)
		if errors.Is(err, rules.ErrRuleNotFound) {
			requestLogger.Debug("rule not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to delete rule", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryEventsHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-events")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := offsetLimit(r)
		q := r.URL.Query()

		collection, err := svc.Query(ctx, q.Get("ruleID"), q.Get("status"), q.Get("severity"), offset, limit)
		if err != nil {
			requestLogger.Error("unable to fetch events", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = writeCollection(w, collection)
		if err != nil {
			requestLogger.Error("unable to marshal events", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func getEventHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		event, err := svc.GetByID(ctx, eventID)
		if errors.Is(err, events.ErrEventNotFound) {
			requestLogger.Debug("event not found", "event_id", eventID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch event", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(event)
		if err != nil {
			requestLogger.Error("unable to marshal event", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func patchEventHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var patch struct {
			Status string `json:"status"`
		}
		err = json.Unmarshal(body, &patch)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch patch.Status {
		case types.EventStatusAcknowledged:
			err = svc.Acknowledge(ctx, eventID)
		case types.EventStatusResolved:
			err = svc.Resolve(ctx, eventID)
		default:
			requestLogger.Error("status is invalid", "status", patch.Status)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if errors.Is(err, events.ErrEventNotFound) {
			requestLogger.Debug("event not found", "event_id", eventID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update event", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	}
}

func queryDeliveriesHandler(log *slog.Logger, dispatcher notifications.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-deliveries")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := offsetLimit(r)
		q := r.URL.Query()

		var eventID int64
		if q.Get("eventID") != "" {
			eventID, err = strconv.ParseInt(q.Get("eventID"), 10, 64)
			if err != nil {
				requestLogger.Error("eventID is invalid", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		collection, err := dispatcher.Deliveries(ctx, eventID, q.Get("status"), offset, limit)
		if err != nil {
			requestLogger.Error("unable to fetch deliveries", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		err = writeCollection(w, collection)
		if err != nil {
			requestLogger.Error("unable to marshal deliveries", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
