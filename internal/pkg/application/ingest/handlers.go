package ingest

import (
	"context"
	"encoding/json"
	"errors"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("machine-rule-engine/ingest")

func RegisterTopicMessageHandlers(messenger messaging.MsgContext, svc IngestService) error {
	return messenger.RegisterTopicMessageHandler("telemetry.reading", NewTelemetryReadingHandler(svc))
}

func NewTelemetryReadingHandler(svc IngestService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "telemetry-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		in := IncomingReading{}

		err = json.Unmarshal(itm.Body(), &in)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		_, err = svc.Accept(ctx, in)
		if err != nil {
			if errors.Is(err, ErrDeviceNotFound) || errors.Is(err, ErrInvalidReading) {
				log.Warn("discarding reading", "serial_number", in.SerialNumber, "err", err.Error())
				err = nil
				return
			}
			log.Error("could not process reading", "serial_number", in.SerialNumber, "err", err.Error())
			return
		}
	}
}
