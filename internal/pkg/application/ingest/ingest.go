package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/storage"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/shopspring/decimal"
)

var (
	ErrDeviceNotFound = fmt.Errorf("device not found")
	ErrInvalidReading = fmt.Errorf("invalid reading")
)

// IncomingReading is the wire form of a measurement, accepted both over
// HTTP and from the message broker. Devices identify themselves by
// serial number; the internal device ID never leaves the service.
type IncomingReading struct {
	SerialNumber  string          `json:"serialNumber"`
	Value         decimal.Decimal `json:"value"`
	SchemaVersion string          `json:"schemaVersion,omitempty"`
	Timestamp     time.Time       `json:"timestamp,omitempty"`
}

//go:generate moq -rm -out ingestservice_mock.go . IngestService
type IngestService interface {
	Accept(ctx context.Context, in IncomingReading) (types.Reading, error)
}

//go:generate moq -rm -out devicestorage_mock.go . DeviceStorage
type DeviceStorage interface {
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	GetDeviceType(ctx context.Context, deviceTypeID string) (types.DeviceType, error)
	AddReading(ctx context.Context, reading types.Reading) (types.Reading, error)
	UpdateLastSeen(ctx context.Context, deviceID string, seenAt time.Time) error
	SetDeviceStatus(ctx context.Context, deviceID, status string) error
}

//go:generate moq -rm -out evaluator_mock.go . Evaluator
type Evaluator interface {
	Evaluate(ctx context.Context, reading types.Reading) ([]types.Rule, error)
}

//go:generate moq -rm -out recorder_mock.go . Recorder
type Recorder interface {
	Record(ctx context.Context, rule types.Rule, device types.Device, deviceType types.DeviceType, reading types.Reading) (types.Event, error)
}

//go:generate moq -rm -out dispatcher_mock.go . Dispatcher
type Dispatcher interface {
	Dispatch(ctx context.Context, event types.Event) error
}

type svc struct {
	storage    DeviceStorage
	evaluator  Evaluator
	recorder   Recorder
	dispatcher Dispatcher
	messenger  messaging.MsgContext
}

func New(s DeviceStorage, e Evaluator, r Recorder, d Dispatcher, m messaging.MsgContext) IngestService {
	return &svc{
		storage:    s,
		evaluator:  e,
		recorder:   r,
		dispatcher: d,
		messenger:  m,
	}
}

// Accept stores a reading and runs it through the rule pipeline. The
// reading is durable before any rule is evaluated, and a failure while
// recording or dispatching one fired rule does not block the others.
func (s *svc) Accept(ctx context.Context, in IncomingReading) (types.Reading, error) {
	log := logging.GetFromContext(ctx)

	if in.SerialNumber == "" {
		return types.Reading{}, fmt.Errorf("%w: serial number is required", ErrInvalidReading)
	}

	device, err := s.storage.GetDevice(ctx, storage.WithSerialNumber(in.SerialNumber))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Reading{}, fmt.Errorf("%w: no device with serial number %s", ErrDeviceNotFound, in.SerialNumber)
		}
		return types.Reading{}, err
	}

	deviceType, err := s.storage.GetDeviceType(ctx, device.DeviceTypeID)
	if err != nil {
		return types.Reading{}, err
	}

	timestamp := in.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	reading, err := s.storage.AddReading(ctx, types.Reading{
		DeviceID:      device.ID,
		SchemaVersion: in.SchemaVersion,
		Value:         in.Value,
		Timestamp:     timestamp,
	})
	if err != nil {
		return types.Reading{}, err
	}

	err = s.storage.UpdateLastSeen(ctx, device.ID, timestamp)
	if err != nil {
		log.Error("could not update last seen", "device_id", device.ID, "err", err.Error())
	}

	// an evaluation error may still return rules that had already
	// claimed their cooldown, and those must be recorded
	fired, err := s.evaluator.Evaluate(ctx, reading)
	if err != nil {
		log.Error("rule evaluation failed", "device_id", device.ID, "err", err.Error())
	}

	for _, rule := range fired {
		event, err := s.recorder.Record(ctx, rule, device, deviceType, reading)
		if err != nil {
			log.Error("could not record event", "rule_id", rule.ID, "err", err.Error())
			continue
		}

		if event.Severity == types.SeverityCritical {
			s.flagDevice(ctx, device)
		}

		err = s.dispatcher.Dispatch(ctx, event)
		if err != nil {
			log.Error("dispatch failed", "event_id", event.ID, "err", err.Error())
		}
	}

	return reading, nil
}

func (s *svc) flagDevice(ctx context.Context, device types.Device) {
	log := logging.GetFromContext(ctx)

	err := s.storage.SetDeviceStatus(ctx, device.ID, types.DeviceStatusError)
	if err != nil {
		log.Error("could not flag device", "device_id", device.ID, "err", err.Error())
		return
	}

	err = s.messenger.PublishOnTopic(ctx, &types.DeviceStatusUpdated{
		DeviceID:  device.ID,
		Status:    types.DeviceStatusError,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.Error("could not publish device status", "device_id", device.ID, "err", err.Error())
	}
}
