package events

import (
	"context"
	"testing"
	"time"

	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

func TestRecordCapturesSnapshot(t *testing.T) {
	is := is.New(t)

	var stored types.Event

	s := &EventStorageMock{
		AddEventFunc: func(ctx context.Context, event types.Event) (types.Event, error) {
			stored = event
			stored.ID = 42
			return stored, nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}

	svc := New(s, m)

	event, err := svc.Record(context.Background(), vibrationRule(), testDevice(), vibrationSensor(), testReading(9.2))
	is.NoErr(err)

	is.Equal(event.ID, int64(42))
	is.Equal(event.Status, types.EventStatusNew)
	is.Equal(event.Snapshot.SerialNumber, "SN-0001")
	is.Equal(event.Snapshot.Metric, types.MetricVibration)
	is.True(event.Snapshot.Value.Equal(decimal.NewFromFloat(9.2)))
}

func TestRecordPlansOneResultPerAction(t *testing.T) {
	is := is.New(t)

	s := &EventStorageMock{
		AddEventFunc: func(ctx context.Context, event types.Event) (types.Event, error) {
			event.ID = 1
			return event, nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}

	rule := vibrationRule()
	rule.Actions = types.Actions{
		types.NotificationAction{TemplateID: 5},
		types.StopMachineAction{MachineID: "press-7"},
	}

	svc := New(s, m)

	event, err := svc.Record(context.Background(), rule, testDevice(), vibrationSensor(), testReading(9.2))
	is.NoErr(err)

	is.Equal(len(event.ExecutionResults), 2)
	is.Equal(event.ExecutionResults[0].Type, types.ActionTypeNotification)
	is.Equal(event.ExecutionResults[0].TemplateID, int64(5))
	is.Equal(event.ExecutionResults[0].Status, types.ResultStatusPending)
	is.Equal(event.ExecutionResults[1].Type, types.ActionTypeStopMachine)
	is.Equal(event.ExecutionResults[1].MachineID, "press-7")
}

func TestRecordPublishesEventCreated(t *testing.T) {
	is := is.New(t)

	s := &EventStorageMock{
		AddEventFunc: func(ctx context.Context, event types.Event) (types.Event, error) {
			event.ID = 7
			return event, nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}

	svc := New(s, m)

	_, err := svc.Record(context.Background(), vibrationRule(), testDevice(), vibrationSensor(), testReading(9.2))
	is.NoErr(err)

	is.Equal(len(m.PublishOnTopicCalls()), 1)
	is.Equal(m.PublishOnTopicCalls()[0].Message.TopicName(), "event.created")
}

func TestRecordSeverity(t *testing.T) {
	is := is.New(t)

	s := &EventStorageMock{
		AddEventFunc: func(ctx context.Context, event types.Event) (types.Event, error) { return event, nil },
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}
	svc := New(s, m)

	// the sensor reports 0..10 mm/s, a value inside the range is a warning
	event, err := svc.Record(context.Background(), vibrationRule(), testDevice(), vibrationSensor(), testReading(9.2))
	is.NoErr(err)
	is.Equal(event.Severity, types.SeverityWarning)

	// a value the sensor should never report is critical
	event, err = svc.Record(context.Background(), vibrationRule(), testDevice(), vibrationSensor(), testReading(11.0))
	is.NoErr(err)
	is.Equal(event.Severity, types.SeverityCritical)
}

func TestFinalizeWaitsForUndecidedTally(t *testing.T) {
	is := is.New(t)

	s := &EventStorageMock{}
	m := &messaging.MsgContextMock{}

	svc := New(s, m)

	err := svc.FinalizeNotificationAction(context.Background(), 1, 5, types.DeliveryTally{Sent: 1, Dead: 0, Total: 3})
	is.NoErr(err)
	is.Equal(len(s.GetEventCalls()), 0)
}

func TestFinalizeCompletesWhenAllSent(t *testing.T) {
	is := is.New(t)

	s := finalizeStorage(types.ExecutionResult{
		Type:       types.ActionTypeNotification,
		TemplateID: 5,
		Status:     types.ResultStatusPending,
	})

	svc := New(s, &messaging.MsgContextMock{})

	err := svc.FinalizeNotificationAction(context.Background(), 1, 5, types.DeliveryTally{Sent: 3, Dead: 0, Total: 3})
	is.NoErr(err)

	is.Equal(len(s.SetExecutionResultCalls()), 1)
	result := s.SetExecutionResultCalls()[0].Result
	is.Equal(result.Status, types.ResultStatusCompleted)
	is.Equal(result.SentCount, 3)
	is.Equal(result.FailedCount, 0)
	is.True(!result.CompletedAt.IsZero())
}

func TestFinalizeFailsWhenDeliveriesDied(t *testing.T) {
	is := is.New(t)

	s := finalizeStorage(types.ExecutionResult{
		Type:       types.ActionTypeNotification,
		TemplateID: 5,
		Status:     types.ResultStatusPending,
	})

	svc := New(s, &messaging.MsgContextMock{})

	err := svc.FinalizeNotificationAction(context.Background(), 1, 5, types.DeliveryTally{Sent: 2, Dead: 1, Total: 3})
	is.NoErr(err)

	result := s.SetExecutionResultCalls()[0].Result
	is.Equal(result.Status, types.ResultStatusFailed)
	is.Equal(result.Error, "1 of 3 deliveries failed terminally")
}

func TestFinalizeIsIdempotent(t *testing.T) {
	is := is.New(t)

	s := finalizeStorage(types.ExecutionResult{
		Type:        types.ActionTypeNotification,
		TemplateID:  5,
		Status:      types.ResultStatusCompleted,
		SentCount:   3,
		CompletedAt: time.Now().UTC(),
	})

	svc := New(s, &messaging.MsgContextMock{})

	err := svc.FinalizeNotificationAction(context.Background(), 1, 5, types.DeliveryTally{Sent: 3, Dead: 0, Total: 3})
	is.NoErr(err)
	is.Equal(len(s.SetExecutionResultCalls()), 0)
}

func vibrationRule() types.Rule {
	return types.Rule{
		ID:        "rule-01",
		DeviceID:  "device-01",
		Name:      "excessive vibration",
		Operator:  types.OperatorGreaterThan,
		Threshold: decimal.NewFromFloat(8.5),
		Actions:   types.Actions{types.NotificationAction{TemplateID: 5}},
		Enabled:   true,
	}
}

func testDevice() types.Device {
	return types.Device{
		ID:           "device-01",
		DeviceTypeID: "type-01",
		Name:         "press 7 spindle",
		SerialNumber: "SN-0001",
		Status:       types.DeviceStatusActive,
	}
}

func vibrationSensor() types.DeviceType {
	return types.DeviceType{
		ID:        "type-01",
		Name:      "vibration sensor",
		Metric:    types.MetricVibration,
		Unit:      "mm/s",
		MetricMin: decimal.NewFromInt(0),
		MetricMax: decimal.NewFromInt(10),
	}
}

func testReading(value float64) types.Reading {
	return types.Reading{
		ID:        1,
		DeviceID:  "device-01",
		Value:     decimal.NewFromFloat(value),
		Timestamp: time.Now().UTC(),
	}
}

func finalizeStorage(results ...types.ExecutionResult) *EventStorageMock {
	return &EventStorageMock{
		GetEventFunc: func(ctx context.Context, eventID int64) (types.Event, error) {
			return types.Event{
				ID:               eventID,
				RuleID:           "rule-01",
				Status:           types.EventStatusNew,
				ExecutionResults: results,
			}, nil
		},
		SetExecutionResultFunc: func(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error {
			return nil
		},
	}
}
