package notifications

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/storage"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

func TestDispatchFansOutToAllRecipients(t *testing.T) {
	is := is.New(t)

	s, sent := deliveryStorage(twoRecipientTemplate())
	e := &EventUpdaterMock{
		FinalizeNotificationActionFunc: func(ctx context.Context, eventID, templateID int64, tally types.DeliveryTally) error {
			return nil
		},
	}

	sender := &SenderMock{
		SendFunc: func(ctx context.Context, address, message string) error { return nil },
	}

	d := New(s, e, map[string]Sender{types.ChannelEmail: sender, types.ChannelSMS: sender}, &messaging.MsgContextMock{}, Config{})

	err := d.Dispatch(context.Background(), notificationEvent())
	is.NoErr(err)

	is.Equal(len(sender.SendCalls()), 2)
	is.Equal(len(*sent), 2)
	is.Equal(len(e.FinalizeNotificationActionCalls()), 1)
}

func TestDispatchMissingTemplateFailsResult(t *testing.T) {
	is := is.New(t)

	s := &DeliveryStorageMock{
		GetTemplateFunc: func(ctx context.Context, templateID int64) (types.Template, error) {
			return types.Template{}, storage.ErrNoRows
		},
	}
	e := &EventUpdaterMock{
		SetExecutionResultFunc: func(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error {
			return nil
		},
	}

	d := New(s, e, nil, &messaging.MsgContextMock{}, Config{})

	err := d.Dispatch(context.Background(), notificationEvent())
	is.NoErr(err)

	is.Equal(len(e.SetExecutionResultCalls()), 1)
	result := e.SetExecutionResultCalls()[0].Result
	is.Equal(result.Status, types.ResultStatusFailed)
	is.Equal(result.Error, "missing_template")
}

func TestDispatchOneFailingDeliveryDoesNotBlockTheOthers(t *testing.T) {
	is := is.New(t)

	s, _ := deliveryStorage(twoRecipientTemplate())
	e := &EventUpdaterMock{
		FinalizeNotificationActionFunc: func(ctx context.Context, eventID, templateID int64, tally types.DeliveryTally) error {
			return nil
		},
	}

	sender := &SenderMock{
		SendFunc: func(ctx context.Context, address, message string) error {
			if strings.Contains(address, "@") {
				return errors.New("transient: connection refused")
			}
			return nil
		},
	}

	d := New(s, e, map[string]Sender{types.ChannelEmail: sender, types.ChannelSMS: sender}, &messaging.MsgContextMock{}, Config{})

	err := d.Dispatch(context.Background(), notificationEvent())
	is.NoErr(err)

	is.Equal(len(s.MarkDeliveryFailedCalls()), 1)
	is.Equal(len(s.MarkDeliverySentCalls()), 1)
}

func TestDispatchUnknownChannelIsRejected(t *testing.T) {
	is := is.New(t)

	template := twoRecipientTemplate()
	template.Recipients = []types.Recipient{{Channel: types.ChannelWebhook, Name: "mes", Address: "https://mes.local/hook"}}

	s, _ := deliveryStorage(template)
	e := &EventUpdaterMock{
		FinalizeNotificationActionFunc: func(ctx context.Context, eventID, templateID int64, tally types.DeliveryTally) error {
			return nil
		},
	}

	d := New(s, e, map[string]Sender{}, &messaging.MsgContextMock{}, Config{})

	err := d.Dispatch(context.Background(), notificationEvent())
	is.NoErr(err)

	is.Equal(len(s.MarkDeliveryFailedCalls()), 1)
	is.True(strings.HasPrefix(s.MarkDeliveryFailedCalls()[0].ErrorMessage, FailureRejected))
}

func TestDispatchStopMachinePublishesAndCompletes(t *testing.T) {
	is := is.New(t)

	e := &EventUpdaterMock{
		SetExecutionResultFunc: func(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error {
			return nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error { return nil },
	}

	event := notificationEvent()
	event.ExecutionResults = []types.ExecutionResult{{
		Type:      types.ActionTypeStopMachine,
		MachineID: "press-7",
		Status:    types.ResultStatusPending,
	}}

	d := New(&DeliveryStorageMock{}, e, nil, m, Config{})

	err := d.Dispatch(context.Background(), event)
	is.NoErr(err)

	is.Equal(len(m.PublishOnTopicCalls()), 1)
	is.Equal(m.PublishOnTopicCalls()[0].Message.TopicName(), "machine.stopRequested")

	result := e.SetExecutionResultCalls()[0].Result
	is.Equal(result.Status, types.ResultStatusCompleted)
}

func TestDispatchStopMachinePublishFailureFailsResult(t *testing.T) {
	is := is.New(t)

	e := &EventUpdaterMock{
		SetExecutionResultFunc: func(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error {
			return nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return errors.New("broker unavailable")
		},
	}

	event := notificationEvent()
	event.ExecutionResults = []types.ExecutionResult{{
		Type:      types.ActionTypeStopMachine,
		MachineID: "press-7",
		Status:    types.ResultStatusPending,
	}}

	d := New(&DeliveryStorageMock{}, e, nil, m, Config{})

	err := d.Dispatch(context.Background(), event)
	is.NoErr(err)

	result := e.SetExecutionResultCalls()[0].Result
	is.Equal(result.Status, types.ResultStatusFailed)
	is.Equal(result.Error, "broker unavailable")
}

func TestDispatchSkipsSettledResults(t *testing.T) {
	is := is.New(t)

	s := &DeliveryStorageMock{}

	event := notificationEvent()
	event.ExecutionResults[0].Status = types.ResultStatusCompleted

	d := New(s, &EventUpdaterMock{}, nil, &messaging.MsgContextMock{}, Config{})

	err := d.Dispatch(context.Background(), event)
	is.NoErr(err)
	is.Equal(len(s.GetTemplateCalls()), 0)
}

func TestTickResendsClaimedDeliveries(t *testing.T) {
	is := is.New(t)

	claimed := []types.Delivery{
		{ID: 1, EventID: 10, TemplateID: 5, Channel: types.ChannelEmail, Address: "ops@factory.example", Message: "m", AttemptCount: 1},
		{ID: 2, EventID: 10, TemplateID: 5, Channel: types.ChannelEmail, Address: "shift@factory.example", Message: "m", AttemptCount: 2},
	}

	s := &DeliveryStorageMock{
		ClaimRetriesFunc: func(ctx context.Context, now time.Time, claimTimeout time.Duration, limit int) ([]types.Delivery, error) {
			return claimed, nil
		},
		MarkDeliverySentFunc: func(ctx context.Context, deliveryID int64, sentAt time.Time) error { return nil },
		DeliveryTallyFunc: func(ctx context.Context, eventID, templateID int64) (types.DeliveryTally, error) {
			return types.DeliveryTally{Sent: 2, Total: 2}, nil
		},
	}
	e := &EventUpdaterMock{
		FinalizeNotificationActionFunc: func(ctx context.Context, eventID, templateID int64, tally types.DeliveryTally) error {
			return nil
		},
	}
	sender := &SenderMock{
		SendFunc: func(ctx context.Context, address, message string) error { return nil },
	}

	d := New(s, e, map[string]Sender{types.ChannelEmail: sender}, &messaging.MsgContextMock{}, Config{})

	err := d.Tick(context.Background())
	is.NoErr(err)

	is.Equal(len(sender.SendCalls()), 2)

	// both deliveries belong to the same fan-out, so it is settled once
	is.Equal(len(s.DeliveryTallyCalls()), 1)
	is.Equal(len(e.FinalizeNotificationActionCalls()), 1)
	is.Equal(e.FinalizeNotificationActionCalls()[0].EventID, int64(10))
	is.Equal(e.FinalizeNotificationActionCalls()[0].TemplateID, int64(5))
}

func TestTickWithNothingClaimedIsQuiet(t *testing.T) {
	is := is.New(t)

	s := &DeliveryStorageMock{
		ClaimRetriesFunc: func(ctx context.Context, now time.Time, claimTimeout time.Duration, limit int) ([]types.Delivery, error) {
			return nil, nil
		},
	}

	d := New(s, &EventUpdaterMock{}, nil, &messaging.MsgContextMock{}, Config{})

	err := d.Tick(context.Background())
	is.NoErr(err)
	is.Equal(len(s.DeliveryTallyCalls()), 0)
}

func TestDeliveriesBuildsConditionsFromFilters(t *testing.T) {
	is := is.New(t)

	s := &DeliveryStorageMock{
		QueryDeliveriesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Delivery], error) {
			return types.Collection[types.Delivery]{}, nil
		},
	}

	d := New(s, &EventUpdaterMock{}, nil, &messaging.MsgContextMock{}, Config{})

	_, err := d.Deliveries(context.Background(), 10, types.DeliveryStatusFailed, 0, 20)
	is.NoErr(err)

	is.Equal(len(s.QueryDeliveriesCalls()), 1)
	is.Equal(len(s.QueryDeliveriesCalls()[0].Conditions), 4)
}

func TestRenderSubstitutesSnapshotFields(t *testing.T) {
	is := is.New(t)

	event := notificationEvent()
	message := Render("ALERT {severity}: {device_name} {metric} at {value} {unit}", event)

	is.Equal(message, "ALERT critical: press 7 spindle vibration at 9.2 mm/s")
}

func TestRenderLeavesUnknownPlaceholders(t *testing.T) {
	is := is.New(t)

	message := Render("{severity} {no_such_field}", notificationEvent())
	is.Equal(message, "critical {no_such_field}")
}

func notificationEvent() types.Event {
	return types.Event{
		ID:     10,
		RuleID: "rule-01",
		Snapshot: types.ReadingSnapshot{
			DeviceID:     "device-01",
			DeviceName:   "press 7 spindle",
			SerialNumber: "SN-0001",
			Metric:       types.MetricVibration,
			Unit:         "mm/s",
			Value:        decimal.NewFromFloat(9.2),
			Timestamp:    time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
		},
		Severity: types.SeverityCritical,
		Message:  "excessive vibration",
		ExecutionResults: []types.ExecutionResult{{
			Type:       types.ActionTypeNotification,
			TemplateID: 5,
			Status:     types.ResultStatusPending,
		}},
		Status:     types.EventStatusNew,
		ObservedAt: time.Now().UTC(),
	}
}

func twoRecipientTemplate() types.Template {
	return types.Template{
		ID:              5,
		Name:            "vibration alert",
		MessageTemplate: "ALERT {severity}: {message}",
		Recipients: []types.Recipient{
			{Channel: types.ChannelEmail, Name: "ops", Address: "ops@factory.example"},
			{Channel: types.ChannelSMS, Name: "shift lead", Address: "+46701234567"},
		},
		Priority:          1,
		RetryCount:        3,
		RetryDelayMinutes: 5,
		Active:            true,
	}
}

func deliveryStorage(template types.Template) (*DeliveryStorageMock, *[]types.Delivery) {
	var mu sync.Mutex
	stored := &[]types.Delivery{}

	return &DeliveryStorageMock{
		GetTemplateFunc: func(ctx context.Context, templateID int64) (types.Template, error) {
			return template, nil
		},
		AddDeliveriesFunc: func(ctx context.Context, deliveries []types.Delivery) ([]types.Delivery, error) {
			mu.Lock()
			defer mu.Unlock()
			for i := range deliveries {
				deliveries[i].ID = int64(len(*stored) + 1)
				*stored = append(*stored, deliveries[i])
			}
			return deliveries, nil
		},
		MarkDeliverySentFunc: func(ctx context.Context, deliveryID int64, sentAt time.Time) error {
			return nil
		},
		MarkDeliveryFailedFunc: func(ctx context.Context, deliveryID int64, attemptedAt time.Time, errorMessage string) error {
			return nil
		},
		DeliveryTallyFunc: func(ctx context.Context, eventID, templateID int64) (types.DeliveryTally, error) {
			return types.DeliveryTally{Sent: 2, Total: 2}, nil
		},
	}, stored
}
