package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/storage"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var ErrEventNotFound = fmt.Errorf("event not found")

//go:generate moq -rm -out eventservice_mock.go . EventService
type EventService interface {
	Record(ctx context.Context, rule types.Rule, device types.Device, deviceType types.DeviceType, reading types.Reading) (types.Event, error)

	GetByID(ctx context.Context, eventID int64) (types.Event, error)
	Query(ctx context.Context, ruleID, status, severity string, offset, limit int) (types.Collection[types.Event], error)
	Acknowledge(ctx context.Context, eventID int64) error
	Resolve(ctx context.Context, eventID int64) error

	SetExecutionResult(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error
	FinalizeNotificationAction(ctx context.Context, eventID, templateID int64, tally types.DeliveryTally) error
}

//go:generate moq -rm -out eventstorage_mock.go . EventStorage
type EventStorage interface {
	AddEvent(ctx context.Context, event types.Event) (types.Event, error)
	GetEvent(ctx context.Context, eventID int64) (types.Event, error)
	QueryEvents(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Event], error)
	SetEventStatus(ctx context.Context, eventID int64, status string) error
	SetExecutionResult(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error
}

type svc struct {
	storage   EventStorage
	messenger messaging.MsgContext
}

func New(s EventStorage, m messaging.MsgContext) EventService {
	return &svc{
		storage:   s,
		messenger: m,
	}
}

// Record persists the audit trail of a rule firing. The snapshot of
// the triggering reading is copied in full at this point, because the
// reading itself lives under an external retention policy and may be
// purged at any time after processing. Each action in the rule's plan
// starts out as a pending execution result; no action is executed here.
func (s svc) Record(ctx context.Context, rule types.Rule, device types.Device, deviceType types.DeviceType, reading types.Reading) (types.Event, error) {
	log := logging.GetFromContext(ctx)

	severity := deriveSeverity(deviceType, reading)

	event := types.Event{
		RuleID:   rule.ID,
		Severity: severity,
		Message: fmt.Sprintf("rule %q fired for device %s: %s value %s %s threshold %s",
			rule.Name, device.SerialNumber, deviceType.Metric, reading.Value.String(), symbol(rule.Operator), rule.Threshold.String()),
		Snapshot: types.ReadingSnapshot{
			DeviceID:      device.ID,
			SerialNumber:  device.SerialNumber,
			DeviceName:    device.Name,
			Metric:        deviceType.Metric,
			Unit:          deviceType.Unit,
			SchemaVersion: reading.SchemaVersion,
			Value:         reading.Value,
			Timestamp:     reading.Timestamp,
		},
		ExecutionResults: planFromActions(rule.Actions),
		Status:           types.EventStatusNew,
		ObservedAt:       time.Now().UTC(),
	}

	event, err := s.storage.AddEvent(ctx, event)
	if err != nil {
		return types.Event{}, err
	}

	err = s.messenger.PublishOnTopic(ctx, &types.EventCreated{
		EventID:   event.ID,
		RuleID:    rule.ID,
		DeviceID:  device.ID,
		Severity:  event.Severity,
		Timestamp: event.ObservedAt,
	})
	if err != nil {
		log.Error("failed to publish event.created", "event_id", event.ID, "err", err.Error())
	}

	return event, nil
}

func (s svc) GetByID(ctx context.Context, eventID int64) (types.Event, error) {
	event, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Event{}, ErrEventNotFound
		}
		return types.Event{}, err
	}

	return event, nil
}

func (s svc) Query(ctx context.Context, ruleID, status, severity string, offset, limit int) (types.Collection[types.Event], error) {
	conditions := []storage.ConditionFunc{storage.WithOffset(offset), storage.WithLimit(limit), storage.WithSortDesc(true)}
	if ruleID != "" {
		conditions = append(conditions, storage.WithRuleID(ruleID))
	}
	if status != "" {
		conditions = append(conditions, storage.WithStatus(status))
	}
	if severity != "" {
		conditions = append(conditions, storage.WithSeverity(severity))
	}

	return s.storage.QueryEvents(ctx, conditions...)
}

func (s svc) Acknowledge(ctx context.Context, eventID int64) error {
	return s.setStatus(ctx, eventID, types.EventStatusAcknowledged)
}

func (s svc) Resolve(ctx context.Context, eventID int64) error {
	return s.setStatus(ctx, eventID, types.EventStatusResolved)
}

func (s svc) setStatus(ctx context.Context, eventID int64, status string) error {
	err := s.storage.SetEventStatus(ctx, eventID, status)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrEventNotFound
	}

	return err
}

func (s svc) SetExecutionResult(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error {
	return s.storage.SetExecutionResult(ctx, eventID, index, result)
}

// FinalizeNotificationAction settles the execution result of the
// notification action that references the given template, once every
// delivery it fanned out has either been sent or exhausted its retry
// budget.
func (s svc) FinalizeNotificationAction(ctx context.Context, eventID, templateID int64, tally types.DeliveryTally) error {
	if !tally.Decided() {
		return nil
	}

	event, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	for i, result := range event.ExecutionResults {
		if result.Type != types.ActionTypeNotification || result.TemplateID != templateID {
			continue
		}
		if result.Status != types.ResultStatusPending {
			return nil
		}

		result.SentCount = tally.Sent
		result.FailedCount = tally.Dead
		result.CompletedAt = time.Now().UTC()

		if tally.Dead == 0 {
			result.Status = types.ResultStatusCompleted
		} else {
			result.Status = types.ResultStatusFailed
			result.Error = fmt.Sprintf("%d of %d deliveries failed terminally", tally.Dead, tally.Total)
		}

		return s.storage.SetExecutionResult(ctx, eventID, i, result)
	}

	return nil
}

func planFromActions(actions types.Actions) []types.ExecutionResult {
	plan := make([]types.ExecutionResult, 0, len(actions))

	for _, action := range actions {
		switch a := action.(type) {
		case types.NotificationAction:
			plan = append(plan, types.ExecutionResult{
				Type:       types.ActionTypeNotification,
				TemplateID: a.TemplateID,
				Status:     types.ResultStatusPending,
			})
		case types.StopMachineAction:
			plan = append(plan, types.ExecutionResult{
				Type:      types.ActionTypeStopMachine,
				MachineID: a.MachineID,
				Status:    types.ResultStatusPending,
			})
		}
	}

	return plan
}

// deriveSeverity grades a firing by the device type's expected range: a
// value outside what the sensor should ever report is critical, a value
// that merely crossed an operator threshold is a warning.
func deriveSeverity(deviceType types.DeviceType, reading types.Reading) string {
	if reading.Value.LessThan(deviceType.MetricMin) || reading.Value.GreaterThan(deviceType.MetricMax) {
		return types.SeverityCritical
	}

	return types.SeverityWarning
}

func symbol(operator string) string {
	switch operator {
	case types.OperatorGreaterThan:
		return ">"
	case types.OperatorLessThan:
		return "<"
	case types.OperatorGreaterThanOrEqual:
		return ">="
	case types.OperatorLessThanOrEqual:
		return "<="
	case types.OperatorEqual:
		return "="
	case types.OperatorNotEqual:
		return "!="
	}
	return operator
}
