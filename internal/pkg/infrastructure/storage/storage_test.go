package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	t.Helper()

	ctx := context.Background()

	config := NewConfig("localhost", "postgres", "password", "5432", "postgres", "disable")

	pool, err := NewPool(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	s := NewWithPool(pool)

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func seedDeviceAndRule(t *testing.T, ctx context.Context, s *Storage, cooldownMinutes int) (types.Device, types.Rule) {
	t.Helper()

	is := is.New(t)

	deviceType := types.DeviceType{
		ID:        uuid.NewString(),
		Name:      "vibration sensor " + uuid.NewString(),
		Metric:    types.MetricVibration,
		Unit:      "mm/s",
		MetricMin: decimal.NewFromInt(0),
		MetricMax: decimal.NewFromInt(10),
	}
	is.NoErr(s.AddDeviceType(ctx, deviceType))

	device := types.Device{
		ID:           uuid.NewString(),
		DeviceTypeID: deviceType.ID,
		Name:         "press 7 spindle",
		SerialNumber: uuid.NewString(),
		Status:       types.DeviceStatusActive,
	}
	is.NoErr(s.AddDevice(ctx, device))

	rule := types.Rule{
		ID:              uuid.NewString(),
		DeviceID:        device.ID,
		Name:            "excessive vibration",
		Operator:        types.OperatorGreaterThan,
		Threshold:       decimal.NewFromFloat(8.5),
		Actions:         types.Actions{types.NotificationAction{TemplateID: 1}},
		CooldownMinutes: cooldownMinutes,
		Enabled:         true,
	}
	is.NoErr(s.AddRule(ctx, rule))

	return device, rule
}

func TestRuleRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device, rule := seedDeviceAndRule(t, ctx, s, 15)

	fetched, err := s.GetRule(ctx, WithRuleID(rule.ID))
	is.NoErr(err)
	is.Equal(fetched.DeviceID, device.ID)
	is.Equal(fetched.Operator, types.OperatorGreaterThan)
	is.True(fetched.Threshold.Equal(decimal.NewFromFloat(8.5)))
	is.Equal(len(fetched.Actions), 1)

	is.NoErr(s.SetRuleEnabled(ctx, rule.ID, false))

	enabled, err := s.QueryRules(ctx, WithDeviceID(device.ID), WithEnabled(true))
	is.NoErr(err)
	is.Equal(enabled.TotalCount, uint64(0))

	is.NoErr(s.DeleteRule(ctx, rule.ID))

	_, err = s.GetRule(ctx, WithRuleID(rule.ID))
	is.True(errors.Is(err, ErrNoRows))
}

func TestClaimRuleFiringEnforcesCooldown(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, rule := seedDeviceAndRule(t, ctx, s, 15)

	t0 := time.Now().UTC()

	claimed, err := s.ClaimRuleFiring(ctx, rule.ID, t0)
	is.NoErr(err)
	is.True(claimed)

	claimed, err = s.ClaimRuleFiring(ctx, rule.ID, t0.Add(time.Minute))
	is.NoErr(err)
	is.True(!claimed)

	claimed, err = s.ClaimRuleFiring(ctx, rule.ID, t0.Add(16*time.Minute))
	is.NoErr(err)
	is.True(claimed)
}

func TestClaimRuleFiringIgnoresDisabledRules(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, rule := seedDeviceAndRule(t, ctx, s, 0)
	is.NoErr(s.SetRuleEnabled(ctx, rule.ID, false))

	claimed, err := s.ClaimRuleFiring(ctx, rule.ID, time.Now().UTC())
	is.NoErr(err)
	is.True(!claimed)
}

func TestReadingRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device, _ := seedDeviceAndRule(t, ctx, s, 0)

	reading, err := s.AddReading(ctx, types.Reading{
		DeviceID:  device.ID,
		Value:     decimal.NewFromFloat(4.2),
		Timestamp: time.Now().UTC(),
	})
	is.NoErr(err)
	is.True(reading.ID != 0)

	fetched, err := s.GetReading(ctx, reading.ID)
	is.NoErr(err)
	is.True(fetched.Value.Equal(decimal.NewFromFloat(4.2)))
}

func TestPurgeReadingsKeepsEventSnapshots(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device, rule := seedDeviceAndRule(t, ctx, s, 0)

	old := time.Now().UTC().Add(-48 * time.Hour)
	reading, err := s.AddReading(ctx, types.Reading{DeviceID: device.ID, Value: decimal.NewFromFloat(9.2), Timestamp: old})
	is.NoErr(err)

	event, err := s.AddEvent(ctx, types.Event{
		RuleID:   rule.ID,
		Severity: types.SeverityWarning,
		Message:  "vibration above threshold",
		Snapshot: types.ReadingSnapshot{
			DeviceID:     device.ID,
			SerialNumber: device.SerialNumber,
			Metric:       types.MetricVibration,
			Value:        reading.Value,
			Timestamp:    reading.Timestamp,
		},
		Status:     types.EventStatusNew,
		ObservedAt: old,
	})
	is.NoErr(err)

	purged, err := s.PurgeReadingsBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	is.NoErr(err)
	is.True(purged >= 1)

	_, err = s.GetReading(ctx, reading.ID)
	is.True(errors.Is(err, ErrNoRows))

	// the event keeps its own copy of the reading
	fetched, err := s.GetEvent(ctx, event.ID)
	is.NoErr(err)
	is.True(fetched.Snapshot.Value.Equal(decimal.NewFromFloat(9.2)))
}

func TestEventLifecycle(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device, rule := seedDeviceAndRule(t, ctx, s, 0)

	event, err := s.AddEvent(ctx, types.Event{
		RuleID:   rule.ID,
		Severity: types.SeverityWarning,
		Message:  "vibration above threshold",
		Snapshot: types.ReadingSnapshot{
			DeviceID:     device.ID,
			SerialNumber: device.SerialNumber,
			Metric:       types.MetricVibration,
			Unit:         "mm/s",
			Value:        decimal.NewFromFloat(9.2),
			Timestamp:    time.Now().UTC(),
		},
		ExecutionResults: []types.ExecutionResult{{
			Type:       types.ActionTypeNotification,
			TemplateID: 1,
			Status:     types.ResultStatusPending,
		}},
		Status:     types.EventStatusNew,
		ObservedAt: time.Now().UTC(),
	})
	is.NoErr(err)
	is.True(event.ID != 0)

	result := event.ExecutionResults[0]
	result.Status = types.ResultStatusCompleted
	result.SentCount = 2
	result.CompletedAt = time.Now().UTC()
	is.NoErr(s.SetExecutionResult(ctx, event.ID, 0, result))

	is.NoErr(s.SetEventStatus(ctx, event.ID, types.EventStatusAcknowledged))

	fetched, err := s.GetEvent(ctx, event.ID)
	is.NoErr(err)
	is.Equal(fetched.Status, types.EventStatusAcknowledged)
	is.Equal(fetched.ExecutionResults[0].Status, types.ResultStatusCompleted)
	is.Equal(fetched.ExecutionResults[0].SentCount, 2)

	collection, err := s.QueryEvents(ctx, WithRuleID(rule.ID), WithStatus(types.EventStatusAcknowledged))
	is.NoErr(err)
	is.True(collection.TotalCount >= 1)
}

func TestDeliveryRetryLifecycle(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device, rule := seedDeviceAndRule(t, ctx, s, 0)

	template, err := s.AddTemplate(ctx, types.Template{
		Name:            "vibration alert " + uuid.NewString(),
		MessageTemplate: "ALERT {severity}: {message}",
		Recipients: []types.Recipient{
			{Channel: types.ChannelEmail, Name: "ops", Address: "ops@factory.example"},
		},
		RetryCount: 2,
		Active:     true,
	})
	is.NoErr(err)

	event, err := s.AddEvent(ctx, types.Event{
		RuleID:     rule.ID,
		Severity:   types.SeverityWarning,
		Message:    "vibration above threshold",
		Snapshot:   types.ReadingSnapshot{DeviceID: device.ID, Value: decimal.NewFromInt(9)},
		Status:     types.EventStatusNew,
		ObservedAt: time.Now().UTC(),
	})
	is.NoErr(err)

	now := time.Now().UTC()

	added, err := s.AddDeliveries(ctx, []types.Delivery{
		{EventID: event.ID, TemplateID: template.ID, Channel: types.ChannelEmail, Address: "ops@factory.example", Message: "m", Status: types.DeliveryStatusPending, ClaimedAt: now},
		{EventID: event.ID, TemplateID: template.ID, Channel: types.ChannelEmail, Address: "shift@factory.example", Message: "m", Status: types.DeliveryStatusPending, ClaimedAt: now},
	})
	is.NoErr(err)
	is.Equal(len(added), 2)

	is.NoErr(s.MarkDeliverySent(ctx, added[0].ID, now))
	is.NoErr(s.MarkDeliveryFailed(ctx, added[1].ID, now.Add(-time.Hour), "transient: connection refused"))

	// one attempt left on the failed delivery, so the fan-out is not decided
	tally, err := s.DeliveryTally(ctx, event.ID, template.ID)
	is.NoErr(err)
	is.Equal(tally.Sent, 1)
	is.Equal(tally.Dead, 0)
	is.Equal(tally.Total, 2)

	claimed, err := s.ClaimRetries(ctx, time.Now().UTC(), 5*time.Minute, 100)
	is.NoErr(err)
	is.Equal(len(claimed), 1)
	is.Equal(claimed[0].ID, added[1].ID)
	is.Equal(claimed[0].Status, types.DeliveryStatusPending)

	// claiming flips the row back to pending, an overlapping tick sees nothing
	again, err := s.ClaimRetries(ctx, time.Now().UTC(), 5*time.Minute, 100)
	is.NoErr(err)
	is.Equal(len(again), 0)

	is.NoErr(s.MarkDeliveryFailed(ctx, added[1].ID, time.Now().UTC(), "transient: connection refused"))

	tally, err = s.DeliveryTally(ctx, event.ID, template.ID)
	is.NoErr(err)
	is.Equal(tally.Sent, 1)
	is.Equal(tally.Dead, 1)
	is.True(tally.Decided())

	// the retry budget is spent, so the delivery stays dead even long
	// after the retry delay has passed
	exhausted, err := s.ClaimRetries(ctx, time.Now().UTC().Add(time.Hour), 5*time.Minute, 100)
	is.NoErr(err)
	is.Equal(len(exhausted), 0)
}

func TestDeleteDeviceTypeIsProtectedWhileReferenced(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device, _ := seedDeviceAndRule(t, ctx, s, 0)

	err := s.DeleteDeviceType(ctx, device.DeviceTypeID)
	is.True(errors.Is(err, ErrDeleteProtected))

	unused := types.DeviceType{
		ID:        uuid.NewString(),
		Name:      "pressure sensor " + uuid.NewString(),
		Metric:    types.MetricPressure,
		Unit:      "bar",
		MetricMin: decimal.NewFromInt(0),
		MetricMax: decimal.NewFromInt(16),
	}
	is.NoErr(s.AddDeviceType(ctx, unused))
	is.NoErr(s.DeleteDeviceType(ctx, unused.ID))
}

func TestQueryDevicesFiltersByStatus(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device, _ := seedDeviceAndRule(t, ctx, s, 0)
	is.NoErr(s.SetDeviceStatus(ctx, device.ID, types.DeviceStatusError))

	flagged, err := s.QueryDevices(ctx, WithStatus(types.DeviceStatusError))
	is.NoErr(err)
	is.True(flagged.TotalCount >= 1)

	bySerial, err := s.GetDevice(ctx, WithSerialNumber(device.SerialNumber))
	is.NoErr(err)
	is.Equal(bySerial.ID, device.ID)
	is.Equal(bySerial.Status, types.DeviceStatusError)
}

func TestGetTemplateByName(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	name := "pressure alert " + uuid.NewString()

	added, err := s.AddTemplate(ctx, types.Template{
		Name:            name,
		MessageTemplate: "{device_name} {metric} at {value}",
		Recipients:      []types.Recipient{{Channel: types.ChannelEmail, Name: "ops", Address: "ops@factory.example"}},
		Active:          true,
	})
	is.NoErr(err)

	fetched, err := s.GetTemplateByName(ctx, name)
	is.NoErr(err)
	is.Equal(fetched.ID, added.ID)
	is.Equal(len(fetched.Recipients), 1)
}

func TestSeedDeviceTypesUpdatesExistingRange(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	deviceType := types.DeviceType{
		ID:        uuid.NewString(),
		Name:      "temperature sensor " + uuid.NewString(),
		Metric:    types.MetricTemperature,
		Unit:      "C",
		MetricMin: decimal.NewFromInt(-20),
		MetricMax: decimal.NewFromInt(80),
	}

	is.NoErr(SeedDeviceTypes(ctx, s, []types.DeviceType{deviceType}))

	deviceType.MetricMax = decimal.NewFromInt(120)
	is.NoErr(SeedDeviceTypes(ctx, s, []types.DeviceType{deviceType}))

	fetched, err := s.GetDeviceTypeByName(ctx, deviceType.Name)
	is.NoErr(err)
	is.True(fetched.MetricMax.Equal(decimal.NewFromInt(120)))
}
