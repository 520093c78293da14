package rules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/storage"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrRuleNotFound = fmt.Errorf("rule not found")
var ErrInvalidRule = fmt.Errorf("invalid rule")

//go:generate moq -rm -out ruleservice_mock.go . RuleService
type RuleService interface {
	Create(ctx context.Context, rule types.Rule) (types.Rule, error)
	GetByID(ctx context.Context, ruleID string) (types.Rule, error)
	Query(ctx context.Context, deviceID string, offset, limit int) (types.Collection[types.Rule], error)
	SetEnabled(ctx context.Context, ruleID string, enabled bool) error
	Delete(ctx context.Context, ruleID string) error

	Evaluate(ctx context.Context, reading types.Reading) ([]types.Rule, error)
}

//go:generate moq -rm -out rulestorage_mock.go . RuleStorage
type RuleStorage interface {
	AddRule(ctx context.Context, rule types.Rule) error
	GetRule(ctx context.Context, conditions ...storage.ConditionFunc) (types.Rule, error)
	QueryRules(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Rule], error)
	SetRuleEnabled(ctx context.Context, ruleID string, enabled bool) error
	DeleteRule(ctx context.Context, ruleID string) error
	ClaimRuleFiring(ctx context.Context, ruleID string, firedAt time.Time) (bool, error)
}

type svc struct {
	storage RuleStorage
}

func New(s RuleStorage) RuleService {
	return &svc{storage: s}
}

func (s svc) Create(ctx context.Context, rule types.Rule) (types.Rule, error) {
	if rule.DeviceID == "" {
		return types.Rule{}, fmt.Errorf("%w: no device id", ErrInvalidRule)
	}
	if !validOperator(rule.Operator) {
		return types.Rule{}, fmt.Errorf("%w: unknown operator %q", ErrInvalidRule, rule.Operator)
	}
	if rule.CooldownMinutes < 0 {
		return types.Rule{}, fmt.Errorf("%w: negative cooldown", ErrInvalidRule)
	}

	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	err := s.storage.AddRule(ctx, rule)
	if err != nil {
		return types.Rule{}, err
	}

	return rule, nil
}

func (s svc) GetByID(ctx context.Context, ruleID string) (types.Rule, error) {
	rule, err := s.storage.GetRule(ctx, storage.WithRuleID(ruleID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Rule{}, ErrRuleNotFound
		}
		return types.Rule{}, err
	}

	return rule, nil
}

func (s svc) Query(ctx context.Context, deviceID string, offset, limit int) (types.Collection[types.Rule], error) {
	conditions := []storage.ConditionFunc{storage.WithOffset(offset), storage.WithLimit(limit)}
	if deviceID != "" {
		conditions = append(conditions, storage.WithDeviceID(deviceID))
	}

	return s.storage.QueryRules(ctx, conditions...)
}

func (s svc) SetEnabled(ctx context.Context, ruleID string, enabled bool) error {
	err := s.storage.SetRuleEnabled(ctx, ruleID, enabled)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrRuleNotFound
	}

	return err
}

func (s svc) Delete(ctx context.Context, ruleID string) error {
	err := s.storage.DeleteRule(ctx, ruleID)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrRuleNotFound
	}

	return err
}

// Evaluate tests all enabled rules for the reading's device and returns
// those that fired. A rule fires when its condition holds and the
// cooldown claim succeeds; the claim is a conditional update on
// last_triggered_at, so concurrent readings for the same device cannot
// produce more than one firing per cooldown window. Cooldown is
// measured against wall-clock firing time rather than the reading's
// own timestamp, which keeps the suppression window meaningful when
// readings arrive late, duplicated or out of order.
func (s svc) Evaluate(ctx context.Context, reading types.Reading) ([]types.Rule, error) {
	log := logging.GetFromContext(ctx)

	enabled, err := s.storage.QueryRules(ctx, storage.WithDeviceID(reading.DeviceID), storage.WithEnabled(true))
	if err != nil {
		return nil, err
	}

	fired := make([]types.Rule, 0)

	for _, rule := range enabled.Data {
		ok, err := Condition(reading.Value, rule.Threshold, rule.Operator)
		if err != nil {
			log.Error("rule has an invalid operator", "rule_id", rule.ID, "err", err.Error())
			continue
		}
		if !ok {
			continue
		}

		now := time.Now().UTC()

		claimed, err := s.storage.ClaimRuleFiring(ctx, rule.ID, now)
		if err != nil {
			// rules that already won their claim have a committed
			// cooldown stamp, so they must still reach the caller
			return fired, err
		}
		if !claimed {
			log.Debug("rule suppressed by cooldown", "rule_id", rule.ID, "device_id", reading.DeviceID)
			continue
		}

		rule.LastTriggeredAt = now
		fired = append(fired, rule)
	}

	return fired, nil
}
