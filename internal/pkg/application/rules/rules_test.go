package rules

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/storage"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

func TestCreateRejectsUnknownOperator(t *testing.T) {
	is := is.New(t)

	svc := New(&RuleStorageMock{})

	_, err := svc.Create(context.Background(), types.Rule{
		DeviceID: "device-01",
		Operator: "between",
	})
	is.True(err != nil)
}

func TestCreateAssignsID(t *testing.T) {
	is := is.New(t)

	r := &RuleStorageMock{
		AddRuleFunc: func(ctx context.Context, rule types.Rule) error { return nil },
	}
	svc := New(r)

	created, err := svc.Create(context.Background(), types.Rule{
		DeviceID:  "device-01",
		Operator:  types.OperatorGreaterThan,
		Threshold: decimal.NewFromFloat(8.5),
	})
	is.NoErr(err)
	is.True(created.ID != "")
	is.Equal(len(r.AddRuleCalls()), 1)
}

func TestGetByIDMapsNoRows(t *testing.T) {
	is := is.New(t)

	r := &RuleStorageMock{
		GetRuleFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Rule, error) {
			return types.Rule{}, storage.ErrNoRows
		},
	}
	svc := New(r)

	_, err := svc.GetByID(context.Background(), "missing")
	is.Equal(err, ErrRuleNotFound)
}

func TestEvaluateFiresWhenThresholdExceeded(t *testing.T) {
	is := is.New(t)

	r := evaluatorStorage(ruleAbove("rule-01", "device-01", 8.0), true)
	svc := New(r)

	fired, err := svc.Evaluate(context.Background(), reading("device-01", 8.5))
	is.NoErr(err)
	is.Equal(len(fired), 1)
	is.Equal(fired[0].ID, "rule-01")
	is.True(!fired[0].LastTriggeredAt.IsZero())
}

func TestEvaluateDoesNotFireBelowThreshold(t *testing.T) {
	is := is.New(t)

	r := evaluatorStorage(ruleAbove("rule-01", "device-01", 8.0), true)
	svc := New(r)

	fired, err := svc.Evaluate(context.Background(), reading("device-01", 7.9))
	is.NoErr(err)
	is.Equal(len(fired), 0)
	is.Equal(len(r.ClaimRuleFiringCalls()), 0)
}

func TestEvaluateSuppressedByCooldown(t *testing.T) {
	is := is.New(t)

	r := evaluatorStorage(ruleAbove("rule-01", "device-01", 8.0), false)
	svc := New(r)

	fired, err := svc.Evaluate(context.Background(), reading("device-01", 9.0))
	is.NoErr(err)
	is.Equal(len(fired), 0)
	is.Equal(len(r.ClaimRuleFiringCalls()), 1)
}

func TestEvaluateCooldownWindow(t *testing.T) {
	is := is.New(t)

	// emulates the conditional update: the claim succeeds only when the
	// previous firing is at least a full cooldown in the past
	rule := ruleAbove("rule-01", "device-01", 80.0)
	rule.CooldownMinutes = 15

	var mu sync.Mutex
	lastTriggered := time.Time{}

	r := &RuleStorageMock{
		QueryRulesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Rule], error) {
			return types.Collection[types.Rule]{Data: []types.Rule{rule}, Count: 1, TotalCount: 1}, nil
		},
		ClaimRuleFiringFunc: func(ctx context.Context, ruleID string, firedAt time.Time) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if !lastTriggered.IsZero() && lastTriggered.After(firedAt.Add(-rule.Cooldown())) {
				return false, nil
			}
			lastTriggered = firedAt
			return true, nil
		},
	}

	svc := New(r)
	ctx := context.Background()

	// first breach fires
	fired, err := svc.Evaluate(ctx, reading("device-01", 85.0))
	is.NoErr(err)
	is.Equal(len(fired), 1)

	// a second breach right after stays silent
	fired, err = svc.Evaluate(ctx, reading("device-01", 90.0))
	is.NoErr(err)
	is.Equal(len(fired), 0)

	// once the window has passed the rule fires again
	mu.Lock()
	lastTriggered = time.Now().UTC().Add(-16 * time.Minute)
	mu.Unlock()

	fired, err = svc.Evaluate(ctx, reading("device-01", 95.0))
	is.NoErr(err)
	is.Equal(len(fired), 1)
}

func TestEvaluateConcurrentReadingsFireOnce(t *testing.T) {
	is := is.New(t)

	rule := ruleAbove("rule-01", "device-01", 8.0)
	rule.CooldownMinutes = 15

	var mu sync.Mutex
	claimed := false

	r := &RuleStorageMock{
		QueryRulesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Rule], error) {
			return types.Collection[types.Rule]{Data: []types.Rule{rule}, Count: 1, TotalCount: 1}, nil
		},
		ClaimRuleFiringFunc: func(ctx context.Context, ruleID string, firedAt time.Time) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if claimed {
				return false, nil
			}
			claimed = true
			return true, nil
		},
	}

	svc := New(r)

	var wg sync.WaitGroup
	firings := make([]int, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fired, err := svc.Evaluate(context.Background(), reading("device-01", 9.0))
			if err == nil {
				firings[i] = len(fired)
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for _, n := range firings {
		total += n
	}
	is.Equal(total, 1)
}

func TestEvaluateReturnsClaimedRulesOnStorageError(t *testing.T) {
	is := is.New(t)

	first := ruleAbove("rule-01", "device-01", 8.0)
	second := ruleAbove("rule-02", "device-01", 8.0)

	r := &RuleStorageMock{
		QueryRulesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Rule], error) {
			return types.Collection[types.Rule]{Data: []types.Rule{first, second}, Count: 2, TotalCount: 2}, nil
		},
		ClaimRuleFiringFunc: func(ctx context.Context, ruleID string, firedAt time.Time) (bool, error) {
			if ruleID == "rule-02" {
				return false, errors.New("connection reset")
			}
			return true, nil
		},
	}
	svc := New(r)

	// the first rule committed its cooldown stamp before the storage
	// error, so it must not be dropped from the result
	fired, err := svc.Evaluate(context.Background(), reading("device-01", 9.0))
	is.True(err != nil)
	is.Equal(len(fired), 1)
	is.Equal(fired[0].ID, "rule-01")
}

func TestEvaluateSkipsInvalidOperator(t *testing.T) {
	is := is.New(t)

	rule := ruleAbove("rule-01", "device-01", 8.0)
	rule.Operator = "between"

	r := &RuleStorageMock{
		QueryRulesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Rule], error) {
			return types.Collection[types.Rule]{Data: []types.Rule{rule}, Count: 1, TotalCount: 1}, nil
		},
	}
	svc := New(r)

	fired, err := svc.Evaluate(context.Background(), reading("device-01", 9.0))
	is.NoErr(err)
	is.Equal(len(fired), 0)
}

func ruleAbove(ruleID, deviceID string, threshold float64) types.Rule {
	return types.Rule{
		ID:        ruleID,
		DeviceID:  deviceID,
		Name:      "high reading",
		Operator:  types.OperatorGreaterThan,
		Threshold: decimal.NewFromFloat(threshold),
		Enabled:   true,
	}
}

func reading(deviceID string, value float64) types.Reading {
	return types.Reading{
		ID:        1,
		DeviceID:  deviceID,
		Value:     decimal.NewFromFloat(value),
		Timestamp: time.Now().UTC(),
	}
}

func evaluatorStorage(rule types.Rule, claim bool) *RuleStorageMock {
	return &RuleStorageMock{
		QueryRulesFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Rule], error) {
			return types.Collection[types.Rule]{Data: []types.Rule{rule}, Count: 1, TotalCount: 1}, nil
		},
		ClaimRuleFiringFunc: func(ctx context.Context, ruleID string, firedAt time.Time) (bool, error) {
			return claim, nil
		},
	}
}
