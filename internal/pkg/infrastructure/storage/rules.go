package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/factoryedge/machine-rule-engine/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddRule(ctx context.Context, rule types.Rule) error {
	actions, err := json.Marshal(rule.Actions)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO rules (rule_id, device_id, name, description, operator, threshold, actions, cooldown_minutes, enabled)
		VALUES (@rule_id, @device_id, @name, @description, @operator, @threshold, @actions, @cooldown_minutes, @enabled)
	`, pgx.NamedArgs{
		"rule_id":          rule.ID,
		"device_id":        rule.DeviceID,
		"name":             rule.Name,
		"description":      rule.Description,
		"operator":         rule.Operator,
		"threshold":        rule.Threshold,
		"actions":          string(actions),
		"cooldown_minutes": rule.CooldownMinutes,
		"enabled":          rule.Enabled,
	})
	if isDuplicateKey(err) {
		return ErrAlreadyExists
	}
	if isForeignKeyViolation(err) {
		return ErrNoRows
	}

	return err
}

func (s *Storage) GetRule(ctx context.Context, conditions ...ConditionFunc) (types.Rule, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT rule_id, device_id, name, description, operator, threshold, actions, cooldown_minutes, last_triggered_at, enabled
		FROM rules
		WHERE %s
	`, condition.Where())

	rule, err := scanRule(s.pool.QueryRow(ctx, query, condition.NamedArgs()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Rule{}, ErrNoRows
		}
		return types.Rule{}, err
	}

	return rule, nil
}

func (s *Storage) QueryRules(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Rule], error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT rule_id, device_id, name, description, operator, threshold, actions, cooldown_minutes, last_triggered_at, enabled, count(*) OVER () AS total
		FROM rules
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy("created_on"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Rule]{}, err
	}
	defer rows.Close()

	rules := make([]types.Rule, 0)
	var total int64

	for rows.Next() {
		var rule types.Rule
		var actions json.RawMessage
		var lastTriggeredAt *time.Time

		err = rows.Scan(&rule.ID, &rule.DeviceID, &rule.Name, &rule.Description, &rule.Operator, &rule.Threshold,
			&actions, &rule.CooldownMinutes, &lastTriggeredAt, &rule.Enabled, &total)
		if err != nil {
			return types.Collection[types.Rule]{}, err
		}

		err = json.Unmarshal(actions, &rule.Actions)
		if err != nil {
			return types.Collection[types.Rule]{}, err
		}

		if lastTriggeredAt != nil {
			rule.LastTriggeredAt = *lastTriggeredAt
		}

		rules = append(rules, rule)
	}
	if rows.Err() != nil {
		return types.Collection[types.Rule]{}, rows.Err()
	}

	return types.Collection[types.Rule]{
		Data:       rules,
		Count:      uint64(len(rules)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) SetRuleEnabled(ctx context.Context, ruleID string, enabled bool) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE rules
		SET enabled = @enabled, modified_on = CURRENT_TIMESTAMP
		WHERE rule_id = @rule_id
	`, pgx.NamedArgs{
		"rule_id": ruleID,
		"enabled": enabled,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteRule(ctx context.Context, ruleID string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM rules WHERE rule_id = @rule_id
	`, pgx.NamedArgs{
		"rule_id": ruleID,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// ClaimRuleFiring stamps last_triggered_at iff the rule is enabled and
// its cooldown window has expired. The conditional update is the
// serialization point for concurrent readings: of N racing claims for
// the same rule, exactly one can match the WHERE clause and win the
// firing. last_triggered_at never moves backwards.
func (s *Storage) ClaimRuleFiring(ctx context.Context, ruleID string, firedAt time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE rules
		SET last_triggered_at = @fired_at, modified_on = CURRENT_TIMESTAMP
		WHERE rule_id = @rule_id
		  AND enabled = TRUE
		  AND (last_triggered_at IS NULL
		       OR last_triggered_at <= @fired_at - make_interval(mins => cooldown_minutes))
	`, pgx.NamedArgs{
		"rule_id":  ruleID,
		"fired_at": firedAt,
	})
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func scanRule(row pgx.Row) (types.Rule, error) {
	var rule types.Rule
	var actions json.RawMessage
	var lastTriggeredAt *time.Time

	err := row.Scan(&rule.ID, &rule.DeviceID, &rule.Name, &rule.Description, &rule.Operator, &rule.Threshold,
		&actions, &rule.CooldownMinutes, &lastTriggeredAt, &rule.Enabled)
	if err != nil {
		return types.Rule{}, err
	}

	err = json.Unmarshal(actions, &rule.Actions)
	if err != nil {
		return types.Rule{}, err
	}

	if lastTriggeredAt != nil {
		rule.LastTriggeredAt = *lastTriggeredAt
	}

	return rule, nil
}
