package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/factoryedge/machine-rule-engine/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddEvent(ctx context.Context, event types.Event) (types.Event, error) {
	snapshot, err := json.Marshal(event.Snapshot)
	if err != nil {
		return types.Event{}, err
	}

	results, err := json.Marshal(event.ExecutionResults)
	if err != nil {
		return types.Event{}, err
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO events (rule_id, severity, message, snapshot, execution_results, status, observed_at)
		VALUES (@rule_id, @severity, @message, @snapshot, @execution_results, @status, @observed_at)
		RETURNING event_id
	`, pgx.NamedArgs{
		"rule_id":           event.RuleID,
		"severity":          event.Severity,
		"message":           event.Message,
		"snapshot":          string(snapshot),
		"execution_results": string(results),
		"status":            event.Status,
		"observed_at":       event.ObservedAt,
	}).Scan(&event.ID)
	if err != nil {
		return types.Event{}, err
	}

	return event, nil
}

func (s *Storage) GetEvent(ctx context.Context, eventID int64) (types.Event, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT event_id, rule_id, severity, message, snapshot, execution_results, status, observed_at
		FROM events
		WHERE event_id = @event_id
	`, pgx.NamedArgs{
		"event_id": eventID,
	})

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Event{}, ErrNoRows
		}
		return types.Event{}, err
	}

	return event, nil
}

func (s *Storage) QueryEvents(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Event], error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT event_id, rule_id, severity, message, snapshot, execution_results, status, observed_at, count(*) OVER () AS total
		FROM events
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy("observed_at"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Event]{}, err
	}
	defer rows.Close()

	events := make([]types.Event, 0)
	var total int64

	for rows.Next() {
		var event types.Event
		var snapshot, results json.RawMessage

		err = rows.Scan(&event.ID, &event.RuleID, &event.Severity, &event.Message, &snapshot, &results, &event.Status, &event.ObservedAt, &total)
		if err != nil {
			return types.Collection[types.Event]{}, err
		}

		var errs []error
		errs = append(errs, json.Unmarshal(snapshot, &event.Snapshot))
		errs = append(errs, json.Unmarshal(results, &event.ExecutionResults))
		if err := errors.Join(errs...); err != nil {
			return types.Collection[types.Event]{}, err
		}

		events = append(events, event)
	}
	if rows.Err() != nil {
		return types.Collection[types.Event]{}, rows.Err()
	}

	return types.Collection[types.Event]{
		Data:       events,
		Count:      uint64(len(events)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

// SetEventStatus is the operator-facing mutation path (acknowledge or
// resolve). The engine itself never changes an event after creation.
func (s *Storage) SetEventStatus(ctx context.Context, eventID int64, status string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE events
		SET status = @status
		WHERE event_id = @event_id
	`, pgx.NamedArgs{
		"event_id": eventID,
		"status":   status,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// SetExecutionResult replaces a single element of the execution_results
// array. jsonb_set keeps the update atomic per element, so the
// dispatcher and the retry scheduler can finalise different actions of
// the same event without clobbering each other.
func (s *Storage) SetExecutionResult(ctx context.Context, eventID int64, index int, result types.ExecutionResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE events
		SET execution_results = jsonb_set(execution_results, @path::text[], @result::jsonb)
		WHERE event_id = @event_id
	`, pgx.NamedArgs{
		"event_id": eventID,
		"path":     fmt.Sprintf("{%d}", index),
		"result":   string(b),
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func scanEvent(row pgx.Row) (types.Event, error) {
	var event types.Event
	var snapshot, results json.RawMessage

	err := row.Scan(&event.ID, &event.RuleID, &event.Severity, &event.Message, &snapshot, &results, &event.Status, &event.ObservedAt)
	if err != nil {
		return types.Event{}, err
	}

	var errs []error
	errs = append(errs, json.Unmarshal(snapshot, &event.Snapshot))
	errs = append(errs, json.Unmarshal(results, &event.ExecutionResults))

	return event, errors.Join(errs...)
}
