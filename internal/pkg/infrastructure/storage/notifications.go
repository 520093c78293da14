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

func (s *Storage) AddTemplate(ctx context.Context, t types.Template) (types.Template, error) {
	recipients, err := json.Marshal(t.Recipients)
	if err != nil {
		return types.Template{}, err
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO notification_templates (name, message_template, recipients, priority, retry_count, retry_delay_minutes, active)
		VALUES (@name, @message_template, @recipients, @priority, @retry_count, @retry_delay_minutes, @active)
		RETURNING template_id
	`, pgx.NamedArgs{
		"name":                t.Name,
		"message_template":    t.MessageTemplate,
		"recipients":          string(recipients),
		"priority":            t.Priority,
		"retry_count":         t.RetryCount,
		"retry_delay_minutes": t.RetryDelayMinutes,
		"active":              t.Active,
	}).Scan(&t.ID)
	if isDuplicateKey(err) {
		return types.Template{}, ErrAlreadyExists
	}
	if err != nil {
		return types.Template{}, err
	}

	return t, nil
}

func (s *Storage) GetTemplate(ctx context.Context, templateID int64) (types.Template, error) {
	var t types.Template
	var recipients json.RawMessage

	err := s.pool.QueryRow(ctx, `
		SELECT template_id, name, message_template, recipients, priority, retry_count, retry_delay_minutes, active
		FROM notification_templates
		WHERE template_id = @template_id
	`, pgx.NamedArgs{
		"template_id": templateID,
	}).Scan(&t.ID, &t.Name, &t.MessageTemplate, &recipients, &t.Priority, &t.RetryCount, &t.RetryDelayMinutes, &t.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Template{}, ErrNoRows
		}
		return types.Template{}, err
	}

	err = json.Unmarshal(recipients, &t.Recipients)
	if err != nil {
		return types.Template{}, err
	}

	return t, nil
}

func (s *Storage) GetTemplateByName(ctx context.Context, name string) (types.Template, error) {
	var t types.Template
	var recipients json.RawMessage

	err := s.pool.QueryRow(ctx, `
		SELECT template_id, name, message_template, recipients, priority, retry_count, retry_delay_minutes, active
		FROM notification_templates
		WHERE name = @name
	`, pgx.NamedArgs{
		"name": name,
	}).Scan(&t.ID, &t.Name, &t.MessageTemplate, &recipients, &t.Priority, &t.RetryCount, &t.RetryDelayMinutes, &t.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Template{}, ErrNoRows
		}
		return types.Template{}, err
	}

	err = json.Unmarshal(recipients, &t.Recipients)
	if err != nil {
		return types.Template{}, err
	}

	return t, nil
}

// AddDeliveries inserts the fan-out of one notification action. The
// rows are created pending with claimed_at set, since the dispatcher
// sends them right away; a crash before the first attempt leaves them
// claimable by the retry scheduler once the claim times out.
func (s *Storage) AddDeliveries(ctx context.Context, deliveries []types.Delivery) ([]types.Delivery, error) {
	added := make([]types.Delivery, 0, len(deliveries))

	for _, d := range deliveries {
		err := s.pool.QueryRow(ctx, `
			INSERT INTO notification_deliveries (event_id, template_id, channel, address, recipient_name, message, status, priority, claimed_at)
			VALUES (@event_id, @template_id, @channel, @address, @recipient_name, @message, @status, @priority, @claimed_at)
			RETURNING delivery_id, created_on
		`, pgx.NamedArgs{
			"event_id":       d.EventID,
			"template_id":    d.TemplateID,
			"channel":        d.Channel,
			"address":        d.Address,
			"recipient_name": d.RecipientName,
			"message":        d.Message,
			"status":         d.Status,
			"priority":       d.Priority,
			"claimed_at":     d.ClaimedAt,
		}).Scan(&d.ID, &d.CreatedAt)
		if err != nil {
			return added, err
		}

		added = append(added, d)
	}

	return added, nil
}

func (s *Storage) QueryDeliveries(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Delivery], error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT delivery_id, event_id, template_id, channel, address, recipient_name, message, status, priority,
		       attempt_count, last_attempt_at, claimed_at, error_message, sent_at, created_on, count(*) OVER () AS total
		FROM notification_deliveries
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy("created_on"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Delivery]{}, err
	}
	defer rows.Close()

	deliveries := make([]types.Delivery, 0)
	var total int64

	for rows.Next() {
		var d types.Delivery
		var lastAttemptAt, claimedAt, sentAt *time.Time

		err = rows.Scan(&d.ID, &d.EventID, &d.TemplateID, &d.Channel, &d.Address, &d.RecipientName, &d.Message,
			&d.Status, &d.Priority, &d.AttemptCount, &lastAttemptAt, &claimedAt, &d.ErrorMessage, &sentAt, &d.CreatedAt, &total)
		if err != nil {
			return types.Collection[types.Delivery]{}, err
		}

		if lastAttemptAt != nil {
			d.LastAttemptAt = *lastAttemptAt
		}
		if claimedAt != nil {
			d.ClaimedAt = *claimedAt
		}
		if sentAt != nil {
			d.SentAt = *sentAt
		}

		deliveries = append(deliveries, d)
	}
	if rows.Err() != nil {
		return types.Collection[types.Delivery]{}, rows.Err()
	}

	return types.Collection[types.Delivery]{
		Data:       deliveries,
		Count:      uint64(len(deliveries)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

// MarkDeliverySent transitions pending to the terminal sent state. The
// status guard makes the transition idempotent: a delivery that has
// already been decided is left untouched.
func (s *Storage) MarkDeliverySent(ctx context.Context, deliveryID int64, sentAt time.Time) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE notification_deliveries
		SET status = 'sent', sent_at = @sent_at, claimed_at = NULL
		WHERE delivery_id = @delivery_id AND status = 'pending'
	`, pgx.NamedArgs{
		"delivery_id": deliveryID,
		"sent_at":     sentAt,
	})

	return err
}

func (s *Storage) MarkDeliveryFailed(ctx context.Context, deliveryID int64, attemptedAt time.Time, errorMessage string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE notification_deliveries
		SET status = 'failed', attempt_count = attempt_count + 1, last_attempt_at = @attempted_at,
		    claimed_at = NULL, error_message = @error_message
		WHERE delivery_id = @delivery_id AND status = 'pending'
	`, pgx.NamedArgs{
		"delivery_id":   deliveryID,
		"attempted_at":  attemptedAt,
		"error_message": errorMessage,
	})

	return err
}

// ClaimRetries atomically selects and claims deliveries that are due
// for another attempt: failed rows with remaining budget whose retry
// delay has passed, plus pending rows whose claim went stale (a worker
// crashed mid-send). Claimed rows flip to pending with a fresh
// claimed_at, so an overlapping tick cannot select them again; SKIP
// LOCKED keeps concurrent ticks from blocking on each other.
func (s *Storage) ClaimRetries(ctx context.Context, now time.Time, claimTimeout time.Duration, limit int) ([]types.Delivery, error) {
	rows, err := s.pool.Query(ctx, `
		WITH eligible AS (
			SELECT d.delivery_id
			FROM notification_deliveries d
			JOIN notification_templates t ON t.template_id = d.template_id
			WHERE (d.status = 'failed'
			       AND d.attempt_count < t.retry_count
			       AND d.last_attempt_at <= @now - make_interval(mins => t.retry_delay_minutes))
			   OR (d.status = 'pending'
			       AND d.claimed_at IS NOT NULL
			       AND d.claimed_at <= @now - make_interval(secs => @claim_timeout_secs))
			ORDER BY d.priority, d.created_on
			LIMIT @batch_limit
			FOR UPDATE OF d SKIP LOCKED
		)
		UPDATE notification_deliveries d
		SET status = 'pending', claimed_at = @now
		FROM eligible e
		WHERE d.delivery_id = e.delivery_id
		RETURNING d.delivery_id, d.event_id, d.template_id, d.channel, d.address, d.recipient_name, d.message,
		          d.status, d.priority, d.attempt_count, d.last_attempt_at, d.claimed_at, d.error_message, d.sent_at, d.created_on
	`, pgx.NamedArgs{
		"now":                now,
		"claim_timeout_secs": claimTimeout.Seconds(),
		"batch_limit":        limit,
	})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]types.Delivery, 0)

	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, rows.Err()
}

// DeliveryTally counts how the deliveries of one (event, template)
// fan-out have resolved so far. A failed delivery only counts as dead
// once its retry budget is exhausted.
func (s *Storage) DeliveryTally(ctx context.Context, eventID, templateID int64) (types.DeliveryTally, error) {
	var tally types.DeliveryTally

	err := s.pool.QueryRow(ctx, `
		SELECT count(*) FILTER (WHERE d.status = 'sent') AS sent,
		       count(*) FILTER (WHERE d.status = 'failed' AND d.attempt_count >= t.retry_count) AS dead,
		       count(*) AS total
		FROM notification_deliveries d
		JOIN notification_templates t ON t.template_id = d.template_id
		WHERE d.event_id = @event_id AND d.template_id = @template_id
	`, pgx.NamedArgs{
		"event_id":    eventID,
		"template_id": templateID,
	}).Scan(&tally.Sent, &tally.Dead, &tally.Total)
	if err != nil {
		return types.DeliveryTally{}, err
	}

	return tally, nil
}

func scanDelivery(row pgx.Row) (types.Delivery, error) {
	var d types.Delivery
	var lastAttemptAt, claimedAt, sentAt *time.Time

	err := row.Scan(&d.ID, &d.EventID, &d.TemplateID, &d.Channel, &d.Address, &d.RecipientName, &d.Message,
		&d.Status, &d.Priority, &d.AttemptCount, &lastAttemptAt, &claimedAt, &d.ErrorMessage, &sentAt, &d.CreatedAt)
	if err != nil {
		return types.Delivery{}, err
	}

	if lastAttemptAt != nil {
		d.LastAttemptAt = *lastAttemptAt
	}
	if claimedAt != nil {
		d.ClaimedAt = *claimedAt
	}
	if sentAt != nil {
		d.SentAt = *sentAt
	}

	return d, nil
}
