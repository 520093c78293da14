package storage

import (
	"context"
	"errors"
	"time"

	"github.com/factoryedge/machine-rule-engine/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddReading(ctx context.Context, reading types.Reading) (types.Reading, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO telemetry (device_id, schema_version, value, ts)
		VALUES (@device_id, @schema_version, @value, @ts)
		RETURNING reading_id
	`, pgx.NamedArgs{
		"device_id":      reading.DeviceID,
		"schema_version": reading.SchemaVersion,
		"value":          reading.Value,
		"ts":             reading.Timestamp,
	}).Scan(&reading.ID)
	if err != nil {
		return types.Reading{}, err
	}

	return reading, nil
}

func (s *Storage) GetReading(ctx context.Context, readingID int64) (types.Reading, error) {
	var reading types.Reading

	err := s.pool.QueryRow(ctx, `
		SELECT reading_id, device_id, schema_version, value, ts
		FROM telemetry
		WHERE reading_id = @reading_id
	`, pgx.NamedArgs{
		"reading_id": readingID,
	}).Scan(&reading.ID, &reading.DeviceID, &reading.SchemaVersion, &reading.Value, &reading.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Reading{}, ErrNoRows
		}
		return types.Reading{}, err
	}

	return reading, nil
}

// PurgeReadingsBefore implements the retention policy boundary. Events
// keep their own snapshot of the triggering reading, so purging old
// telemetry never affects recorded events.
func (s *Storage) PurgeReadingsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM telemetry WHERE ts < @cutoff
	`, pgx.NamedArgs{
		"cutoff": cutoff,
	})
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
