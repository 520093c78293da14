package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/factoryedge/machine-rule-engine/pkg/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *Storage) AddDeviceType(ctx context.Context, dt types.DeviceType) error {
	if dt.MetricMin.GreaterThanOrEqual(dt.MetricMax) {
		return fmt.Errorf("metric range of device type %s is invalid (min must be less than max)", dt.Name)
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO device_types (device_type_id, name, description, metric, unit, metric_min, metric_max)
		VALUES (@device_type_id, @name, @description, @metric, @unit, @metric_min, @metric_max)
	`, pgx.NamedArgs{
		"device_type_id": dt.ID,
		"name":           dt.Name,
		"description":    dt.Description,
		"metric":         dt.Metric,
		"unit":           dt.Unit,
		"metric_min":     dt.MetricMin,
		"metric_max":     dt.MetricMax,
	})
	if isDuplicateKey(err) {
		return ErrAlreadyExists
	}

	return err
}

func (s *Storage) GetDeviceType(ctx context.Context, deviceTypeID string) (types.DeviceType, error) {
	var dt types.DeviceType

	err := s.pool.QueryRow(ctx, `
		SELECT device_type_id, name, description, metric, unit, metric_min, metric_max
		FROM device_types
		WHERE device_type_id = @device_type_id
	`, pgx.NamedArgs{
		"device_type_id": deviceTypeID,
	}).Scan(&dt.ID, &dt.Name, &dt.Description, &dt.Metric, &dt.Unit, &dt.MetricMin, &dt.MetricMax)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DeviceType{}, ErrNoRows
		}
		return types.DeviceType{}, err
	}

	return dt, nil
}

func (s *Storage) GetDeviceTypeByName(ctx context.Context, name string) (types.DeviceType, error) {
	var dt types.DeviceType

	err := s.pool.QueryRow(ctx, `
		SELECT device_type_id, name, description, metric, unit, metric_min, metric_max
		FROM device_types
		WHERE name = @name
	`, pgx.NamedArgs{
		"name": name,
	}).Scan(&dt.ID, &dt.Name, &dt.Description, &dt.Metric, &dt.Unit, &dt.MetricMin, &dt.MetricMax)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.DeviceType{}, ErrNoRows
		}
		return types.DeviceType{}, err
	}

	return dt, nil
}

// DeleteDeviceType refuses to remove a type that is still referenced by
// any device.
func (s *Storage) DeleteDeviceType(ctx context.Context, deviceTypeID string) error {
	var n int64

	err := s.pool.QueryRow(ctx, `
		SELECT count(*) FROM devices WHERE device_type_id = @device_type_id
	`, pgx.NamedArgs{
		"device_type_id": deviceTypeID,
	}).Scan(&n)
	if err != nil {
		return err
	}

	if n > 0 {
		return ErrDeleteProtected
	}

	_, err = s.pool.Exec(ctx, `
		DELETE FROM device_types WHERE device_type_id = @device_type_id
	`, pgx.NamedArgs{
		"device_type_id": deviceTypeID,
	})
	if isForeignKeyViolation(err) {
		return ErrDeleteProtected
	}

	return err
}

func (s *Storage) AddDevice(ctx context.Context, device types.Device) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO devices (device_id, device_type_id, name, serial_number, location, status)
		VALUES (@device_id, @device_type_id, @name, @serial_number, @location, @status)
	`, pgx.NamedArgs{
		"device_id":      device.ID,
		"device_type_id": device.DeviceTypeID,
		"name":           device.Name,
		"serial_number":  device.SerialNumber,
		"location":       device.Location,
		"status":         device.Status,
	})
	if isDuplicateKey(err) {
		return ErrAlreadyExists
	}

	return err
}

func (s *Storage) GetDevice(ctx context.Context, conditions ...ConditionFunc) (types.Device, error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT device_id, device_type_id, name, serial_number, location, status, last_seen
		FROM devices
		WHERE %s
	`, condition.Where())

	var device types.Device
	var lastSeen *time.Time

	err := s.pool.QueryRow(ctx, query, condition.NamedArgs()).
		Scan(&device.ID, &device.DeviceTypeID, &device.Name, &device.SerialNumber, &device.Location, &device.Status, &lastSeen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	if lastSeen != nil {
		device.LastSeen = *lastSeen
	}

	return device, nil
}

func (s *Storage) QueryDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Device], error) {
	condition := newCondition(conditions...)

	query := fmt.Sprintf(`
		SELECT device_id, device_type_id, name, serial_number, location, status, last_seen, count(*) OVER () AS total
		FROM devices
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy("serial_number"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	var device types.Device
	var lastSeen *time.Time
	var total int64

	devices := make([]types.Device, 0)

	_, err = pgx.ForEachRow(rows, []any{&device.ID, &device.DeviceTypeID, &device.Name, &device.SerialNumber, &device.Location, &device.Status, &lastSeen, &total}, func() error {
		d := device
		if lastSeen != nil {
			d.LastSeen = *lastSeen
		} else {
			d.LastSeen = time.Time{}
		}
		devices = append(devices, d)
		return nil
	})
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

// UpdateLastSeen advances a device's last seen timestamp. Readings may
// arrive out of order, so a timestamp older than the stored one is a
// no-op rather than a regression.
func (s *Storage) UpdateLastSeen(ctx context.Context, deviceID string, seenAt time.Time) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE devices
		SET last_seen = @seen_at, modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id AND (last_seen IS NULL OR last_seen <= @seen_at)
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"seen_at":   seenAt,
	})

	return err
}

func (s *Storage) SetDeviceStatus(ctx context.Context, deviceID, status string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE devices
		SET status = @status, modified_on = CURRENT_TIMESTAMP
		WHERE device_id = @device_id
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"status":    status,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
