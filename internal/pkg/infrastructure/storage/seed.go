package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/factoryedge/machine-rule-engine/pkg/types"
	"github.com/google/uuid"
)

// SeedDeviceTypes creates any configured device types that do not exist
// yet. Referenced types are immutable apart from description and range,
// so an existing type only has those fields refreshed.
func SeedDeviceTypes(ctx context.Context, s *Storage, deviceTypes []types.DeviceType) error {
	log := logging.GetFromContext(ctx)

	for _, dt := range deviceTypes {
		if dt.ID == "" {
			dt.ID = uuid.NewString()
		}

		err := s.AddDeviceType(ctx, dt)
		if errors.Is(err, ErrAlreadyExists) {
			existing, err := s.GetDeviceTypeByName(ctx, dt.Name)
			if err != nil {
				return err
			}

			err = s.updateDeviceTypeRange(ctx, existing.ID, dt.Description, dt)
			if err != nil {
				return err
			}

			continue
		}
		if err != nil {
			return fmt.Errorf("could not seed device type %s: %w", dt.Name, err)
		}
	}

	log.Info("seeded device types", "count", len(deviceTypes))

	return nil
}

func SeedDevices(ctx context.Context, s *Storage, devices []types.Device) error {
	log := logging.GetFromContext(ctx)

	created := 0

	for _, d := range devices {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		if d.Status == "" {
			d.Status = types.DeviceStatusActive
		}

		if d.DeviceTypeID == "" {
			log.Warn("device has no device type, skipping", "serial_number", d.SerialNumber)
			continue
		}

		// the config refers to device types by name
		dt, err := s.GetDeviceTypeByName(ctx, d.DeviceTypeID)
		if err != nil {
			return fmt.Errorf("device %s refers to unknown device type %s", d.SerialNumber, d.DeviceTypeID)
		}
		d.DeviceTypeID = dt.ID

		err = s.AddDevice(ctx, d)
		if errors.Is(err, ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not seed device %s: %w", d.SerialNumber, err)
		}

		created++
	}

	log.Info("seeded devices", "count", created)

	return nil
}

func SeedTemplates(ctx context.Context, s *Storage, templates []types.Template) error {
	log := logging.GetFromContext(ctx)

	created := 0

	for _, t := range templates {
		_, err := s.AddTemplate(ctx, t)
		if errors.Is(err, ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not seed notification template %s: %w", t.Name, err)
		}

		created++
	}

	log.Info("seeded notification templates", "count", created)

	return nil
}

func (s *Storage) updateDeviceTypeRange(ctx context.Context, deviceTypeID, description string, dt types.DeviceType) error {
	if dt.MetricMin.GreaterThanOrEqual(dt.MetricMax) {
		return fmt.Errorf("metric range of device type %s is invalid (min must be less than max)", dt.Name)
	}

	_, err := s.pool.Exec(ctx, `
		UPDATE device_types
		SET description = $1, metric_min = $2, metric_max = $3
		WHERE device_type_id = $4
	`, description, dt.MetricMin, dt.MetricMax, deviceTypeID)

	return err
}
