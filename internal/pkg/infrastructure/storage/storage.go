package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows          = errors.New("no rows in result set")
	ErrQueryRow        = errors.New("could not execute query")
	ErrStoreFailed     = errors.New("could not store data")
	ErrAlreadyExists   = errors.New("already exists")
	ErrDeleteProtected = errors.New("referenced by other records")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS device_types (
			device_type_id	TEXT NOT NULL,
			name        	TEXT NOT NULL,
			description 	TEXT NOT NULL DEFAULT '',
			metric      	TEXT NOT NULL,
			unit        	TEXT NOT NULL,
			metric_min  	NUMERIC(15,4) NOT NULL,
			metric_max  	NUMERIC(15,4) NOT NULL,
			created_on  	TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (device_type_id),
			UNIQUE (name)
		);

		CREATE TABLE IF NOT EXISTS devices (
			device_id     	TEXT NOT NULL,
			device_type_id	TEXT NOT NULL REFERENCES device_types (device_type_id) ON DELETE RESTRICT,
			name          	TEXT NOT NULL,
			serial_number 	TEXT NOT NULL,
			location      	TEXT NOT NULL DEFAULT '',
			status        	TEXT NOT NULL DEFAULT 'active',
			last_seen     	TIMESTAMPTZ NULL,
			created_on    	TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on   	TIMESTAMPTZ NULL,
			PRIMARY KEY (device_id),
			UNIQUE (serial_number)
		);

		CREATE TABLE IF NOT EXISTS telemetry (
			reading_id    	BIGSERIAL,
			device_id     	TEXT NOT NULL REFERENCES devices (device_id) ON DELETE CASCADE,
			schema_version	TEXT NOT NULL DEFAULT '',
			value         	NUMERIC(15,4) NOT NULL,
			ts            	TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (reading_id)
		);
		CREATE INDEX IF NOT EXISTS idx_telemetry_device_ts ON telemetry (device_id, ts DESC);

		CREATE TABLE IF NOT EXISTS rules (
			rule_id          	TEXT NOT NULL,
			device_id        	TEXT NOT NULL REFERENCES devices (device_id) ON DELETE CASCADE,
			name             	TEXT NOT NULL,
			description      	TEXT NOT NULL DEFAULT '',
			operator         	TEXT NOT NULL,
			threshold        	NUMERIC(15,4) NOT NULL,
			actions          	JSONB NOT NULL DEFAULT '[]',
			cooldown_minutes 	INTEGER NOT NULL DEFAULT 15,
			last_triggered_at	TIMESTAMPTZ NULL,
			enabled          	BOOLEAN NOT NULL DEFAULT TRUE,
			created_on       	TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on      	TIMESTAMPTZ NULL,
			PRIMARY KEY (rule_id)
		);
		CREATE INDEX IF NOT EXISTS idx_rules_device_enabled ON rules (device_id, enabled);

		CREATE TABLE IF NOT EXISTS events (
			event_id         	BIGSERIAL,
			rule_id          	TEXT NOT NULL REFERENCES rules (rule_id) ON DELETE CASCADE,
			severity         	TEXT NOT NULL,
			message          	TEXT NOT NULL,
			snapshot         	JSONB NOT NULL,
			execution_results	JSONB NOT NULL DEFAULT '[]',
			status           	TEXT NOT NULL DEFAULT 'new',
			observed_at      	TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (event_id)
		);
		CREATE INDEX IF NOT EXISTS idx_events_status_observed ON events (status, observed_at DESC);

		CREATE TABLE IF NOT EXISTS notification_templates (
			template_id        	BIGSERIAL,
			name               	TEXT NOT NULL,
			message_template   	TEXT NOT NULL,
			recipients         	JSONB NOT NULL DEFAULT '[]',
			priority           	INTEGER NOT NULL DEFAULT 1,
			retry_count        	INTEGER NOT NULL DEFAULT 3,
			retry_delay_minutes	INTEGER NOT NULL DEFAULT 5,
			active             	BOOLEAN NOT NULL DEFAULT TRUE,
			PRIMARY KEY (template_id),
			UNIQUE (name)
		);

		CREATE TABLE IF NOT EXISTS notification_deliveries (
			delivery_id    	BIGSERIAL,
			event_id       	BIGINT NOT NULL REFERENCES events (event_id) ON DELETE CASCADE,
			template_id    	BIGINT NOT NULL REFERENCES notification_templates (template_id) ON DELETE RESTRICT,
			channel        	TEXT NOT NULL,
			address        	TEXT NOT NULL,
			recipient_name 	TEXT NOT NULL DEFAULT '',
			message        	TEXT NOT NULL,
			status         	TEXT NOT NULL DEFAULT 'pending',
			priority       	INTEGER NOT NULL DEFAULT 1,
			attempt_count  	INTEGER NOT NULL DEFAULT 0,
			last_attempt_at	TIMESTAMPTZ NULL,
			claimed_at     	TIMESTAMPTZ NULL,
			error_message  	TEXT NOT NULL DEFAULT '',
			sent_at        	TIMESTAMPTZ NULL,
			created_on     	TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (delivery_id)
		);
		CREATE INDEX IF NOT EXISTS idx_deliveries_event ON notification_deliveries (event_id);
		CREATE INDEX IF NOT EXISTS idx_deliveries_retry ON notification_deliveries (status, attempt_count, last_attempt_at);
	`)

	return err
}
