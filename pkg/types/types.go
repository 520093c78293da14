package types

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MetricVibration   = "vibration"
	MetricTemperature = "temperature"
	MetricPressure    = "pressure"
)

type DeviceType struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Metric      string          `json:"metric"`
	Unit        string          `json:"unit"`
	MetricMin   decimal.Decimal `json:"metricMin"`
	MetricMax   decimal.Decimal `json:"metricMax"`
}

const (
	DeviceStatusActive   = "active"
	DeviceStatusInactive = "inactive"
	DeviceStatusError    = "error"
)

type Device struct {
	ID           string    `json:"id"`
	DeviceTypeID string    `json:"deviceTypeID"`
	Name         string    `json:"name"`
	SerialNumber string    `json:"serialNumber"`
	Location     string    `json:"location,omitempty"`
	Status       string    `json:"status"`
	LastSeen     time.Time `json:"lastSeen,omitempty"`
}

// Reading is a single measurement for a single device. Readings are
// immutable once stored and may be purged by an external retention
// policy, so nothing in the engine holds on to a reading ID after the
// reading has been processed.
type Reading struct {
	ID            int64           `json:"id"`
	DeviceID      string          `json:"deviceID"`
	SchemaVersion string          `json:"schemaVersion"`
	Value         decimal.Decimal `json:"value"`
	Timestamp     time.Time       `json:"timestamp"`
}

const (
	OperatorGreaterThan        = "gt"
	OperatorLessThan           = "lt"
	OperatorGreaterThanOrEqual = "gte"
	OperatorLessThanOrEqual    = "lte"
	OperatorEqual              = "eq"
	OperatorNotEqual           = "neq"
)

type Rule struct {
	ID              string          `json:"id"`
	DeviceID        string          `json:"deviceID"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Operator        string          `json:"operator"`
	Threshold       decimal.Decimal `json:"threshold"`
	Actions         Actions         `json:"actions"`
	CooldownMinutes int             `json:"cooldownMinutes"`
	LastTriggeredAt time.Time       `json:"lastTriggeredAt,omitempty"`
	Enabled         bool            `json:"enabled"`
}

func (r Rule) Cooldown() time.Duration {
	return time.Duration(r.CooldownMinutes) * time.Minute
}

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

const (
	EventStatusNew          = "new"
	EventStatusAcknowledged = "acknowledged"
	EventStatusResolved     = "resolved"
)

const (
	ResultStatusPending   = "pending"
	ResultStatusCompleted = "completed"
	ResultStatusFailed    = "failed"
)

// ExecutionResult records the outcome of one planned action on an event.
type ExecutionResult struct {
	Type        string    `json:"type"`
	TemplateID  int64     `json:"template_id,omitempty"`
	MachineID   string    `json:"machine_id,omitempty"`
	Status      string    `json:"status"`
	SentCount   int       `json:"sent_count,omitempty"`
	FailedCount int       `json:"failed_count,omitempty"`
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// ReadingSnapshot is an immutable copy of the measurement that triggered
// an event, captured at fire time since the reading itself may later be
// purged by the retention policy.
type ReadingSnapshot struct {
	DeviceID      string          `json:"deviceID"`
	SerialNumber  string          `json:"serialNumber"`
	DeviceName    string          `json:"deviceName,omitempty"`
	Metric        string          `json:"metric"`
	Unit          string          `json:"unit,omitempty"`
	SchemaVersion string          `json:"schemaVersion,omitempty"`
	Value         decimal.Decimal `json:"value"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Event is the append-only audit record of a rule firing. The engine
// never mutates an event after creation, except for the per-action
// execution results; the operator-facing status field is only changed
// through the API.
type Event struct {
	ID               int64             `json:"id"`
	RuleID           string            `json:"ruleID"`
	Severity         string            `json:"severity"`
	Message          string            `json:"message"`
	Snapshot         ReadingSnapshot   `json:"snapshot"`
	ExecutionResults []ExecutionResult `json:"executionResults"`
	Status           string            `json:"status"`
	ObservedAt       time.Time         `json:"observedAt"`
}

const (
	ChannelEmail   = "email"
	ChannelSMS     = "sms"
	ChannelWebhook = "webhook"
)

type Recipient struct {
	Channel string `json:"type"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
}

type Template struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	MessageTemplate   string      `json:"messageTemplate"`
	Recipients        []Recipient `json:"recipients"`
	Priority          int         `json:"priority"`
	RetryCount        int         `json:"retryCount"`
	RetryDelayMinutes int         `json:"retryDelayMinutes"`
	Active            bool        `json:"active"`
}

func (t Template) RetryDelay() time.Duration {
	return time.Duration(t.RetryDelayMinutes) * time.Minute
}

const (
	DeliveryStatusPending = "pending"
	DeliveryStatusSent    = "sent"
	DeliveryStatusFailed  = "failed"
)

// Delivery is one attempted send of a rendered notification to one
// recipient, and the unit of retry bookkeeping. Deliveries are never
// deleted; a delivery that has exhausted its retry budget stays in
// terminal failed state for operator inspection.
type Delivery struct {
	ID            int64     `json:"id"`
	EventID       int64     `json:"eventID"`
	TemplateID    int64     `json:"templateID"`
	Channel       string    `json:"channel"`
	Address       string    `json:"address"`
	RecipientName string    `json:"recipientName,omitempty"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	Priority      int       `json:"priority"`
	AttemptCount  int       `json:"attemptCount"`
	LastAttemptAt time.Time `json:"lastAttemptAt,omitempty"`
	ClaimedAt     time.Time `json:"claimedAt,omitempty"`
	ErrorMessage  string    `json:"errorMessage,omitempty"`
	SentAt        time.Time `json:"sentAt,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// DeliveryTally summarises the deliveries spawned by one notification
// action on one event.
type DeliveryTally struct {
	Sent  int
	Dead  int
	Total int
}

// Decided reports whether no delivery remains in flight or retryable,
// i.e. the owning execution result can be finalised.
func (t DeliveryTally) Decided() bool {
	return t.Sent+t.Dead == t.Total
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
