package storage

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	DeviceID     string
	SerialNumber string
	RuleID       string
	EventID      int64
	TemplateID   int64
	Status       string
	Severity     string
	Enabled      *bool
	Active       *bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.SerialNumber != "" {
		args["serial_number"] = c.SerialNumber
	}
	if c.RuleID != "" {
		args["rule_id"] = c.RuleID
	}
	if c.EventID != 0 {
		args["event_id"] = c.EventID
	}
	if c.TemplateID != 0 {
		args["template_id"] = c.TemplateID
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if c.Severity != "" {
		args["severity"] = c.Severity
	}
	if c.Enabled != nil {
		args["enabled"] = *c.Enabled
	}
	if c.Active != nil {
		args["active"] = *c.Active
	}
	if c.offset != nil {
		args["offset"] = *c.offset
	}
	if c.limit != nil {
		args["limit"] = *c.limit
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}
	if c.SerialNumber != "" {
		where = append(where, "serial_number = @serial_number")
	}
	if c.RuleID != "" {
		where = append(where, "rule_id = @rule_id")
	}
	if c.EventID != 0 {
		where = append(where, "event_id = @event_id")
	}
	if c.TemplateID != 0 {
		where = append(where, "template_id = @template_id")
	}
	if c.Status != "" {
		where = append(where, "status = @status")
	}
	if c.Severity != "" {
		where = append(where, "severity = @severity")
	}
	if c.Enabled != nil {
		where = append(where, "enabled = @enabled")
	}
	if c.Active != nil {
		where = append(where, "active = @active")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func (c Condition) SortBy(def string) string {
	if c.sortBy == "" {
		return def
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += "OFFSET @offset "
	}
	if c.limit != nil {
		offsetLimit += "LIMIT @limit "
	}

	return offsetLimit
}

func newCondition(conditions ...ConditionFunc) *Condition {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	return condition
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithSerialNumber(serialNumber string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SerialNumber = serialNumber
		return c
	}
}

func WithRuleID(ruleID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.RuleID = ruleID
		return c
	}
}

func WithEventID(eventID int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.EventID = eventID
		return c
	}
}

func WithTemplateID(templateID int64) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TemplateID = templateID
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithSeverity(severity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severity = severity
		return c
	}
}

func WithEnabled(enabled bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Enabled = &enabled
		return c
	}
}

func WithActive(active bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Active = &active
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = sortBy
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}
