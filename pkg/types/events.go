package types

import "time"

type EventCreated struct {
	EventID   int64     `json:"eventID"`
	RuleID    string    `json:"ruleID"`
	DeviceID  string    `json:"deviceID"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EventCreated) ContentType() string {
	return "application/json"
}
func (e *EventCreated) TopicName() string {
	return "event.created"
}

type MachineStopRequested struct {
	MachineID string    `json:"machineID"`
	EventID   int64     `json:"eventID"`
	RuleID    string    `json:"ruleID"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *MachineStopRequested) ContentType() string {
	return "application/json"
}
func (m *MachineStopRequested) TopicName() string {
	return "machine.stopRequested"
}

type DeviceStatusUpdated struct {
	DeviceID  string    `json:"deviceID"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (d *DeviceStatusUpdated) ContentType() string {
	return "application/json"
}
func (d *DeviceStatusUpdated) TopicName() string {
	return "device.statusUpdated"
}
