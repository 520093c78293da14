package types

import (
	"encoding/json"
	"fmt"
)

const (
	ActionTypeNotification = "notification"
	ActionTypeStopMachine  = "stop_machine"
)

// Action is a closed set of things a rule can do when it fires. Each
// variant is tagged by type on the wire so the dispatcher can match
// exhaustively instead of probing for keys.
type Action interface {
	ActionType() string
}

type NotificationAction struct {
	TemplateID int64 `json:"template_id"`
}

func (NotificationAction) ActionType() string { return ActionTypeNotification }

type StopMachineAction struct {
	MachineID string `json:"machine_id"`
}

func (StopMachineAction) ActionType() string { return ActionTypeStopMachine }

type Actions []Action

func (a Actions) MarshalJSON() ([]byte, error) {
	out := make([]map[string]any, 0, len(a))

	for _, action := range a {
		switch v := action.(type) {
		case NotificationAction:
			out = append(out, map[string]any{"type": ActionTypeNotification, "template_id": v.TemplateID})
		case StopMachineAction:
			out = append(out, map[string]any{"type": ActionTypeStopMachine, "machine_id": v.MachineID})
		default:
			return nil, fmt.Errorf("unknown action type %T", action)
		}
	}

	return json.Marshal(out)
}

func (a *Actions) UnmarshalJSON(data []byte) error {
	var raw []struct {
		Type       string `json:"type"`
		TemplateID int64  `json:"template_id"`
		MachineID  string `json:"machine_id"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	actions := make(Actions, 0, len(raw))

	for _, r := range raw {
		switch r.Type {
		case ActionTypeNotification:
			actions = append(actions, NotificationAction{TemplateID: r.TemplateID})
		case ActionTypeStopMachine:
			actions = append(actions, StopMachineAction{MachineID: r.MachineID})
		default:
			return fmt.Errorf("unknown action type %q", r.Type)
		}
	}

	*a = actions

	return nil
}

// UnmarshalJSON accepts the address under any of the channel specific
// keys used by older template configurations (address, phone or url).
func (r *Recipient) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    string `json:"type"`
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		URL     string `json:"url"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	r.Channel = raw.Type
	r.Name = raw.Name
	r.Address = raw.Address

	if r.Address == "" {
		if raw.Phone != "" {
			r.Address = raw.Phone
		} else if raw.URL != "" {
			r.Address = raw.URL
		}
	}

	return nil
}
