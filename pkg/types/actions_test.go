package types

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestActionsRoundTrip(t *testing.T) {
	is := is.New(t)

	actions := Actions{
		NotificationAction{TemplateID: 5},
		StopMachineAction{MachineID: "press-7"},
	}

	b, err := json.Marshal(actions)
	is.NoErr(err)

	var decoded Actions
	is.NoErr(json.Unmarshal(b, &decoded))

	is.Equal(len(decoded), 2)
	is.Equal(decoded[0], NotificationAction{TemplateID: 5})
	is.Equal(decoded[1], StopMachineAction{MachineID: "press-7"})
}

func TestActionsRejectUnknownType(t *testing.T) {
	is := is.New(t)

	var actions Actions
	err := json.Unmarshal([]byte(`[{"type":"sound_horn"}]`), &actions)
	is.True(err != nil)
}

func TestRecipientAcceptsLegacyAddressKeys(t *testing.T) {
	is := is.New(t)

	var r Recipient
	is.NoErr(json.Unmarshal([]byte(`{"type":"sms","name":"shift lead","phone":"+46701234567"}`), &r))
	is.Equal(r.Channel, ChannelSMS)
	is.Equal(r.Address, "+46701234567")

	is.NoErr(json.Unmarshal([]byte(`{"type":"webhook","name":"mes","url":"https://mes.local/hook"}`), &r))
	is.Equal(r.Address, "https://mes.local/hook")

	is.NoErr(json.Unmarshal([]byte(`{"type":"email","name":"ops","address":"ops@factory.example"}`), &r))
	is.Equal(r.Address, "ops@factory.example")
}
