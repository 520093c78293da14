package notifications

import (
	"strings"
	"time"

	"github.com/factoryedge/machine-rule-engine/pkg/types"
)

// Render substitutes the {placeholder} fields of a message template
// with values from the event's reading snapshot. Unknown placeholders
// are left as-is rather than erroring, so a template typo degrades to
// an ugly message instead of a lost notification.
func Render(template string, event types.Event) string {
	r := strings.NewReplacer(
		"{severity}", event.Severity,
		"{message}", event.Message,
		"{device_name}", event.Snapshot.DeviceName,
		"{serial_number}", event.Snapshot.SerialNumber,
		"{metric}", event.Snapshot.Metric,
		"{unit}", event.Snapshot.Unit,
		"{value}", event.Snapshot.Value.String(),
		"{timestamp}", event.Snapshot.Timestamp.Format(time.RFC3339),
	)

	return r.Replace(template)
}
