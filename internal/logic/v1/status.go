package v1

// Activity levels returned by ClassifyActivity.
const (
	StatusHighlyActive = "Highly active"
	StatusActive       = "Active"
	StatusInactive     = "Inactive"
)

const (
	highlyActiveMinutes = 120
	activeMinutes       = 20
)

// ClassifyActivity maps total active minutes onto a coarse activity level.
// Lower bounds are inclusive: 20 is Active, 120 is Highly active.
func ClassifyActivity(minutes int64) string {
	switch {
	case minutes >= highlyActiveMinutes:
		return StatusHighlyActive
	case minutes >= activeMinutes:
		return StatusActive
	default:
		return StatusInactive
	}
}
