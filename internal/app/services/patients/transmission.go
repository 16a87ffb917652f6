package patients

import (
	"fmt"
	"time"
)

// TimeSinceTransmission renders how long ago a patient's monitor last
// reported, for the dashboard list.
func TimeSinceTransmission(now, last time.Time) string {
	minutes := int(now.Sub(last).Minutes())
	switch {
	case minutes < 1:
		return "now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%dh ago", minutes/60)
	default:
		return fmt.Sprintf("%dd ago", minutes/(24*60))
	}
}
