package employee

import (
	"testing"
	"time"
)

// SetPublishTimeout shortens the publish bound for one test.
func SetPublishTimeout(t *testing.T, d time.Duration) {
	t.Helper()
	prev := publishTimeout
	publishTimeout = d
	t.Cleanup(func() { publishTimeout = prev })
}
