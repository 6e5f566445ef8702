package events

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func RequireEventAttribute(t *testing.T, event sdk.Event, key, expectedValue string, msgAndArgs ...any) {
	t.Helper()
	for _, attr := range event.Attributes {
		if attr.Key == key {
			require.Equal(t, expectedValue, attr.Value, msgAndArgs...)
			return
		}
	}
	require.Fail(t, "Expected attribute not found", msgAndArgs...)
}

// RequireLastEvent returns the last emitted event of eventType.
func RequireLastEvent(t *testing.T, events sdk.Events, eventType string) sdk.Event {
	t.Helper()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == eventType {
			return events[i]
		}
	}
	require.Failf(t, "Expected event not found", "no %s event among %d events", eventType, len(events))
	return sdk.Event{}
}
