package engine

import "testing"

func TestEventInvokesAllListeners(t *testing.T) {
	var e Event
	calls := 0

	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls++ })
	e.AddListener(nil)

	e.Invoke()

	if calls != 2 {
		t.Errorf("Expected 2 listener calls, got %d", calls)
	}
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })

	e.RemoveAllListeners()
	e.Invoke()

	if calls != 0 {
		t.Errorf("Expected 0 calls after RemoveAllListeners, got %d", calls)
	}
}

func TestEventWithArgPassesValue(t *testing.T) {
	var e EventWithArg[string]
	var got string
	e.AddListener(func(s string) { got = s })

	e.Invoke("reloaded")

	if got != "reloaded" {
		t.Errorf("Expected listener to receive 'reloaded', got %q", got)
	}
}
