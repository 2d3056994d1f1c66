package handler

import (
	"testing"

	"vocadrill/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newTestHandler() *Handler {
	return NewHandler(nil, nil, nil, nil, new(testutil.MockSessionStore), testutil.NewTestLogger())
}

// firstMatch returns the index of the route that would handle the text.
func firstMatch(h *Handler, text string) int {
	for i, r := range h.routes {
		if r.match(text) {
			return i
		}
	}
	return -1
}

func TestDispatchOrder(t *testing.T) {
	h := newTestHandler()
	catchAll := len(h.routes) - 1

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "start command",
			text:     "/start",
			expected: 0,
		},
		{
			name:     "back to menu button",
			text:     cmdBackToMenu.ButtonText,
			expected: 1,
		},
		{
			name:     "add word command",
			text:     "/add",
			expected: 2,
		},
		{
			name:     "train button",
			text:     cmdTrain.ButtonText,
			expected: 3,
		},
		{
			name:     "clue command",
			text:     "/clue",
			expected: 4,
		},
		{
			name:     "switch language button",
			text:     cmdSwitchLanguage.ButtonText,
			expected: 5,
		},
		{
			name:     "free text falls through to the state route",
			text:     "какой-то ответ",
			expected: catchAll,
		},
		{
			name:     "unknown command falls through to the state route",
			text:     "/unknown",
			expected: catchAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstMatch(h, tt.text))
		})
	}
}

func TestRouteTableEndsWithCatchAll(t *testing.T) {
	h := newTestHandler()

	last := h.routes[len(h.routes)-1]
	assert.True(t, last.match(""), "the final route must match everything")
	assert.True(t, last.match("/anything"))
	assert.True(t, last.match("any free text"))
}
