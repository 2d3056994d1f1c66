package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expected      ConversationState
		expectedError bool
	}{
		{
			name:     "idle",
			raw:      "idle",
			expected: StateIdle,
		},
		{
			name:     "awaiting word pair",
			raw:      "awaiting_word_pair",
			expected: StateAwaitingWordPair,
		},
		{
			name:     "training",
			raw:      "training",
			expected: StateTraining,
		},
		{
			name:     "switch language",
			raw:      "switch_language",
			expected: StateSwitchLanguage,
		},
		{
			name:          "empty value is not a state",
			raw:           "",
			expectedError: true,
		},
		{
			name:          "unknown value is corrupt",
			raw:           "garbage",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := ParseState(tt.raw)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrCorruptState)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, state)
		})
	}
}
