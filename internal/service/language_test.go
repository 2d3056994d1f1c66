package service

import (
	"testing"

	"vocadrill/internal/domain"
	"vocadrill/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestLanguageService_Switch(t *testing.T) {
	tests := []struct {
		name            string
		language        string
		expectValid     bool
		expectPersisted bool
	}{
		{
			name:            "supported language is persisted",
			language:        "ru",
			expectValid:     true,
			expectPersisted: true,
		},
		{
			name:        "unsupported language fails before persisting",
			language:    "fr",
			expectValid: false,
		},
		{
			name:        "empty language fails before persisting",
			language:    "",
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testutil.MockUserRepository)
			svc := NewLanguageService(repo, testutil.NewTestLogger())

			if tt.expectPersisted {
				repo.On("SetLanguage", int64(7), tt.language).Return(nil)
			}

			err := svc.Switch(7, tt.language)

			if tt.expectValid {
				assert.NoError(t, err)
				repo.AssertExpectations(t)
			} else {
				var validation *domain.ValidationError
				assert.ErrorAs(t, err, &validation)
				repo.AssertNotCalled(t, "SetLanguage")
			}
		})
	}
}
