package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigNormalize(t *testing.T) {
	cfg := Config{BaseURL: "http://localhost:1234"}.Normalize()

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, DefaultLocale, cfg.Locale)

	custom := Config{
		BaseURL:  "http://localhost:1234",
		Timeout:  3 * time.Second,
		PageSize: 5,
		Locale:   "de",
	}.Normalize()
	assert.Equal(t, 3*time.Second, custom.Timeout)
	assert.Equal(t, 5, custom.PageSize)
	assert.Equal(t, "de", custom.Locale)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Config{BaseURL: "http://localhost:1234"}.Normalize(),
		},
		{
			name:    "empty base URL",
			cfg:     Config{},
			wantErr: ErrBaseURLEmpty,
		},
		{
			name:    "negative timeout",
			cfg:     Config{BaseURL: "http://x", Timeout: -time.Second},
			wantErr: ErrTimeoutInvalid,
		},
		{
			name:    "negative page size",
			cfg:     Config{BaseURL: "http://x", PageSize: -1},
			wantErr: ErrPageSizeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
