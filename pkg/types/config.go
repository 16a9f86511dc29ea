package types

import "time"

// Defaults applied by Config.Normalize.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultPageSize = 20
	DefaultLocale   = "en"
)

// Config holds backend connection and view defaults for a gridview session.
type Config struct {
	BaseURL  string        `json:"base_url" yaml:"base_url"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	PageSize int           `json:"page_size" yaml:"page_size"`
	Locale   string        `json:"locale" yaml:"locale"`
}

// Normalize fills zero-valued fields with their defaults.
func (c Config) Normalize() Config {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLEmpty
	}
	if c.Timeout < 0 {
		return ErrTimeoutInvalid
	}
	if c.PageSize < 0 {
		return ErrPageSizeInvalid
	}
	return nil
}
