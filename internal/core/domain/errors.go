package domain

import "fmt"

// ConfigError reports a missing required credential or setting. It is
// returned before any network call is attempted.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Missing)
}

// UpstreamError reports a rejected generation request or an unusable
// generation response. Body carries the raw upstream response text.
type UpstreamError struct {
	Message string
	Body    string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Body)
}

// RelayError reports a failed gateway delivery. Detail carries the
// subprocess output or HTTP response body.
type RelayError struct {
	Transport string
	Detail    string
}

func (e *RelayError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("relay via %s failed", e.Transport)
	}

	return fmt.Sprintf("relay via %s failed: %s", e.Transport, e.Detail)
}
