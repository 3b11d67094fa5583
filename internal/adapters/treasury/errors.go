package treasury

import "fmt"

// UpstreamTransportError reports a failed call to the Treasury endpoint:
// a connection failure (StatusCode 0), a non-2xx status, or an undecodable body.
type UpstreamTransportError struct {
	StatusCode int
	Body       string
	Malformed  bool
	Err        error
}

func (e *UpstreamTransportError) Error() string {
	switch {
	case e.Malformed:
		return fmt.Sprintf("treasury: malformed response (status %d): %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("treasury: unexpected status %d: %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("treasury: request failed: %v", e.Err)
	}
}

func (e *UpstreamTransportError) Unwrap() error {
	return e.Err
}
