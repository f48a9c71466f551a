package directory

import "fmt"

// TransportError covers everything the remote directory can do wrong on the
// wire: unreachable host, non-2xx status, malformed payload. It is surfaced
// unmodified to the caller; this layer performs no retries.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("directory: %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("directory: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
