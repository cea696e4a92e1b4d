package feed

import (
	"context"
	"errors"
	"fmt"
	"net"

	"badgeview/internal/pages"
)

var (
	// ErrNetworkUnavailable indicates the hosting root could not be reached.
	ErrNetworkUnavailable = errors.New("feed: network unavailable")
	// ErrTimeout indicates a request exceeded its deadline.
	ErrTimeout = errors.New("feed: request timed out")
)

// HTTPError captures a non-2xx response from the hosting root.
type HTTPError struct {
	Status   int
	Endpoint string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("feed: %s returned status %d", e.Endpoint, e.Status)
}

// MalformedError indicates a document decoded but is unusable for its
// page: missing required fields or invalid JSON. It fails that page's
// fetch only, never the whole cycle.
type MalformedError struct {
	Page   pages.Page
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("feed: malformed payload for %s: %s", e.Page, e.Reason)
}

func malformed(page pages.Page, reason string) error {
	return &MalformedError{Page: page, Reason: reason}
}

// classifyTransport maps raw transport failures onto the error
// taxonomy. Deadline and net timeout errors become ErrTimeout;
// everything else at the transport layer is ErrNetworkUnavailable.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
}
