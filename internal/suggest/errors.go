package suggest

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a suggestion failure. The UI collapses these into two
// user-facing buckets: configuration and authentication problems the user
// cannot fix, and everything else, which is worth retrying.
type Kind int

const (
	// KindConfiguration means no credential is available at all. This is
	// operator-fixable, not user-fixable.
	KindConfiguration Kind = iota

	// KindAuthentication means the upstream rejected the credential.
	KindAuthentication

	// KindEmptyResponse means the upstream answered but produced no
	// usable text.
	KindEmptyResponse

	// KindTransient covers network failures, rate limits and malformed
	// responses. These are the only failures a UI should invite the user
	// to retry.
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindAuthentication:
		return "authentication"
	case KindEmptyResponse:
		return "empty_response"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Retryable reports whether the user should be invited to try again.
func (k Kind) Retryable() bool {
	return k == KindEmptyResponse || k == KindTransient
}

// Error is a classified suggestion failure.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// AsError extracts a classified error, if err carries one.
func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// KindOf returns the kind of a classified error, defaulting to transient
// for anything unclassified.
func KindOf(err error) Kind {
	if se, ok := AsError(err); ok {
		return se.Kind
	}
	return KindTransient
}

// classify wraps a raw upstream failure with a kind. This is the one
// place where string inspection of upstream error text is allowed; the
// rest of the system only ever looks at the Kind.
func classify(err error) *Error {
	lower := strings.ToLower(err.Error())
	for _, marker := range []string{"api key", "permission denied", "authentication", "unauthenticated", "401", "403"} {
		if strings.Contains(lower, marker) {
			return &Error{
				Kind: KindAuthentication,
				msg:  "credential rejected by the generation service",
				err:  err,
			}
		}
	}
	return &Error{
		Kind: KindTransient,
		msg:  "generation request failed",
		err:  err,
	}
}
