package hypixel

import "github.com/steviee/go-hypixel/internal/apierr"

// Error is the error type returned by every Client method.
type Error = apierr.Error

// Kind classifies an Error.
type Kind = apierr.Kind

// Error kinds.
const (
	KindUnknown             = apierr.KindUnknown
	KindInvalidArgument     = apierr.KindInvalidArgument
	KindMalformedCredential = apierr.KindMalformedCredential
	KindCredentialRequired  = apierr.KindCredentialRequired
	KindInvalidCredential   = apierr.KindInvalidCredential
	KindNotFound            = apierr.KindNotFound
	KindPlayerNotFound      = apierr.KindPlayerNotFound
	KindKeyNotFound         = apierr.KindKeyNotFound
	KindGuildNotFound       = apierr.KindGuildNotFound
	KindRateLimited         = apierr.KindRateLimited
	KindTimeout             = apierr.KindTimeout
	KindClosedSession       = apierr.KindClosedSession
	KindTransport           = apierr.KindTransport
)

// Sentinel errors for errors.Is. A specific error also matches its broader
// kinds, e.g. a missing guild matches ErrGuildNotFound, ErrNotFound,
// ErrInvalidArgument and ErrHypixel.
var (
	ErrHypixel             = apierr.ErrHypixel
	ErrInvalidArgument     = apierr.ErrInvalidArgument
	ErrMalformedCredential = apierr.ErrMalformedCredential
	ErrCredentialRequired  = apierr.ErrCredentialRequired
	ErrInvalidCredential   = apierr.ErrInvalidCredential
	ErrNotFound            = apierr.ErrNotFound
	ErrPlayerNotFound      = apierr.ErrPlayerNotFound
	ErrKeyNotFound         = apierr.ErrKeyNotFound
	ErrGuildNotFound       = apierr.ErrGuildNotFound
	ErrRateLimited         = apierr.ErrRateLimited
	ErrTimeout             = apierr.ErrTimeout
	ErrClosedSession       = apierr.ErrClosedSession
	ErrTransport           = apierr.ErrTransport
)

// IsRetryable reports whether retrying the call later may succeed.
func IsRetryable(err error) bool {
	return apierr.IsRetryable(err)
}
