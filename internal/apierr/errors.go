// Package apierr defines the single error type returned by every layer of the
// client. Each error carries a Kind; kinds may also match broader kinds so
// callers can check with errors.Is at the granularity they need.
package apierr

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies an Error.
type Kind int

const (
	// KindUnknown is the root kind. Every error matches it.
	KindUnknown Kind = iota
	// KindInvalidArgument is malformed input to a public operation.
	KindInvalidArgument
	// KindMalformedCredential is an API key that is not uuid shaped.
	KindMalformedCredential
	// KindCredentialRequired means the request needs a key and none is configured.
	KindCredentialRequired
	// KindInvalidCredential means the upstream rejected a well-formed key.
	KindInvalidCredential
	// KindNotFound groups the not found variants below.
	KindNotFound
	KindPlayerNotFound
	KindKeyNotFound
	KindGuildNotFound
	// KindRateLimited means the upstream rate limited us and local handling is off.
	KindRateLimited
	// KindTimeout means the configured time budget was exceeded.
	KindTimeout
	// KindClosedSession means the session was released before the call.
	KindClosedSession
	// KindTransport is any other unsuccessful upstream response.
	KindTransport
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindInvalidArgument:
		return "invalid argument"
	case KindMalformedCredential:
		return "malformed credential"
	case KindCredentialRequired:
		return "credential required"
	case KindInvalidCredential:
		return "invalid credential"
	case KindNotFound:
		return "not found"
	case KindPlayerNotFound:
		return "player not found"
	case KindKeyNotFound:
		return "key not found"
	case KindGuildNotFound:
		return "guild not found"
	case KindRateLimited:
		return "rate limited"
	case KindTimeout:
		return "timeout"
	case KindClosedSession:
		return "closed session"
	case KindTransport:
		return "transport"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// parents lists the broader kinds a kind also matches.
var parents = map[Kind][]Kind{
	KindMalformedCredential: {KindInvalidCredential, KindInvalidArgument},
	KindCredentialRequired:  {KindInvalidCredential, KindInvalidArgument},
	KindInvalidCredential:   {KindInvalidArgument},
	KindNotFound:            {KindInvalidArgument},
	KindPlayerNotFound:      {KindNotFound, KindInvalidArgument},
	KindKeyNotFound:         {KindNotFound, KindInvalidArgument},
	KindGuildNotFound:       {KindNotFound, KindInvalidArgument},
	KindRateLimited:         {KindTransport},
}

// Matches reports whether k is target or a narrower kind of target.
func (k Kind) Matches(target Kind) bool {
	if k == target || target == KindUnknown {
		return true
	}
	for _, p := range parents[k] {
		if p == target {
			return true
		}
	}
	return false
}

// API names used in errors.
const (
	APIHypixel = "hypixel"
	APIMojang  = "mojang"
)

// Error is the error type returned by the client.
type Error struct {
	Kind Kind
	// API is the upstream the error relates to, if any.
	API string
	// Subject is the player, key, guild or path the error is about.
	Subject string
	// StatusCode is the HTTP status of the failing response, 0 if none.
	StatusCode int
	// RetryAfter is the server supplied wait. Zero when the API did not provide one.
	RetryAfter time.Duration
	Message    string
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, honoring the parent table.
// Only the Kind of target is compared.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind.Matches(t.Kind)
}

// Sentinels for errors.Is checks.
var (
	ErrHypixel             = &Error{Kind: KindUnknown, Message: "hypixel client error"}
	ErrInvalidArgument     = &Error{Kind: KindInvalidArgument}
	ErrMalformedCredential = &Error{Kind: KindMalformedCredential}
	ErrCredentialRequired  = &Error{Kind: KindCredentialRequired}
	ErrInvalidCredential   = &Error{Kind: KindInvalidCredential}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrPlayerNotFound      = &Error{Kind: KindPlayerNotFound}
	ErrKeyNotFound         = &Error{Kind: KindKeyNotFound}
	ErrGuildNotFound       = &Error{Kind: KindGuildNotFound}
	ErrRateLimited         = &Error{Kind: KindRateLimited}
	ErrTimeout             = &Error{Kind: KindTimeout}
	ErrClosedSession       = &Error{Kind: KindClosedSession, Message: "session is closed"}
	ErrTransport           = &Error{Kind: KindTransport}
)

// InvalidArgument builds a KindInvalidArgument error.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// MalformedCredential builds the error for a key that is not uuid shaped.
func MalformedCredential(key string, cause error) *Error {
	return &Error{
		Kind:    KindMalformedCredential,
		API:     APIHypixel,
		Subject: key,
		Message: "API key is not a valid uuid string",
		Err:     cause,
	}
}

// CredentialRequired builds the error for a path that needs a key.
func CredentialRequired(path string) *Error {
	return &Error{
		Kind:    KindCredentialRequired,
		API:     APIHypixel,
		Subject: path,
		Message: fmt.Sprintf("%s requires an API key to be used", path),
	}
}

// InvalidCredential builds the error for a key rejected upstream.
func InvalidCredential(key string) *Error {
	return &Error{
		Kind:       KindInvalidCredential,
		API:        APIHypixel,
		Subject:    key,
		StatusCode: 403,
		Message:    "API key is not valid",
	}
}

// PlayerNotFound builds the error for a player that did not yield a response.
func PlayerNotFound(api, player string) *Error {
	return &Error{
		Kind:    KindPlayerNotFound,
		API:     api,
		Subject: player,
		Message: fmt.Sprintf("player %q did not yield a response", player),
	}
}

// KeyNotFound builds the error for a key record that is absent.
func KeyNotFound(key string) *Error {
	return &Error{
		Kind:    KindKeyNotFound,
		API:     APIHypixel,
		Subject: key,
		Message: fmt.Sprintf("key %q did not yield a response", key),
	}
}

// GuildNotFound builds the error for a guild that is absent.
func GuildNotFound(guild string) *Error {
	return &Error{
		Kind:    KindGuildNotFound,
		API:     APIHypixel,
		Subject: guild,
		Message: fmt.Sprintf("guild %q did not yield a response", guild),
	}
}

// RateLimited builds the error for a 429 that is not handled locally.
// retryAfter is zero when the API does not supply one.
func RateLimited(api string, retryAfter time.Duration) *Error {
	msg := fmt.Sprintf("you are being rate limited (%s)", api)
	if retryAfter > 0 {
		msg = fmt.Sprintf("%s, try again in %s", msg, retryAfter)
	}
	return &Error{
		Kind:       KindRateLimited,
		API:        api,
		StatusCode: 429,
		RetryAfter: retryAfter,
		Message:    msg,
	}
}

// Timeout builds the error for an exceeded time budget.
func Timeout(api string, cause error) *Error {
	return &Error{
		Kind:    KindTimeout,
		API:     api,
		Message: fmt.Sprintf("request to the %s API timed out", api),
		Err:     cause,
	}
}

// Transport builds the error for any other unsuccessful response.
// An empty message falls back to a generic one.
func Transport(api string, status int, message string, cause error) *Error {
	if message == "" {
		message = fmt.Sprintf("an unknown error occurred with the %s API", api)
	}
	return &Error{
		Kind:       KindTransport,
		API:        api,
		StatusCode: status,
		Message:    message,
		Err:        cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
// It returns KindUnknown and false if there is none.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindUnknown, false
}

// IsRetryable reports whether retrying the call later may succeed.
func IsRetryable(err error) bool {
	k, ok := KindOf(err)
	if !ok {
		return false
	}
	switch k {
	case KindRateLimited, KindTimeout:
		return true
	case KindTransport:
		var e *Error
		errors.As(err, &e)
		return e.StatusCode == 0 || e.StatusCode >= 500
	default:
		return false
	}
}
