// Package walleterr holds the failure taxonomy shared by the wallet packages.
// Every failure surfaced to a caller carries one stable Kind tag; the tag is
// what the HTTP layer maps to a status code and what callers match with
// errors.Is.
package walleterr

import (
	"errors"
	"fmt"
)

// Kind is the stable tag of a wallet failure.
type Kind string

const (
	KindInvalidPhrase             Kind = "INVALID_PHRASE"
	KindChecksumMismatch          Kind = "CHECKSUM_MISMATCH"
	KindInvalidChildDerivation    Kind = "INVALID_CHILD_DERIVATION"
	KindInvalidAddress            Kind = "INVALID_ADDRESS"
	KindInvalidTransactionRequest Kind = "INVALID_TRANSACTION_REQUEST"
	KindSigningFailure            Kind = "SIGNING_FAILURE"
	KindNetworkUnavailable        Kind = "NETWORK_UNAVAILABLE"
)

func (k Kind) String() string {
	return string(k)
}

// IsClientError reports whether the kind is caused by malformed caller input.
func (k Kind) IsClientError() bool {
	switch k {
	case KindInvalidPhrase, KindChecksumMismatch, KindInvalidAddress, KindInvalidTransactionRequest:
		return true
	default:
		return false
	}
}

// Sentinels for errors.Is matching. Only the Kind is compared.
var (
	ErrInvalidPhrase             = &Error{Kind: KindInvalidPhrase}
	ErrChecksumMismatch          = &Error{Kind: KindChecksumMismatch}
	ErrInvalidChildDerivation    = &Error{Kind: KindInvalidChildDerivation}
	ErrInvalidAddress            = &Error{Kind: KindInvalidAddress}
	ErrInvalidTransactionRequest = &Error{Kind: KindInvalidTransactionRequest}
	ErrSigningFailure            = &Error{Kind: KindSigningFailure}
	ErrNetworkUnavailable        = &Error{Kind: KindNetworkUnavailable}
)

// Error is a wallet failure with a stable kind and a human readable detail.
// Detail must never contain key material or the seed phrase.
type Error struct {
	Kind   Kind
	Detail string
	cause  error
}

// New returns an error of the given kind.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Newf returns an error of the given kind with a formatted detail.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap tags cause with kind. A nil cause yields a nil error.
func Wrap(cause error, kind Kind, detail string) error {
	if cause == nil {
		return nil
	}

	return &Error{Kind: kind, Detail: detail, cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Detail == "" && e.cause == nil:
		return e.Kind.String()
	case e.cause == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	case e.Detail == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.cause)
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// KindOf returns the kind of the first wallet error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}

// DetailOf returns the detail of the first wallet error in err's chain.
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}

	return ""
}
