package domain

import "errors"

var (
	// ErrQuotaExceeded reports a candidate message denied by the quota gate.
	// Nothing is mutated; the caller keeps the text and may resend it.
	ErrQuotaExceeded = errors.New("trial word quota exceeded")

	// ErrEmptyMessage reports a blank or whitespace-only candidate, which is
	// short-circuited before quota evaluation.
	ErrEmptyMessage = errors.New("empty message")

	// ErrSendInFlight reports a send attempted while a previous round trip
	// has not resolved yet. Dispatch is serialized per session.
	ErrSendInFlight = errors.New("send already in flight")
)
