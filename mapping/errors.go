package mapping

import "errors"

var (
	// ErrMissingSrcDesc reports a field or method visited without the
	// source descriptor its consumer declared it needs.
	ErrMissingSrcDesc = errors.New("source descriptor required but absent")

	ErrMissingDstDesc = errors.New("destination descriptor required but absent")

	// ErrDuplicateElement reports a second visit of the same element in
	// one pass to a consumer that declared NeedsUniqueness.
	ErrDuplicateElement = errors.New("element visited more than once")

	// ErrUnexpectedRestart reports VisitEnd asking for another pass from
	// a consumer that did not declare NeedsMultiplePasses.
	ErrUnexpectedRestart = errors.New("visitor requested another pass without NeedsMultiplePasses")

	// ErrContentMetadata reports metadata visited after VisitContent to
	// a consumer that declared NeedsHeaderMetadata.
	ErrContentMetadata = errors.New("metadata visited outside the header")

	ErrTooManyPasses  = errors.New("too many visitation passes")
	ErrNamespaceIndex = errors.New("destination namespace index out of range")
	ErrProtocol       = errors.New("visitor protocol violation")
)
