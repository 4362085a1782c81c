// --- File: pkg/notification/errors.go ---
package notification

import "errors"

// Caller-contract violations. The facade fails these synchronously; they
// never reach the native layer.
var (
	// ErrIDOutOfRange is returned when a notification id does not fit in a
	// signed 32-bit integer.
	ErrIDOutOfRange = errors.New("notification: id outside signed 32-bit range")

	// ErrInvalidTimeOfDay is returned when an hour, minute or second field
	// is outside its valid range.
	ErrInvalidTimeOfDay = errors.New("notification: time of day out of range")

	// ErrInvalidDay is returned for a day-of-week value outside 1..7.
	ErrInvalidDay = errors.New("notification: unknown day of week")

	// ErrInvalidRepeatInterval is returned for a repeat interval outside the
	// known set.
	ErrInvalidRepeatInterval = errors.New("notification: unknown repeat interval")

	// ErrInvalidImportance is returned for an importance level outside the
	// known set.
	ErrInvalidImportance = errors.New("notification: unknown importance")

	// ErrInvalidPriority is returned for a priority level outside the known
	// set.
	ErrInvalidPriority = errors.New("notification: unknown priority")

	// ErrUnknownPlatform is returned when a platform string names neither
	// android nor ios.
	ErrUnknownPlatform = errors.New("notification: unknown platform")
)
