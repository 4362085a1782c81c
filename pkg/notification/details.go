// --- File: pkg/notification/details.go ---
package notification

// Importance controls how intrusively Android presents a notification's
// channel. The zero value is the platform default so callers that leave the
// field unset get default behaviour.
type Importance int

const (
	ImportanceDefault Importance = iota
	ImportanceNone
	ImportanceMin
	ImportanceLow
	ImportanceHigh
	ImportanceMax
)

var importanceNames = [...]string{"Default", "None", "Min", "Low", "High", "Max"}

// Valid reports whether i is one of the known importance levels.
func (i Importance) Valid() bool {
	return i >= ImportanceDefault && i <= ImportanceMax
}

func (i Importance) String() string {
	if !i.Valid() {
		return "Importance(unknown)"
	}
	return importanceNames[i]
}

// Priority controls how Android ranks a posted notification on devices that
// predate notification channels. The values are the platform's own, with the
// zero value meaning default.
type Priority int

const (
	PriorityMin     Priority = -2
	PriorityLow     Priority = -1
	PriorityDefault Priority = 0
	PriorityHigh    Priority = 1
	PriorityMax     Priority = 2
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	return p >= PriorityMin && p <= PriorityMax
}

// AndroidDetails carries the Android-only presentation options for a single
// notification. Only the fields a caller sets deviate from channel defaults.
type AndroidDetails struct {
	Icon               string
	ChannelID          string
	ChannelName        string
	ChannelDescription string
	Importance         Importance
	Priority           Priority
	PlaySound          bool
	Sound              string
	EnableVibration    bool
	VibrationPattern   []int64
	GroupKey           string
	SetAsGroupSummary  bool
	AutoCancel         bool
	Ongoing            bool
	LargeIcon          string
	Ticker             string
}

// IOSDetails carries the iOS-only presentation options for a single
// notification. The Present* flags override the defaults chosen at
// initialization; a nil BadgeNumber leaves the app badge untouched.
type IOSDetails struct {
	PresentAlert bool
	PresentSound bool
	PresentBadge bool
	Sound        string
	BadgeNumber  *int
}

// Details bundles the per-platform presentation options for one
// notification. Only the branch matching the running platform is ever
// consulted; the other is ignored.
type Details struct {
	Android *AndroidDetails
	IOS     *IOSDetails
}
