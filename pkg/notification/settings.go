// --- File: pkg/notification/settings.go ---
package notification

// AndroidInitializationSettings configures the Android side once, before any
// notification is shown.
type AndroidInitializationSettings struct {
	// DefaultIcon names a drawable resource used when a notification does
	// not specify its own icon.
	DefaultIcon string
}

// IOSInitializationSettings configures the iOS side once, before any
// notification is shown. The Request* flags ask the user for the matching
// permissions during initialization.
type IOSInitializationSettings struct {
	RequestAlertPermission bool
	RequestSoundPermission bool
	RequestBadgePermission bool

	// OnLocalNotification is invoked when a notification arrives while the
	// app is in the foreground on iOS versions that do not present foreground
	// notifications themselves. It never crosses the wire.
	OnLocalNotification LocalNotificationHandler `json:"-"`
}

// InitializationSettings carries the per-platform initialization options.
// Only the branch matching the running platform is consulted.
type InitializationSettings struct {
	Android *AndroidInitializationSettings
	IOS     *IOSInitializationSettings
}

// AppLaunchDetails reports whether the app was started by the user tapping a
// notification, and if so with which payload. Payload is nil when the app
// was launched normally.
type AppLaunchDetails struct {
	NotificationLaunchedApp bool
	Payload                 *string
}

// RemoteRegistrationOptions selects the alert styles requested when
// registering for remote notifications. The flags only influence the
// permission prompt on platforms that have one.
type RemoteRegistrationOptions struct {
	Alert bool
	Badge bool
	Sound bool
}
