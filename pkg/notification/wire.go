// --- File: pkg/notification/wire.go ---
package notification

// Outbound call names, as the native side registers them.
const (
	MethodInitialize                      = "initialize"
	MethodShow                            = "show"
	MethodCancel                          = "cancel"
	MethodCancelAll                       = "cancelAll"
	MethodSchedule                        = "schedule"
	MethodPeriodicallyShow                = "periodicallyShow"
	MethodShowDailyAtTime                 = "showDailyAtTime"
	MethodShowWeeklyAtDayAndTime          = "showWeeklyAtDayAndTime"
	MethodRegisterForRemoteNotifications  = "registerForRemoteNotifications"
	MethodGetNotificationAppLaunchDetails = "getNotificationAppLaunchDetails"
)

// Inbound event names, as the native side emits them.
const (
	EventSelectNotification      = "selectNotification"
	EventDidReceiveLocal         = "didReceiveLocalNotification"
	EventTokenRegistered         = "didRegisterForRemoteNotificationsWithDeviceToken"
	EventTokenRegistrationFailed = "didRegisterForRemoteNotificationsFailed"
	EventRemoteReceived          = "didReceiveRemoteNotification"
)
