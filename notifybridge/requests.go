// --- File: notifybridge/requests.go ---
package notifybridge

import "github.com/tinywideclouds/go-notification-bridge/pkg/notification"

// Request bodies for the native calls. Every operation sends one explicit
// struct, serialized only at the channel boundary; platformSpecifics holds
// whatever the platform encoder produced for the current platform.

type showRequest struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Body              string `json:"body"`
	PlatformSpecifics any    `json:"platformSpecifics,omitempty"`
	Payload           string `json:"payload"`
}

type scheduleRequest struct {
	showRequest
	MillisecondsSinceEpoch int64 `json:"millisecondsSinceEpoch"`
}

type periodicRequest struct {
	showRequest
	CalledAt       int64 `json:"calledAt"`
	RepeatInterval int   `json:"repeatInterval"`
}

type dailyRequest struct {
	periodicRequest
	RepeatTime notification.TimeOfDay `json:"repeatTime"`
}

type weeklyRequest struct {
	dailyRequest
	Day int `json:"day"`
}

type remoteRegistrationRequest struct {
	Alert bool `json:"alert"`
	Badge bool `json:"badge"`
	Sound bool `json:"sound"`
}

type launchDetailsReply struct {
	NotificationLaunchedApp bool    `json:"notificationLaunchedApp"`
	Payload                 *string `json:"payload"`
}
