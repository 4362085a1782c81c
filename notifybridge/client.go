// Package notifybridge is the application-facing entry point: one Client per
// process talks to the native notification subsystem over a channel, issues
// scheduling calls, and routes inbound native events to callbacks registered
// at construction.
package notifybridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tinywideclouds/go-notification-bridge/internal/pipeline"
	"github.com/tinywideclouds/go-notification-bridge/internal/platform"
	"github.com/tinywideclouds/go-notification-bridge/internal/platform/android"
	"github.com/tinywideclouds/go-notification-bridge/internal/platform/ios"
	"github.com/tinywideclouds/go-notification-bridge/internal/registration"
	"github.com/tinywideclouds/go-notification-bridge/pkg/channel"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
	"github.com/tinywideclouds/go-notification-bridge/pkg/tokensink"
)

// tokenDeliveryTimeout bounds the background post of a device token to the
// configured sink.
const tokenDeliveryTimeout = 30 * time.Second

// Client is the notification facade. Construct it once with New; all
// methods are safe for concurrent use. Initialize must complete before any
// other call is made, otherwise the native side rejects the request.
type Client struct {
	channel   channel.Channel
	encoder   platform.Encoder
	registrar *registration.Registrar
	clock     func() time.Time
	logger    *slog.Logger
	onToken   notification.TokenHandler
	sink      tokensink.Sink

	mu           sync.RWMutex
	localHandler notification.LocalNotificationHandler
}

// New assembles a client for the given platform. The platform encoder is
// resolved here, once; the inbound event handler is installed on the channel
// before New returns, so events cannot slip past unobserved.
func New(p notification.Platform, ch channel.Channel, opts ...Option) (*Client, error) {
	if ch == nil {
		return nil, fmt.Errorf("notifybridge: channel is required")
	}

	// 1. Platform encoder
	var encoder platform.Encoder
	switch p {
	case notification.PlatformAndroid:
		encoder = android.NewEncoder()
	case notification.PlatformIOS:
		encoder = ios.NewEncoder()
	default:
		return nil, fmt.Errorf("%w: %q", notification.ErrUnknownPlatform, string(p))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger.With("component", "NotifyBridge", "platform", string(p))

	// 2. Registration bookkeeping
	registrar := registration.NewRegistrar(cfg.logger)

	client := &Client{
		channel:   ch,
		encoder:   encoder,
		registrar: registrar,
		clock:     cfg.clock,
		logger:    logger,
		onToken:   cfg.onToken,
		sink:      cfg.sink,
	}

	// 3. Inbound event routing
	processor := pipeline.NewProcessor(pipeline.Callbacks{
		OnTap:               cfg.onTap,
		OnLocalNotification: client.dispatchLocalNotification,
		OnToken:             client.handleToken,
	}, registrar, cfg.logger)
	ch.SetEventHandler(processor)

	return client, nil
}

// Initialize performs native setup: it shapes this platform's branch of the
// settings, remembers the foreground-display callback when the platform has
// one, and reports whether the native side accepted the configuration.
func (c *Client) Initialize(ctx context.Context, settings notification.InitializationSettings) (bool, error) {
	args, err := c.encoder.InitializationArgs(settings)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.localHandler = c.encoder.LocalNotificationHandler(settings)
	c.mu.Unlock()

	result, err := c.channel.Invoke(ctx, notification.MethodInitialize, args)
	if err != nil {
		return false, err
	}
	return decodeBool(result)
}

// Show displays a notification immediately. The payload comes back through
// the tap callback if the user selects the notification; pass "" for none.
func (c *Client) Show(ctx context.Context, id int, title, body string, details *notification.Details, payload string) error {
	req, err := c.showRequest(id, title, body, details, payload)
	if err != nil {
		return err
	}
	_, err = c.channel.Invoke(ctx, notification.MethodShow, req)
	return err
}

// Cancel removes a single notification. Cancelling an id that was never
// shown is the native side's concern, not an error here.
func (c *Client) Cancel(ctx context.Context, id int) error {
	if err := notification.ValidateID(id); err != nil {
		return err
	}
	_, err := c.channel.Invoke(ctx, notification.MethodCancel, id)
	return err
}

// CancelAll removes every notification this app has shown or scheduled.
func (c *Client) CancelAll(ctx context.Context) error {
	_, err := c.channel.Invoke(ctx, notification.MethodCancelAll, nil)
	return err
}

// Schedule displays a notification once at an absolute time. The time is
// carried as milliseconds since epoch, so its zone is irrelevant.
func (c *Client) Schedule(ctx context.Context, id int, title, body string, when time.Time, details *notification.Details, payload string) error {
	req, err := c.showRequest(id, title, body, details, payload)
	if err != nil {
		return err
	}
	_, err = c.channel.Invoke(ctx, notification.MethodSchedule, scheduleRequest{
		showRequest:            req,
		MillisecondsSinceEpoch: when.UnixMilli(),
	})
	return err
}

// PeriodicallyShow repeats a notification at the given interval, starting
// one interval after the call.
func (c *Client) PeriodicallyShow(ctx context.Context, id int, title, body string, interval notification.RepeatInterval, details *notification.Details, payload string) error {
	if !interval.Valid() {
		return fmt.Errorf("%w: %d", notification.ErrInvalidRepeatInterval, int(interval))
	}
	req, err := c.showRequest(id, title, body, details, payload)
	if err != nil {
		return err
	}
	_, err = c.channel.Invoke(ctx, notification.MethodPeriodicallyShow, periodicRequest{
		showRequest:    req,
		CalledAt:       c.clock().UnixMilli(),
		RepeatInterval: int(interval),
	})
	return err
}

// ShowDailyAtTime repeats a notification daily at the given wall-clock
// time; the native side computes the next occurrence in local time.
func (c *Client) ShowDailyAtTime(ctx context.Context, id int, title, body string, at notification.TimeOfDay, details *notification.Details, payload string) error {
	if err := at.Validate(); err != nil {
		return err
	}
	req, err := c.showRequest(id, title, body, details, payload)
	if err != nil {
		return err
	}
	_, err = c.channel.Invoke(ctx, notification.MethodShowDailyAtTime, dailyRequest{
		periodicRequest: periodicRequest{
			showRequest:    req,
			CalledAt:       c.clock().UnixMilli(),
			RepeatInterval: int(notification.Daily),
		},
		RepeatTime: at,
	})
	return err
}

// ShowWeeklyAtDayAndTime repeats a notification weekly on the given day at
// the given wall-clock time.
func (c *Client) ShowWeeklyAtDayAndTime(ctx context.Context, id int, title, body string, day notification.Day, at notification.TimeOfDay, details *notification.Details, payload string) error {
	if !day.Valid() {
		return fmt.Errorf("%w: %d", notification.ErrInvalidDay, int(day))
	}
	if err := at.Validate(); err != nil {
		return err
	}
	req, err := c.showRequest(id, title, body, details, payload)
	if err != nil {
		return err
	}
	_, err = c.channel.Invoke(ctx, notification.MethodShowWeeklyAtDayAndTime, weeklyRequest{
		dailyRequest: dailyRequest{
			periodicRequest: periodicRequest{
				showRequest:    req,
				CalledAt:       c.clock().UnixMilli(),
				RepeatInterval: int(notification.Weekly),
			},
			RepeatTime: at,
		},
		Day: int(day),
	})
	return err
}

// RegisterForRemoteNotifications returns the device token for remote
// pushes. The first caller issues one native request; concurrent callers
// wait on the same request, and once the token event has arrived every
// later call resolves from cache without native traffic.
func (c *Client) RegisterForRemoteNotifications(ctx context.Context, opts notification.RemoteRegistrationOptions) (string, error) {
	return c.registrar.Register(ctx, func(ctx context.Context) error {
		_, err := c.channel.Invoke(ctx, notification.MethodRegisterForRemoteNotifications, remoteRegistrationRequest{
			Alert: opts.Alert,
			Badge: opts.Badge,
			Sound: opts.Sound,
		})
		return err
	})
}

// GetNotificationAppLaunchDetails reports whether a notification tap
// launched the app. Payload is nil when the reply carries no payload key.
func (c *Client) GetNotificationAppLaunchDetails(ctx context.Context) (notification.AppLaunchDetails, error) {
	result, err := c.channel.Invoke(ctx, notification.MethodGetNotificationAppLaunchDetails, nil)
	if err != nil {
		return notification.AppLaunchDetails{}, err
	}

	var reply launchDetailsReply
	if len(result) > 0 {
		if err := json.Unmarshal(result, &reply); err != nil {
			return notification.AppLaunchDetails{}, fmt.Errorf("notifybridge: decode launch details: %w", err)
		}
	}
	return notification.AppLaunchDetails{
		NotificationLaunchedApp: reply.NotificationLaunchedApp,
		Payload:                 reply.Payload,
	}, nil
}

// showRequest validates the id and shapes the common body of every show and
// schedule call. Validation failures happen before any channel traffic.
func (c *Client) showRequest(id int, title, body string, details *notification.Details, payload string) (showRequest, error) {
	if err := notification.ValidateID(id); err != nil {
		return showRequest{}, err
	}
	specifics, err := c.encoder.DetailsArgs(details)
	if err != nil {
		return showRequest{}, err
	}
	return showRequest{
		ID:                id,
		Title:             title,
		Body:              body,
		PlatformSpecifics: specifics,
		Payload:           payload,
	}, nil
}

func (c *Client) dispatchLocalNotification(id int, title, body, payload string) {
	c.mu.RLock()
	handler := c.localHandler
	c.mu.RUnlock()

	if handler != nil {
		handler(id, title, body, payload)
	}
}

// handleToken runs on the channel's event goroutine: the user callback is
// invoked inline, the sink delivery moves to its own goroutine so a slow
// backend cannot stall event processing.
func (c *Client) handleToken(token string) {
	if c.onToken != nil {
		c.onToken(token)
	}
	if c.sink != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), tokenDeliveryTimeout)
			defer cancel()
			if err := c.sink.Deliver(ctx, token); err != nil {
				c.logger.Error("Token delivery to backend failed.", "err", err)
			}
		}()
	}
}

func decodeBool(result json.RawMessage) (bool, error) {
	if len(result) == 0 {
		return false, nil
	}
	var ok bool
	if err := json.Unmarshal(result, &ok); err != nil {
		return false, fmt.Errorf("notifybridge: decode reply: %w", err)
	}
	return ok, nil
}
