package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/donald-madangure/nutrifit.ai/internal/logger"
	"github.com/donald-madangure/nutrifit.ai/internal/model"
)

// navigationDelay is how long the ended screen stays up before the deferred
// navigation fires.
const navigationDelay = time.Second

// meetingEndedNoise is the platform's post-hangup error chatter; it carries
// no signal once the call has ended.
const meetingEndedNoise = "Meeting has ended"

// VoiceClient is the slice of the voice platform the controller drives.
// Stop is asynchronous: the state transition happens on the call-end event,
// not on the Stop call itself.
type VoiceClient interface {
	Start(workflowID string, variables map[string]string) error
	Stop() error
}

// User is the authenticated user context a session starts with.
type User struct {
	ID        string
	FirstName string
	LastName  string
}

// FullName joins the optional name parts, defaulting to Guest.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return "Guest"
	}
	return name
}

// Snapshot is the UI-facing view of session state.
type Snapshot struct {
	Status     Status
	IsSpeaking bool
	Volume     float64
	Transcript []model.TranscriptMessage
}

// Controller owns call-lifecycle state. All mutation happens under one lock;
// the platform delivers events one at a time but nothing here depends on it.
type Controller struct {
	log        *zap.Logger
	client     VoiceClient
	workflowID string

	navigate func()
	navDelay time.Duration
	noise    func(zapcore.Entry) bool
	now      func() time.Time

	mu         sync.Mutex
	status     Status
	isSpeaking bool
	volume     float64
	transcript []model.TranscriptMessage
	navTimer   *time.Timer
	torn       bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithNavigator sets the deferred navigation fired after a call ends.
func WithNavigator(fn func()) Option {
	return func(c *Controller) { c.navigate = fn }
}

// WithNavigationDelay overrides the delay before deferred navigation.
func WithNavigationDelay(d time.Duration) Option {
	return func(c *Controller) { c.navDelay = d }
}

// WithNoiseFilter replaces the predicate deciding which log entries are
// platform noise to suppress.
func WithNoiseFilter(fn func(zapcore.Entry) bool) Option {
	return func(c *Controller) { c.noise = fn }
}

// NewController creates an idle controller for the given voice workflow.
func NewController(client VoiceClient, workflowID string, log *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		client:     client,
		workflowID: workflowID,
		status:     StatusIdle,
		navigate:   func() {},
		navDelay:   navigationDelay,
		now:        time.Now,
		noise: func(ent zapcore.Entry) bool {
			return strings.Contains(ent.Message, meetingEndedNoise)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	// Scoped replacement for a process-wide console patch: the noise filter
	// lives on this component's logger only.
	c.log = log.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return logger.Filtered(core, c.noise)
	}))
	return c
}

// Start opens a new session with the voice platform. Valid only from idle or
// ended, and only with a loaded user context. A failed open falls back to
// idle so the start affordance stays usable.
func (c *Controller) Start(user *User) error {
	c.mu.Lock()
	if c.torn {
		c.mu.Unlock()
		return errors.New("session controller is torn down")
	}
	if c.status != StatusIdle && c.status != StatusEnded {
		c.mu.Unlock()
		return errors.New("call already in progress")
	}
	if user == nil || user.ID == "" {
		c.mu.Unlock()
		return errors.New("user context not loaded")
	}

	c.status = StatusConnecting
	c.transcript = nil
	c.cancelNavigationLocked()
	variables := map[string]string{
		"full_name":   user.FullName(),
		"user_id":     user.ID,
		"current_day": c.now().Weekday().String(),
		"role_persona": "Nutrition and Fitness Coach",
		"day_format_instruction": "Please refer to workout days by their name (e.g., Monday, Tuesday) " +
			"starting from today, rather than saying Day 1 or Day 2.",
	}
	c.mu.Unlock()

	if err := c.client.Start(c.workflowID, variables); err != nil {
		c.log.Error("failed to start call", zap.Error(err))
		c.mu.Lock()
		if c.status == StatusConnecting {
			c.status = StatusIdle
		}
		c.mu.Unlock()
		return err
	}
	return nil
}

// Stop requests the platform end the session. Valid only from active; the
// call-end event performs the actual transition.
func (c *Controller) Stop() error {
	c.mu.Lock()
	if c.status != StatusActive {
		c.mu.Unlock()
		return errors.New("no active call to stop")
	}
	c.mu.Unlock()
	return c.client.Stop()
}

// HandleEvent applies one platform event to session state. Events delivered
// after teardown are discarded.
func (c *Controller) HandleEvent(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.torn {
		return
	}

	switch ev.Type {
	case EventCallStart:
		// Leaving ended requires an explicit new Start, not a stray event.
		if c.status == StatusEnded {
			return
		}
		c.status = StatusActive
	case EventCallEnd:
		c.status = StatusEnded
		c.isSpeaking = false
		c.scheduleNavigationLocked()
	case EventSpeechStart:
		c.isSpeaking = true
	case EventSpeechEnd:
		c.isSpeaking = false
	case EventVolumeLevel:
		c.volume = ev.Volume
	case EventTranscript:
		if ev.Transcript != nil {
			c.transcript = Reduce(c.transcript, *ev.Transcript)
		}
	case EventError:
		if ev.Err != nil {
			c.log.Error("voice platform error: " + ev.Err.Error())
		}
		// Retryable, not terminal: drop back to idle unless already ended.
		if c.status == StatusConnecting || c.status == StatusActive {
			c.status = StatusIdle
		}
		c.isSpeaking = false
	}
}

// Teardown cancels the deferred navigation and stops accepting events. Safe
// to call multiple times and on every exit path.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.torn = true
	c.cancelNavigationLocked()
}

// Snapshot returns a copy of the UI-facing state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	transcript := make([]model.TranscriptMessage, len(c.transcript))
	copy(transcript, c.transcript)
	return Snapshot{
		Status:     c.status,
		IsSpeaking: c.isSpeaking,
		Volume:     c.volume,
		Transcript: transcript,
	}
}

func (c *Controller) scheduleNavigationLocked() {
	c.cancelNavigationLocked()
	c.navTimer = time.AfterFunc(c.navDelay, c.navigate)
}

func (c *Controller) cancelNavigationLocked() {
	if c.navTimer != nil {
		c.navTimer.Stop()
		c.navTimer = nil
	}
}
