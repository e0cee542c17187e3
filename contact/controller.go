package contact

import (
	"context"
	"errors"
	"time"

	"github.com/vignesh-b/portfolio/logging"
)

const (
	SuccessText = "Message sent successfully!"
	FailureText = "Failed to send message. Please try again."
	SendingText = "Sending..."

	// StatusTTL is how long a final status stays on screen.
	StatusTTL   = 4 * time.Second
	sendTimeout = 20 * time.Second
)

var ErrBusy = errors.New("contact: a message is already being sent")

type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSending
	StatusSuccess
	StatusError
)

// Status is the inline line under the form.
type Status struct {
	Kind    StatusKind
	Text    string
	Expires time.Time
}

// Controller runs one submission at a time. Results arrive on the relay
// goroutine and are applied by Update on the caller's goroutine.
type Controller struct {
	relay   Relay
	ctx     context.Context
	results chan error
	sending bool
	status  Status

	// Go starts the relay call. It defaults to a new goroutine.
	Go func(func())
	// OnClear empties the form fields after a successful send.
	OnClear func()
}

// NewController sends through relay. ctx carries the logger and bounds
// every send.
func NewController(ctx context.Context, relay Relay) *Controller {
	if relay == nil {
		relay = DisabledRelay{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &Controller{
		relay:   relay,
		ctx:     ctx,
		results: make(chan error, 1),
		Go:      func(f func()) { go f() },
	}
}

// Submit validates form and starts sending it. Validation failures set an
// error status and never reach the relay.
func (c *Controller) Submit(form Form, now time.Time) error {
	if c.sending {
		return ErrBusy
	}
	if err := form.Validate(); err != nil {
		text := FailureText
		var ve *ValidationError
		if errors.As(err, &ve) {
			text = ve.UserMessage()
		}
		c.status = Status{Kind: StatusError, Text: text, Expires: now.Add(StatusTTL)}
		return err
	}

	c.sending = true
	c.status = Status{Kind: StatusSending, Text: SendingText}
	msg := form.Message()
	relay, results := c.relay, c.results
	ctx := c.ctx
	c.Go(func() {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		defer cancel()
		results <- relay.Send(sendCtx, msg)
	})
	return nil
}

// Update applies a finished send and expires old statuses.
func (c *Controller) Update(now time.Time) {
	select {
	case err := <-c.results:
		c.sending = false
		logger := logging.FromContext(c.ctx)
		if err != nil {
			logger.Warn("contact send failed", "err", err)
			c.status = Status{Kind: StatusError, Text: FailureText, Expires: now.Add(StatusTTL)}
			break
		}
		logger.Info("contact message sent")
		c.status = Status{Kind: StatusSuccess, Text: SuccessText, Expires: now.Add(StatusTTL)}
		if c.OnClear != nil {
			c.OnClear()
		}
	default:
	}

	if c.status.Kind != StatusNone && !c.status.Expires.IsZero() && !now.Before(c.status.Expires) {
		c.status = Status{}
	}
}

func (c *Controller) Status() Status { return c.status }

func (c *Controller) Sending() bool { return c.sending }
