package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vignesh-b/portfolio/logging"
)

type fakeRelay struct {
	calls []Message
	err   error
}

func (f *fakeRelay) Send(_ context.Context, m Message) error {
	f.calls = append(f.calls, m)
	return f.err
}

func quietCtx() context.Context {
	return logging.WithLogger(context.Background(), log.New(io.Discard))
}

func syncController(relay Relay) *Controller {
	c := NewController(quietCtx(), relay)
	c.Go = func(f func()) { f() }
	return c
}

var validForm = Form{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}

func TestValidate(t *testing.T) {
	long := strings.Repeat("x", 5001)
	cases := []struct {
		name     string
		form     Form
		wantText string
	}{
		{"valid", validForm, ""},
		{"empty_message", Form{Name: "Ada", Email: "ada@example.com"}, "Please enter a message."},
		{"blank_message", Form{Name: "Ada", Email: "ada@example.com", Message: "   "}, "Please enter a message."},
		{"missing_name", Form{Email: "ada@example.com", Message: "hi"}, "Please enter your name."},
		{"bad_email", Form{Name: "Ada", Email: "ada", Message: "hi"}, "Please enter a valid email address."},
		{"long_message", Form{Name: "Ada", Email: "ada@example.com", Message: long}, "Your message is too long."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.form.Validate()
			if c.wantText == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.UserMessage() != c.wantText {
				t.Fatalf("got %q, want %q", ve.UserMessage(), c.wantText)
			}
		})
	}
}

func TestEmptyMessageNeverReachesRelay(t *testing.T) {
	relay := &fakeRelay{}
	c := syncController(relay)
	now := time.Unix(100, 0)

	err := c.Submit(Form{Name: "Ada", Email: "ada@example.com"}, now)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if len(relay.calls) != 0 {
		t.Fatalf("relay must not be called, got %d calls", len(relay.calls))
	}
	if s := c.Status(); s.Kind != StatusError || s.Text != "Please enter a message." {
		t.Fatalf("unexpected status %+v", s)
	}

	c.Update(now.Add(StatusTTL - time.Millisecond))
	if c.Status().Kind != StatusError {
		t.Fatalf("status should still show before the ttl")
	}
	c.Update(now.Add(StatusTTL))
	if c.Status().Kind != StatusNone {
		t.Fatalf("status should auto-clear after %v", StatusTTL)
	}
}

func TestSuccessClearsFields(t *testing.T) {
	relay := &fakeRelay{}
	c := syncController(relay)
	cleared := false
	c.OnClear = func() { cleared = true }
	now := time.Unix(100, 0)

	if err := c.Submit(validForm, now); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !c.Sending() || c.Status().Kind != StatusSending {
		t.Fatalf("expected sending status before update")
	}
	c.Update(now)

	if len(relay.calls) != 1 || relay.calls[0].Body != "Hello there" {
		t.Fatalf("unexpected relay calls %+v", relay.calls)
	}
	if s := c.Status(); s.Kind != StatusSuccess || s.Text != SuccessText {
		t.Fatalf("unexpected status %+v", s)
	}
	if !cleared {
		t.Fatalf("fields should be cleared on success")
	}
	if c.Sending() {
		t.Fatalf("controller should be idle after the result")
	}
}

func TestRelayFailure(t *testing.T) {
	relay := &fakeRelay{err: errors.New("503")}
	c := syncController(relay)
	c.OnClear = func() { t.Fatalf("fields must be kept on failure") }
	now := time.Unix(100, 0)

	_ = c.Submit(validForm, now)
	c.Update(now)
	if s := c.Status(); s.Kind != StatusError || s.Text != FailureText {
		t.Fatalf("unexpected status %+v", s)
	}
}

func TestSubmitWhileSending(t *testing.T) {
	relay := &fakeRelay{}
	c := NewController(quietCtx(), relay)
	var pending func()
	c.Go = func(f func()) { pending = f }

	if err := c.Submit(validForm, time.Unix(0, 0)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := c.Submit(validForm, time.Unix(0, 0)); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	pending()
	c.Update(time.Unix(1, 0))
	if len(relay.calls) != 1 {
		t.Fatalf("expected one send, got %d", len(relay.calls))
	}
}

func TestDisabledRelay(t *testing.T) {
	r := NewRelay(Credentials{ServiceID: "svc"})
	if _, ok := r.(DisabledRelay); !ok {
		t.Fatalf("incomplete credentials should disable the relay, got %T", r)
	}
	if err := r.Send(context.Background(), Message{}); !errors.Is(err, ErrRelayNotConfigured) {
		t.Fatalf("expected ErrRelayNotConfigured, got %v", err)
	}
}

func TestEmailJSPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	relay := &EmailJS{
		Credentials: Credentials{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pub"},
		Endpoint:    srv.URL,
		Client:      srv.Client(),
	}
	if err := relay.Send(context.Background(), validForm.Message()); err != nil {
		t.Fatalf("send: %v", err)
	}

	want := map[string]string{"service_id": "svc", "template_id": "tpl", "user_id": "pub"}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %v, want %q", k, got[k], v)
		}
	}
	params, ok := got["template_params"].(map[string]any)
	if !ok {
		t.Fatalf("missing template_params in %v", got)
	}
	if params["name"] != "Ada" || params["email"] != "ada@example.com" || params["message"] != "Hello there" {
		t.Fatalf("unexpected template_params %v", params)
	}
}

func TestEmailJSNon2xx(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusBadGateway}
	for _, code := range statuses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", code)
		}))
		relay := &EmailJS{
			Credentials: Credentials{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pub"},
			Endpoint:    srv.URL,
			Client:      srv.Client(),
		}
		if err := relay.Send(context.Background(), Message{}); err == nil {
			t.Fatalf("status %d should be an error", code)
		}
		srv.Close()
	}
}
