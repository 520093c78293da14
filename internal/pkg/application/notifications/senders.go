package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"net/smtp"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

const (
	FailureTransient = "transient"
	FailureTimeout   = "timeout"
	FailureRejected  = "rejected"
)

// SendError classifies a failed send. Permanent rejections are kept on
// the same retry path as transient failures and consume retry budget
// the same way; the classification exists for the audit trail, not for
// shortcutting retries.
type SendError struct {
	Kind string
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
}

func (e *SendError) Unwrap() error {
	return e.Err
}

func transient(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &SendError{Kind: FailureTimeout, Err: err}
	}
	return &SendError{Kind: FailureTransient, Err: err}
}

func rejected(err error) error {
	return &SendError{Kind: FailureRejected, Err: err}
}

//go:generate moq -rm -out sender_mock.go . Sender

// Sender delivers one rendered message to one recipient address. One
// implementation exists per notification channel; all of them are
// injectable so dispatch logic can be tested without network calls.
type Sender interface {
	Send(ctx context.Context, address, message string) error
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	From     string `yaml:"from"`
	Subject  string `yaml:"subject"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type emailSender struct {
	cfg SMTPConfig
}

func NewEmailSender(cfg SMTPConfig) Sender {
	if cfg.Subject == "" {
		cfg.Subject = "machine alert"
	}
	return &emailSender{cfg: cfg}
}

func (s *emailSender) Send(ctx context.Context, address, message string) error {
	_, err := mail.ParseAddress(address)
	if err != nil {
		return rejected(fmt.Errorf("invalid email address %q: %w", address, err))
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.cfg.From, address, s.cfg.Subject, message)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.From, []string{address}, []byte(body))
	}()

	select {
	case <-ctx.Done():
		return transient(ctx.Err())
	case err := <-done:
		if err != nil {
			return transient(err)
		}
	}

	return nil
}

type SMSGatewayConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

type smsSender struct {
	cfg    SMSGatewayConfig
	client *http.Client
}

func NewSMSSender(cfg SMSGatewayConfig) Sender {
	return &smsSender{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *smsSender) Send(ctx context.Context, address, message string) error {
	payload, _ := json.Marshal(struct {
		To      string `json:"to"`
		Message string `json:"message"`
	}{
		To:      address,
		Message: message,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return rejected(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return transient(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return transient(fmt.Errorf("sms gateway returned status %d", resp.StatusCode))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return rejected(fmt.Errorf("sms gateway rejected message with status %d", resp.StatusCode))
	}

	return nil
}

type webhookSender struct {
	source string
}

func NewWebhookSender(source string) Sender {
	return &webhookSender{source: source}
}

// Send pushes the notification to the recipient URL as a cloud event.
func (s *webhookSender) Send(ctx context.Context, address, message string) error {
	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return transient(err)
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", s.source, time.Now().UnixNano()))
	event.SetSource(s.source)
	event.SetType("factoryedge.notification")
	event.SetTime(time.Now().UTC())

	err = event.SetData(cloudevents.ApplicationJSON, struct {
		Message string `json:"message"`
	}{
		Message: message,
	})
	if err != nil {
		return rejected(err)
	}

	ctx = cloudevents.ContextWithTarget(ctx, address)

	result := c.Send(ctx, event)
	if cloudevents.IsUndelivered(result) {
		return transient(result)
	}

	return nil
}
