// Package mail delivers password reset messages over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dtroode/gucfolio/internal/model"
)

const resetSubject = "Reset your portfolio password"

var _ model.Mailer = (*SMTP)(nil)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Options describe the SMTP relay.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// Attempts is the total number of delivery attempts, at least one.
	Attempts uint64
	// Backoff is the delay before the first retry. Zero means one second.
	Backoff time.Duration
}

// SMTP sends mail through a relay, retrying transient failures.
type SMTP struct {
	opts Options
	auth smtp.Auth
	send sendFunc
}

// NewSMTP creates a mailer. Authentication is used only when a username is set.
func NewSMTP(opts Options) *SMTP {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	if opts.Backoff == 0 {
		opts.Backoff = time.Second
	}

	var auth smtp.Auth
	if opts.Username != "" {
		auth = smtp.PlainAuth("", opts.Username, opts.Password, opts.Host)
	}

	return &SMTP{
		opts: opts,
		auth: auth,
		send: smtp.SendMail,
	}
}

// SendPasswordReset mails the reset link to email.
func (m *SMTP) SendPasswordReset(ctx context.Context, email, resetLink string) error {
	body := "You are receiving this because you (or someone else) have requested the reset of the password for your account.\r\n\r\n" +
		"Please click on the following link, or paste this into your browser to complete the process:\r\n\r\n" +
		resetLink + "\r\n\r\n" +
		"If you did not request this, please ignore this email and your password will remain unchanged.\r\n"

	return m.deliver(ctx, email, resetSubject, body)
}

func (m *SMTP) deliver(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(m.opts.From, to, subject, body)
	addr := net.JoinHostPort(m.opts.Host, strconv.Itoa(m.opts.Port))

	backoff := retry.WithMaxRetries(m.opts.Attempts-1, retry.NewExponential(m.opts.Backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := m.send(addr, m.auth, m.opts.From, []string{to}, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
