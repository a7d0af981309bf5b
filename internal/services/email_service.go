package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/justsurfingit/amp-job-portal/internal/auth"
	"github.com/justsurfingit/amp-job-portal/internal/config"
	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/models"
)

// EmailService delivers rendered email templates ("Send to HR") through Gmail.
type EmailService struct {
	GmailClient *gmail.Service
	Sender      string
	RetryDelay  time.Duration
	logger      *zap.Logger
}

// NewEmailService connects to Gmail with the saved OAuth token. When the
// credentials or token are missing the service is built without a client
// and every send reports UNAVAILABLE.
func NewEmailService(cfg *config.Config, logger *zap.Logger) *EmailService {
	svc := NewEmailServiceWithClient(nil, cfg.GmailSender, logger)

	ctx := context.Background()
	httpClient, err := auth.GmailClient(ctx, cfg.GmailCredentialsFile, cfg.GmailTokenFile)
	if err != nil {
		logger.Warn("Gmail sender disabled (no client). Check credentials.", zap.Error(err))
		return svc
	}

	gmailService, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		logger.Warn("Failed to create Gmail Service", zap.Error(err))
		return svc
	}

	logger.Info("Gmail Service connected successfully")
	svc.GmailClient = gmailService
	return svc
}

func NewEmailServiceWithClient(client *gmail.Service, sender string, logger *zap.Logger) *EmailService {
	if sender == "" {
		sender = "me"
	}
	return &EmailService{
		GmailClient: client,
		Sender:      sender,
		RetryDelay:  time.Second,
		logger:      logger,
	}
}

func (s *EmailService) Enabled() bool {
	return s.GmailClient != nil
}

// SendToHR sends a plain-text email and returns the Gmail message id.
func (s *EmailService) SendToHR(ctx context.Context, to, subject, body string) (string, error) {
	if !s.Enabled() {
		return "", apperrors.Unavailable("email delivery is not configured", nil)
	}

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(buildMessage(s.Sender, to, subject, body))}

	var sent *gmail.Message
	err := retry(3, s.RetryDelay, s.logger, func() error {
		var e error
		sent, e = s.GmailClient.Users.Messages.Send("me", msg).Context(ctx).Do()
		return e
	})
	if err != nil {
		s.logger.Error("Email delivery failed", zap.String("to", to), zap.Error(err))
		return "", apperrors.Unavailable("email delivery failed", err)
	}

	s.logger.Info("Email sent", zap.String("to", to), zap.String("message_id", sent.Id))
	return sent.Id, nil
}

// buildMessage renders an RFC 2822 message. A sender of "me" leaves the
// From header to Gmail.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	if from != "" && from != "me" {
		fmt.Fprintf(&b, "From: %s\r\n", from)
	}
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// RenderTemplate replaces {{key}} placeholders in the subject and body.
// Placeholders without a value are left as they are.
func RenderTemplate(t models.EmailTemplate, values map[string]string) (subject, body string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", values[k])
	}
	r := strings.NewReplacer(pairs...)
	return r.Replace(t.Subject), r.Replace(t.Body)
}

// retry executes a function with exponential backoff. Client errors (4xx
// other than 429) are returned immediately.
func retry(attempts int, sleep time.Duration, logger *zap.Logger, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		logger.Warn("API Error, retrying", zap.Error(err), zap.Duration("backoff", sleep))
		time.Sleep(sleep)
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}

func isRetryable(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code == http.StatusTooManyRequests || gErr.Code >= 500
	}
	return true
}
