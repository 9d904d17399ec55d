package email

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"sobujigangas/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

const defaultFromAddress = "Só Bujigangas <onboarding@resend.dev>"

// ResendSender delivers the password recovery e-mails through Resend.
// With EMAIL_SENDER_MOCK set, messages are logged instead of sent.

type ResendSender struct {
	client   *resend.Client
	from     string
	mockMode bool
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey string) (*ResendSender, error) {
	from := os.Getenv("RESEND_FROM_ADDRESS")
	if from == "" {
		from = defaultFromAddress
	}

	if isEmailSenderMockEnabled() {
		log.Info().Msg("email sender mock mode enabled")
		return &ResendSender{from: from, mockMode: true}, nil
	}

	if apiKey == "" {
		log.Warn().Msg("missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}

	return &ResendSender{client: resend.NewClient(apiKey), from: from}, nil
}

func (s *ResendSender) SendPasswordResetCode(ctx context.Context, email, nome, code string) error {
	if s.mockMode {
		log.Info().Str("email", email).Str("code", code).Msg("mock reset email")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email},
		Subject: "Código de recuperação de senha",
		Html:    resetEmailHTML(nome, code),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}
	log.Info().Str("email", email).Str("message_id", sent.Id).Msg("reset email sent")
	return nil
}

func resetEmailHTML(nome, code string) string {
	greeting := "Olá"
	if strings.TrimSpace(nome) != "" {
		greeting = fmt.Sprintf("Olá, %s", strings.TrimSpace(nome))
	}
	return fmt.Sprintf(`<div style="font-family:sans-serif;max-width:480px">
  <h2>Recuperação de senha</h2>
  <p>%s! Use o código abaixo para redefinir a sua senha:</p>
  <p style="font-size:32px;font-weight:bold;letter-spacing:8px">%s</p>
  <p>O código expira em 10 minutos e só pode ser usado uma vez.</p>
  <p>Se você não solicitou a redefinição, ignore este e-mail.</p>
</div>`, greeting, code)
}

func isEmailSenderMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EMAIL_SENDER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
