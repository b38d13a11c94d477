package mail

import (
	"context"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

type logMailSender struct {
	logger logger.Logger
}

// NewLogMailSender creates a MailSender that writes messages to the
// application log instead of sending them. Real SMTP delivery is a
// deployment concern.
func NewLogMailSender(logger logger.Logger) (accounts.MailSender, error) {
	return &logMailSender{logger: logger}, nil
}

func (s *logMailSender) SendOTP(ctx context.Context, email, code, purpose string) error {
	s.logger.Info("OTP for ", email, " (", purpose, "): ", code)
	return nil
}
