// Package sms holds the out-of-band delivery edge for one-time codes.
package sms

import (
	"context"
	"log/slog"

	"bookswap/internal/domain/service"
)

// logSender writes outbound messages to the service log instead of a
// gateway. Real delivery is an external concern; this implementation keeps
// development and tests self-contained.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.SmsSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(_ context.Context, mobile, message string) error {
	s.logger.Info("SMS dispatched", slog.String("mobile", mobile), slog.String("message", message))

	return nil
}
