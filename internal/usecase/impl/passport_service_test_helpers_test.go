package impl

import (
	"io"
	"log/slog"

	"bookswap/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(simulate bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Wechat: &config.WechatConfig{
			Simulate: simulate,
		},
	}
}
