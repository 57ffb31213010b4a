package services

import (
	"github.com/rs/zerolog"

	"postforge/config"
)

var (
	gateway ChatGateway
	logger  zerolog.Logger
)

// InitContentService wires the gateway client used by all content operations.
func InitContentService(cfg *config.Config, log zerolog.Logger) {
	logger = log
	gateway = NewGatewayClient(cfg, log)
}
