package http

import (
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/service"
	"github.com/MKhiriev/go-auth-guard/internal/utils"
)

type Handler struct {
	services *service.Services
	version  string

	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		version:       version,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}
