package service

import (
	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/crypto"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/store"
)

// Services aggregates every business-logic service exposed to the
// transport layer.
type Services struct {
	AuthService AuthService
}

// NewServices wires up the service layer on top of the given storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.PasswordHashCost)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, cfg, logger),
	}
}
