package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"regexp"

	"game-shop/internal/model"
	"game-shop/internal/repository"

	"github.com/rs/zerolog"
)

var pinPattern = regexp.MustCompile(`^\d{4,8}$`)

// adminService implements AdminService. Only a SHA-256 hash of the PIN is
// ever persisted; no plaintext comparison material leaves the server.
type adminService struct {
	repo   repository.PINRepository
	logger zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(repo repository.PINRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		repo:   repo,
		logger: logger.With().Str("service", "admin").Logger(),
	}
}

func hashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// EnsurePIN seeds the stored PIN from the configured default when no PIN
// is set yet. A blank default leaves the admin surface locked until a PIN
// is configured.
func (s *adminService) EnsurePIN(ctx context.Context, defaultPIN string) error {
	stored, err := s.repo.LoadHash(ctx)
	if err != nil {
		return err
	}
	if stored != "" || defaultPIN == "" {
		return nil
	}
	if !pinPattern.MatchString(defaultPIN) {
		return model.ErrInvalidPIN
	}
	if err := s.repo.SaveHash(ctx, hashPIN(defaultPIN)); err != nil {
		return err
	}
	s.logger.Info().Msg("admin PIN seeded from configuration")
	return nil
}

// VerifyPIN reports whether the supplied PIN matches the stored one. An
// unset PIN never verifies.
func (s *adminService) VerifyPIN(ctx context.Context, pin string) (bool, error) {
	stored, err := s.repo.LoadHash(ctx)
	if err != nil {
		return false, err
	}
	if stored == "" {
		return false, nil
	}
	supplied := hashPIN(pin)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1, nil
}

// SetPIN validates the PIN format (4-8 digits) and stores its hash.
func (s *adminService) SetPIN(ctx context.Context, pin string) error {
	if !pinPattern.MatchString(pin) {
		s.logger.Warn().Msg("rejected PIN with invalid format")
		return model.ErrInvalidPIN
	}
	if err := s.repo.SaveHash(ctx, hashPIN(pin)); err != nil {
		return err
	}
	s.logger.Info().Msg("admin PIN updated")
	return nil
}
