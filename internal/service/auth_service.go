package service

import (
	"talentscout_backend/internal/config"
	"talentscout_backend/internal/repository"
	"talentscout_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	AdminRepo *repository.AdminRepository
	Cfg       *config.Config
}

func NewAuthService(adminRepo *repository.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		AdminRepo: adminRepo,
		Cfg:       cfg,
	}
}

// VerifyAdmin fails closed: an unknown username and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) VerifyAdmin(username, password string) bool {
	admin, err := s.AdminRepo.FindByUsername(username)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
}

// Login returns a signed JWT on success and a generic error otherwise.
func (s *AuthService) Login(username, password string) (string, error) {
	admin, err := s.AdminRepo.FindByUsername(username)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(admin, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// UpsertAdmin replaces the stored hash for the username. Exposed only to
// the CLI, never to the HTTP surface.
func (s *AuthService) UpsertAdmin(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.AdminRepo.Upsert(username, string(hash))
}
