package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/config"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/jwt"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

// Usecase authentification des collaborateurs du cabinet.
type Usecase struct {
	users repository.UtilisateurRepository
	cfg   config.JWTConfig
	log   *logger.Logger
}

// NewUsecase construit le cas d'usage d'authentification.
func NewUsecase(users repository.UtilisateurRepository, cfg config.JWTConfig, log *logger.Logger) *Usecase {
	return &Usecase{users: users, cfg: cfg, log: log}
}

// Login vérifie les identifiants et émet un jeton. Compte inconnu, désactivé
// ou mot de passe erroné donnent la même erreur, sans préciser la cause.
func (u *Usecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, domain.ErrIdentifiantsInvalides
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrIdentifiantsInvalides
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		u.log.Warn().Str("email", email).Msg("tentative de connexion refusée")
		return nil, domain.ErrIdentifiantsInvalides
	}

	token, err := jwt.Generate(u.cfg.Secret, user.ID.String(), user.Email, user.NomComplet(), u.cfg.Issuer, u.cfg.Expiration)
	if err != nil {
		return nil, err
	}

	u.log.Info().Str("email", email).Msg("collaborateur connecté")
	return &dto.LoginResponse{
		Token:      token,
		UserID:     user.ID.String(),
		Email:      user.Email,
		NomComplet: user.NomComplet(),
	}, nil
}
