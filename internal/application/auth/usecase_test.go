package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/auth"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/config"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/jwt"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

type fauxUtilisateurs struct {
	parEmail map[string]*entity.Utilisateur
}

func (f *fauxUtilisateurs) FindByEmail(_ context.Context, email string) (*entity.Utilisateur, error) {
	return f.parEmail[email], nil
}

func (f *fauxUtilisateurs) FindByID(_ context.Context, id string) (*entity.Utilisateur, error) {
	for _, u := range f.parEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fauxUtilisateurs) Create(_ context.Context, u *entity.Utilisateur) error {
	f.parEmail[u.Email] = u
	return nil
}

const secretTest = "secret-de-test-suffisamment-long"

func nouvelUsecase(t *testing.T) (*auth.Usecase, *entity.Utilisateur) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &entity.Utilisateur{
		ID:           uuid.New(),
		Email:        "sophie.durand@cabinet-mercier.fr",
		Prenom:       "Sophie",
		Nom:          "Durand",
		PasswordHash: string(hash),
		IsStaff:      true,
		IsActive:     true,
	}
	users := &fauxUtilisateurs{parEmail: map[string]*entity.Utilisateur{u.Email: u}}
	cfg := config.JWTConfig{Secret: secretTest, Expiration: 60, Issuer: "test"}
	return auth.NewUsecase(users, cfg, logger.New(logger.Config{Env: "test", Level: "error"})), u
}

func TestLogin_Succes(t *testing.T) {
	uc, u := nouvelUsecase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "sophie.durand@cabinet-mercier.fr",
		Password: "motdepasse",
	})
	require.NoError(t, err)

	assert.Equal(t, u.ID.String(), resp.UserID)
	assert.Equal(t, "Sophie Durand", resp.NomComplet)

	claims, err := jwt.Parse(secretTest, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, "Sophie Durand", claims.NomComplet)
}

func TestLogin_EmailInsensibleCasseEtEspaces(t *testing.T) {
	uc, _ := nouvelUsecase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "  Sophie.Durand@Cabinet-Mercier.fr  ",
		Password: "motdepasse",
	})
	assert.NoError(t, err)
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	uc, _ := nouvelUsecase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "sophie.durand@cabinet-mercier.fr",
		Password: "mauvais",
	})
	assert.ErrorIs(t, err, domain.ErrIdentifiantsInvalides)
}

func TestLogin_CompteInconnu(t *testing.T) {
	uc, _ := nouvelUsecase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "inconnu@cabinet-mercier.fr",
		Password: "motdepasse",
	})
	assert.ErrorIs(t, err, domain.ErrIdentifiantsInvalides)
}

func TestLogin_CompteDesactive(t *testing.T) {
	uc, u := nouvelUsecase(t)
	u.IsActive = false

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "sophie.durand@cabinet-mercier.fr",
		Password: "motdepasse",
	})
	assert.ErrorIs(t, err, domain.ErrIdentifiantsInvalides)
}
