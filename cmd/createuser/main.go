// Commande d'administration : création d'un compte collaborateur.
//
//	createuser -email sophie.durand@cabinet.fr -password ... -prenom Sophie -nom Durand
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/internal/infrastructure/postgres"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/config"
)

func main() {
	email := flag.String("email", "", "email de connexion (obligatoire)")
	password := flag.String("password", "", "mot de passe (obligatoire)")
	username := flag.String("username", "", "identifiant court (défaut : partie locale de l'email)")
	prenom := flag.String("prenom", "", "prénom")
	nom := flag.String("nom", "", "nom")
	staff := flag.Bool("staff", true, "accès au tableau de bord")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *username == "" {
		*username = strings.SplitN(*email, "@", 2)[0]
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fatal(err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fatal(err)
	}

	u := &entity.Utilisateur{
		Username:     *username,
		Prenom:       *prenom,
		Nom:          *nom,
		Email:        *email,
		PasswordHash: string(hash),
		IsStaff:      *staff,
		IsActive:     true,
	}
	if err := postgres.NewUtilisateurRepository(pool).Create(ctx, u); err != nil {
		fatal(err)
	}

	fmt.Printf("compte créé : %s (%s)\n", u.Email, u.ID)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "erreur :", err)
	os.Exit(1)
}
