package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/auth"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/intake"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/sirene"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/usecase"
	"github.com/cabinet-mercier/questionnaires-fe/internal/infrastructure/cache"
	"github.com/cabinet-mercier/questionnaires-fe/internal/infrastructure/insee"
	"github.com/cabinet-mercier/questionnaires-fe/internal/infrastructure/postgres"
	infraredis "github.com/cabinet-mercier/questionnaires-fe/internal/infrastructure/redis"
	ihttp "github.com/cabinet-mercier/questionnaires-fe/internal/interfaces/http"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/config"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("env", cfg.App.Env).Msg("démarrage de l'application")

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à la base impossible")
	}
	defer pool.Close()

	// Sans Redis configuré (poste de dev), les caches restent en mémoire.
	var cacheSiren sirene.CacheSiren
	var sessions intake.SessionStore
	if cfg.Redis.Addr != "" {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("connexion à redis impossible")
		}
		defer rdb.Close()
		cacheSiren = cache.NewSirenRedis(rdb)
		sessions = cache.NewSessionsRedis(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR absent, caches en mémoire locale")
		cacheSiren = cache.NewSirenMemoire()
		sessions = cache.NewSessionsMemoire()
	}

	// Dépôts
	entreprises := postgres.NewEntrepriseRepository(pool)
	qClients := postgres.NewQuestionnaireClientRepository(pool)
	qCollabs := postgres.NewQuestionnaireCollaborateurRepository(pool)
	utilisateurs := postgres.NewUtilisateurRepository(pool)
	dossiers := postgres.NewDossierRepository(pool, qClients, qCollabs)

	// Cas d'usage
	clientSirene := insee.NewClient(cfg.INSEE, log)
	recherche := sirene.NewRecherche(clientSirene, cacheSiren, cfg.Intake.CacheSirenTTL, log)
	workflow := intake.NewWorkflow(recherche, sessions, entreprises, qClients, qCollabs, cfg.Intake.SessionTTL, log)
	authUsecase := auth.NewUsecase(utilisateurs, cfg.JWT, log)
	tableau := usecase.NewTableauDeBord(dossiers, log)
	dossiersUsecase := usecase.NewDossiers(dossiers, entreprises, log)
	export := usecase.NewExport(dossiers)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	app.Use(recover.New())

	ihttp.SetupRoutes(app, ihttp.Handlers{
		Auth:          ihttp.NewAuthHandler(authUsecase),
		Client:        ihttp.NewClientHandler(recherche, workflow),
		Collaborateur: ihttp.NewCollaborateurHandler(workflow),
		Dashboard:     ihttp.NewDashboardHandler(tableau, dossiersUsecase),
		Export:        ihttp.NewExportHandler(export),
	}, cfg.JWT.Secret)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("serveur http arrêté")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("serveur http à l'écoute")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("arrêt en cours")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("arrêt forcé")
	}
}
