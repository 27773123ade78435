package main

import (
	"strconv"

	"github.com/folio/internal/config"
	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/router"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log := cfg.GetLogger()

	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	smtpPort, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		smtpPort = 587
	}
	mailer := service.NewMailer(service.MailerConfig{
		Host:     cfg.SMTPHost,
		Port:     smtpPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	}, log)

	api := handler.NewAPI(db.DB, mailer, cfg.UploadDir, cfg.UploadURLPath)

	r := router.SetupRouter(api, cfg)
	log.Infof("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
