package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/steve-ongera/AgriLink/configs"
	"github.com/steve-ongera/AgriLink/pkg/notifier"
	"github.com/steve-ongera/AgriLink/routes"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatal(err)
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatal(err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatal(err)
	}

	var mailer notifier.Mailer = notifier.Noop{}
	if sesMailer, err := notifier.NewSESMailer(cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.SenderEmail); err != nil {
		log.Printf("ses mailer disabled: %v", err)
	} else if sesMailer != nil {
		mailer = sesMailer
	}

	r := gin.Default()
	routes.RegisterRoutes(r, cfg, mailer)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
