package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/haiki1233/food-delivery-backend/configs"
	"github.com/haiki1233/food-delivery-backend/middlewares"
	"github.com/haiki1233/food-delivery-backend/notifier"
	"github.com/haiki1233/food-delivery-backend/routes"
	"github.com/haiki1233/food-delivery-backend/services"
	"github.com/haiki1233/food-delivery-backend/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Listing cache
	configs.ConnectRedis(cfg)

	// Mail is optional; when disabled the workflow simply skips it.
	var mailer services.Mailer
	if cfg.EmailEnabled {
		m, err := notifier.NewSESMailer(context.Background(), cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.EmailSender)
		if err != nil {
			log.Printf("mailer disabled: %v", err)
		} else {
			mailer = m
		}
	}

	// Order event hub
	hub := ws.NewOrderHub(db)
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub, mailer)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
