package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"talk-connect-hub/internal/auth"
	"talk-connect-hub/internal/config"
	"talk-connect-hub/internal/contact"
	"talk-connect-hub/internal/ratelimit"
	"talk-connect-hub/internal/server"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// main is the entry point for the ContactService.
func main() {
	config.LoadDotEnv()
	cfg := config.MustLoadContacts()

	db, err := connectDB(cfg.DBConnectionString)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close() // Make sure the connection is closed on exit.
	log.Println("Database connected!")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = contact.EnsureSchema(ctx, db)
	cancel()
	if err != nil {
		log.Fatalf("Could not prepare database: %v", err)
	}

	var verifier auth.Verifier
	if cfg.UsesJWT() {
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	} else {
		verifier = auth.NewIdentityClient(cfg.Identity.URL, cfg.APIKey, cfg.UpstreamTimeout)
	}

	// Data access layer.
	contactRepo := contact.NewPostgresRepository(db)

	// business logic layer.
	contactService := contact.NewService(contactRepo)

	limiter := ratelimit.NewStore(cfg.PerMinute, cfg.Burst, time.Minute)
	defer limiter.Stop()

	// API layer. Takes the service.
	contactHandler := contact.NewHandler(contactService, limiter.Middleware)

	r := server.NewRouter(server.Options{
		Name:           "ContactService",
		BasePath:       cfg.BasePath,
		AllowedOrigins: cfg.AllowedOrigins,
		Verifier:       verifier,
	}, contactHandler.RegisterRoutes)

	if err := server.Run("ContactService", cfg.Port, r); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}

// connectDB is a helper to open and verify the database connection.
func connectDB(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	// Ping() ensures the connection is actually valid.
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
