package main

import (
	"log"
	"time"

	"talk-connect-hub/internal/auth"
	"talk-connect-hub/internal/config"
	"talk-connect-hub/internal/ratelimit"
	"talk-connect-hub/internal/server"
	"talk-connect-hub/internal/telecom"
)

// main is the entry point for the EdgeProxy.
func main() {
	config.LoadDotEnv()
	cfg := config.MustLoadProxy()

	// Clients are built once here and shared by every request.
	var verifier auth.Verifier
	if cfg.UsesJWT() {
		log.Println("Verifying tokens locally")
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	} else {
		log.Printf("Verifying tokens with identity service at %s", cfg.Identity.URL)
		verifier = auth.NewIdentityClient(cfg.Identity.URL, cfg.APIKey, cfg.UpstreamTimeout)
	}

	twilioClient := telecom.NewHTTPTwilioClient(cfg.TwilioBaseURL, cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.UpstreamTimeout)

	// business logic layer.
	proxyService := telecom.NewService(twilioClient, cfg.TwilioPhoneNumber, cfg.TwilioVoiceURL)

	limiter := ratelimit.NewStore(cfg.PerMinute, cfg.Burst, time.Minute)
	defer limiter.Stop()

	// API layer. Takes the service.
	proxyHandler := telecom.NewHandler(proxyService, limiter.Middleware)

	r := server.NewRouter(server.Options{
		Name:           "EdgeProxy",
		BasePath:       cfg.BasePath,
		AllowedOrigins: cfg.AllowedOrigins,
		Verifier:       verifier,
	}, proxyHandler.RegisterRoutes)

	if err := server.Run("EdgeProxy", cfg.Port, r); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}
