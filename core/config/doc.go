// Package config provides configuration management for the invoice verifier.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, upload size limit)
//   - Storage: S3/MinIO credentials and bucket for archived reports
//   - Log: Logging level and format
//   - Verify: expected header constants, numeric tolerance, partial threshold
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
