// Package config loads hyphendict settings from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment;
//     variables already set are not overridden.
//   - Load parses HYPHENDICT_-prefixed variables into any struct with `env` tags.
//   - Parse returns the ready-to-use Config.
//
// # Usage
//
//	if err := config.LoadEnv(); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//	cfg, err := config.Parse()
//	if err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Variables
//
//	HYPHENDICT_LANGUAGE           language code, default "en-us"
//	HYPHENDICT_VARIANT            "standard" (default) or "extended"
//	HYPHENDICT_DIR                local dictionary directory
//	HYPHENDICT_S3_BUCKET          S3 bucket; enables the S3 source
//	HYPHENDICT_S3_REGION          default "us-east-1"
//	HYPHENDICT_S3_PREFIX          object key prefix
//	HYPHENDICT_S3_ENDPOINT        S3-compatible endpoint
//	HYPHENDICT_S3_ACCESS_KEY_ID   static credentials
//	HYPHENDICT_S3_SECRET_ACCESS_KEY
//	HYPHENDICT_S3_FORCE_PATH_STYLE
//	HYPHENDICT_S3_TIMEOUT         default "30s"
//	HYPHENDICT_REDIS_URL          e.g. "redis://localhost:6379/0"; enables the Redis source
//	HYPHENDICT_REDIS_PREFIX       key prefix, e.g. "hyphen:"
//	HYPHENDICT_REDIS_RETRY_ATTEMPTS   default 3
//	HYPHENDICT_REDIS_RETRY_INTERVAL   default "1s"
//	HYPHENDICT_REDIS_CONNECT_TIMEOUT  default "10s"
//	HYPHENDICT_LOG_ENV            "development" or "production" preset
//	HYPHENDICT_LOG_LEVEL          overrides the preset; "info" without one
//	HYPHENDICT_LOG_FORMAT         overrides the preset; "text" without one
//
// # Error Handling
//
// Failures wrap ErrParsingConfig or ErrNilPointer and can be compared with errors.Is.
package config
