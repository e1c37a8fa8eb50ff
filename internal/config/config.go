package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Table names and provider coordinates are opaque
// to handlers; nothing below this layer hardcodes them.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	JWTSecret      string // secret used to verify tokens from the identity provider
	MoviesTable    string // DynamoDB table holding movies
	InterestsTable string // DynamoDB table holding per-user interests
	AWSRegion      string // region the tables live in
	DynamoEndpoint string // optional endpoint override for dynamodb-local
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		JWTSecret:      must("JWT_SECRET"),
		MoviesTable:    must("MOVIES_TABLE_NAME"),
		InterestsTable: must("INTERESTS_TABLE_NAME"),
		AWSRegion:      must("AWS_REGION"),
		DynamoEndpoint: os.Getenv("DYNAMO_ENDPOINT"), // empty means real AWS
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
