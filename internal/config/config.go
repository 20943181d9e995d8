package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envAWSRegion             = "AWS_REGION"
	envAWSAccessKeyID        = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	envCognitoUserPoolID     = "COGNITO_USER_POOL_ID"
	envCognitoClientID       = "COGNITO_CLIENT_ID"
	envListUsersLimit        = "LIST_USERS_LIMIT"
)

const (
	defaultServerPort         = "8080"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultAWSRegion          = "us-east-1"
	defaultListUsersLimit     = int64(60)

	errUserPoolIDRequiredFmt   = "COGNITO_USER_POOL_ID must be set"
	errClientIDRequiredFmt     = "COGNITO_CLIENT_ID must be set"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server  ServerConfig
	AWS     AWSConfig
	Cognito CognitoConfig
	App     AppConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type CognitoConfig struct {
	UserPoolID string
	ClientID   string
}

type AppConfig struct {
	ListUsersLimit int64
}

// Load reads configuration from the environment, applying defaults and
// validating required values.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDuration(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDuration(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDuration(envServerShutdownTimeout, defaultServerShutdown),
		},
		AWS: AWSConfig{
			Region:          getEnv(envAWSRegion, defaultAWSRegion),
			AccessKeyID:     os.Getenv(envAWSAccessKeyID),
			SecretAccessKey: os.Getenv(envAWSSecretAccessKey),
		},
		Cognito: CognitoConfig{
			UserPoolID: os.Getenv(envCognitoUserPoolID),
			ClientID:   os.Getenv(envCognitoClientID),
		},
		App: AppConfig{
			ListUsersLimit: getInt64(envListUsersLimit, defaultListUsersLimit),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Cognito.UserPoolID == "" {
		return fmt.Errorf(errUserPoolIDRequiredFmt)
	}
	if c.Cognito.ClientID == "" {
		return fmt.Errorf(errClientIDRequiredFmt)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return time.Duration(seconds) * time.Second
}

func getInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}

	return parsed
}
