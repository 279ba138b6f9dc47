package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	SessionSecret  string
	RazorpayKey    string
	RazorpaySecret string
	Port           string
	Env            string
}

// AppConfig is the loaded configuration, set by LoadConfig
var AppConfig *Config

// LoadConfig loads configuration from .env and the environment. The
// Razorpay secret is injected here so no handler ever reads a literal.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && os.Getenv("DB_HOST") == "" {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		RazorpayKey:    os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	AppConfig = cfg
	return cfg, nil
}
