package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type CreditPackage struct {
	Credits int     `yaml:"credits" json:"credits"`
	Price   float64 `yaml:"price" json:"price"`
}

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Credits struct {
		WelcomeBonus int             `yaml:"welcome_bonus"`
		Packages     []CreditPackage `yaml:"packages"`
	} `yaml:"credits"`

	Verification struct {
		CodeTTL int `yaml:"code_ttl"` // seconds
	} `yaml:"verification"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables when
// DATABASE_URL is set (the mode tests and containers run in).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Verification.CodeTTL == 0 {
		cfg.Verification.CodeTTL = 300
	}
	if cfg.Credits.WelcomeBonus == 0 {
		cfg.Credits.WelcomeBonus = 3
	}
	if len(cfg.Credits.Packages) == 0 {
		cfg.Credits.Packages = []CreditPackage{
			{Credits: 10, Price: 990},
			{Credits: 25, Price: 1990},
			{Credits: 60, Price: 3990},
		}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
