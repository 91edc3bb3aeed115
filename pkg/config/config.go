package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Store struct {
		Backend string `yaml:"backend"` // file, mongo or memory
		File    string `yaml:"file"`
	} `yaml:"store"`
	Database struct {
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"database"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Scraper struct {
		URL            string `yaml:"url"`
		RealtorName    string `yaml:"realtor_name"`
		DefaultAgency  string `yaml:"default_agency"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Schedule       string `yaml:"schedule"`
		Secret         string `yaml:"-"`
		CronSecret     string `yaml:"-"`
	} `yaml:"scraper"`
	Mail struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		From      string `yaml:"from"`
		Recipient string `yaml:"recipient"`
		Username  string `yaml:"-"`
		Password  string `yaml:"-"`
	} `yaml:"mail"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Database.DBName = dbname
	}
	if backend := os.Getenv("STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if file := os.Getenv("STORE_FILE"); file != "" {
		cfg.Store.File = file
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Enabled = true
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if url := os.Getenv("SCRAPER_URL"); url != "" {
		cfg.Scraper.URL = url
	}

	// Secrets only ever come from the environment
	cfg.Scraper.Secret = os.Getenv("SCRAPER_SECRET")
	cfg.Scraper.CronSecret = os.Getenv("CRON_SECRET")
	cfg.Mail.Username = os.Getenv("SMTP_USERNAME")
	cfg.Mail.Password = os.Getenv("SMTP_PASSWORD")
	if recipient := os.Getenv("CONTACT_FORM_RECIPIENT_EMAIL"); recipient != "" {
		cfg.Mail.Recipient = recipient
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "file"
	}
	if cfg.Store.File == "" {
		cfg.Store.File = "data/properties.json"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Scraper.RealtorName == "" {
		cfg.Scraper.RealtorName = "Alexandre Brosseau"
	}
	if cfg.Scraper.DefaultAgency == "" {
		cfg.Scraper.DefaultAgency = "Alex & Simon - Courtiers Immobiliers"
	}
	if cfg.Scraper.TimeoutSeconds == 0 {
		cfg.Scraper.TimeoutSeconds = 60
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = 587
	}

	// Validation
	if cfg.Store.Backend != "file" && cfg.Store.Backend != "mongo" && cfg.Store.Backend != "memory" {
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if cfg.Store.Backend == "mongo" && cfg.Database.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required when store backend is mongo")
	}
	if cfg.Redis.Port <= 0 || cfg.Redis.Port > 65535 {
		return nil, fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if cfg.Scraper.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("scraper timeout must be non-negative")
	}

	return &cfg, nil
}

// MailConfigured reports whether the SMTP transport can actually send.
// Without credentials the contact relay degrades to logging submissions.
func (c *Config) MailConfigured() bool {
	return c.Mail.Host != "" && c.Mail.Username != "" && c.Mail.Password != ""
}
