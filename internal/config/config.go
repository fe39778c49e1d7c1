// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"campus-roster/pkg/db" // Import db package for its Config struct
)

// ConfigFileEnv names the variable pointing at an optional YAML config file.
const ConfigFileEnv = "ROSTER_CONFIG"

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	LogLevel   string
	LogFile    string
	DB         db.Config
}

// fileConfig mirrors the YAML layout of the config file.
type fileConfig struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Database struct {
		Driver   string `yaml:"driver"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		SSLMode  string `yaml:"sslmode"`
		Path     string `yaml:"path"`
	} `yaml:"database"`
}

// LoadConfig loads configuration from defaults, an optional YAML file named
// by ROSTER_CONFIG, and environment variables, in increasing precedence.
// It returns an AppConfig instance or an error if any value is invalid.
func LoadConfig() (*AppConfig, error) {
	cfg := defaults()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func defaults() *AppConfig {
	return &AppConfig{
		ServerPort: "8080",
		LogLevel:   "info",
		DB: db.Config{
			Driver:   db.DriverPostgres,
			Host:     "localhost", // Default to localhost for local development
			Port:     5432,        // Default PostgreSQL port
			User:     "user",
			Password: "password",
			DBName:   "rosterdb",
			SSLMode:  "disable",
			Path:     "roster.db",
		},
	}
}

func loadFile(path string, cfg *AppConfig) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setString(&cfg.ServerPort, fc.Server.Port)
	setString(&cfg.LogLevel, fc.Log.Level)
	setString(&cfg.LogFile, fc.Log.File)
	setString(&cfg.DB.Driver, fc.Database.Driver)
	setString(&cfg.DB.Host, fc.Database.Host)
	if fc.Database.Port != 0 {
		cfg.DB.Port = fc.Database.Port
	}
	setString(&cfg.DB.User, fc.Database.User)
	setString(&cfg.DB.Password, fc.Database.Password)
	setString(&cfg.DB.DBName, fc.Database.DBName)
	setString(&cfg.DB.SSLMode, fc.Database.SSLMode)
	setString(&cfg.DB.Path, fc.Database.Path)
	return nil
}

func loadEnv(cfg *AppConfig) error {
	setString(&cfg.ServerPort, os.Getenv("SERVER_PORT"))
	setString(&cfg.LogLevel, os.Getenv("LOG_LEVEL"))
	setString(&cfg.LogFile, os.Getenv("LOG_FILE"))
	setString(&cfg.DB.Driver, os.Getenv("DB_DRIVER"))
	setString(&cfg.DB.Host, os.Getenv("DB_HOST"))
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT: %w", err)
		}
		cfg.DB.Port = port
	}
	setString(&cfg.DB.User, os.Getenv("DB_USER"))
	setString(&cfg.DB.Password, os.Getenv("DB_PASSWORD"))
	setString(&cfg.DB.DBName, os.Getenv("DB_NAME"))
	setString(&cfg.DB.SSLMode, os.Getenv("DB_SSLMODE"))
	setString(&cfg.DB.Path, os.Getenv("DB_PATH"))
	return nil
}

func validate(cfg *AppConfig) error {
	switch cfg.DB.Driver {
	case db.DriverPostgres, db.DriverPgx:
		if cfg.DB.Port <= 0 || cfg.DB.Port > 65535 {
			return fmt.Errorf("database port %d out of range", cfg.DB.Port)
		}
	case db.DriverSQLite:
		if cfg.DB.Path == "" {
			return fmt.Errorf("sqlite driver requires DB_PATH")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
