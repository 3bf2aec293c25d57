package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Company  CompanyConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	LogPath       string
	MigrationsDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// CompanyConfig carries the business identity printed on rental agreements.
type CompanyConfig struct {
	Name    string
	Tagline string
	Phone   string
	Email   string
	Website string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "nwa-jumpers-api")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MIGRATIONS_DIR", "migrations")
	viper.SetDefault("COMPANY_NAME", "NWA Jumpers")
	viper.SetDefault("COMPANY_TAGLINE", "A Division of CR Communications LLC")
	viper.SetDefault("COMPANY_PHONE", "(479) 696-4040")
	viper.SetDefault("COMPANY_EMAIL", "info@nwajumpers.com")
	viper.SetDefault("COMPANY_WEBSITE", "www.nwajumpers.com")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, environment variables still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:          viper.GetString("APP_NAME"),
			Port:          viper.GetString("PORT"),
			Debug:         viper.GetBool("DEBUG"),
			LogPath:       viper.GetString("LOG_PATH"),
			MigrationsDir: viper.GetString("MIGRATIONS_DIR"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Company: CompanyConfig{
			Name:    viper.GetString("COMPANY_NAME"),
			Tagline: viper.GetString("COMPANY_TAGLINE"),
			Phone:   viper.GetString("COMPANY_PHONE"),
			Email:   viper.GetString("COMPANY_EMAIL"),
			Website: viper.GetString("COMPANY_WEBSITE"),
		},
	}

	return config, nil
}
