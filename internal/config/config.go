package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Teburio   Teburio   `mapstructure:",squash"`
	Weather   Weather   `mapstructure:",squash"`
	DailySync DailySync `mapstructure:",squash"`
	Model     Model     `mapstructure:",squash"`
	Staffing  Staffing  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Teburio holds the credentials for the booking platform's GraphQL API.
type Teburio struct {
	URL          string `mapstructure:"teburio_api_url"`
	AccountToken string `mapstructure:"teburio_account_token"`
	LocationID   string `mapstructure:"teburio_location_id"`
}

type Weather struct {
	ForecastURL  string  `mapstructure:"weather_forecast_url"`
	ArchiveURL   string  `mapstructure:"weather_archive_url"`
	Latitude     float64 `mapstructure:"weather_latitude"`
	Longitude    float64 `mapstructure:"weather_longitude"`
	ForecastDays int     `mapstructure:"weather_forecast_days"`
	Timezone     string  `mapstructure:"weather_timezone"`
	LocationName string  `mapstructure:"weather_location_name"`
}

type DailySync struct {
	CronSchedule        string `mapstructure:"daily_sync_cron"`
	Enabled             bool   `mapstructure:"daily_sync_enabled"`
	BookingLookbackDays int    `mapstructure:"daily_sync_booking_lookback_days"`
	BookingHorizonDays  int    `mapstructure:"daily_sync_booking_horizon_days"`
	SnapshotHorizonDays int    `mapstructure:"daily_sync_snapshot_horizon_days"`
}

type Model struct {
	ArtifactPath    string `mapstructure:"model_artifact_path"`
	Name            string `mapstructure:"model_name"`
	DaysAhead       int    `mapstructure:"model_days_ahead"`
	HistorySeedDays int    `mapstructure:"model_history_seed_days"`
}

type Staffing struct {
	Capacity int `mapstructure:"staffing_capacity"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gastro")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TEBURIO_API_URL", "")
	viper.SetDefault("TEBURIO_ACCOUNT_TOKEN", "")
	viper.SetDefault("TEBURIO_LOCATION_ID", "")

	viper.SetDefault("WEATHER_FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("WEATHER_ARCHIVE_URL", "https://archive-api.open-meteo.com/v1/era5")
	viper.SetDefault("WEATHER_LATITUDE", 0.0)
	viper.SetDefault("WEATHER_LONGITUDE", 0.0)
	viper.SetDefault("WEATHER_FORECAST_DAYS", 16)
	viper.SetDefault("WEATHER_TIMEZONE", "Europe/Berlin")
	viper.SetDefault("WEATHER_LOCATION_NAME", "Kiel")

	viper.SetDefault("DAILY_SYNC_CRON", "0 5 * * *") // every day at 5am
	viper.SetDefault("DAILY_SYNC_ENABLED", true)
	viper.SetDefault("DAILY_SYNC_BOOKING_LOOKBACK_DAYS", 14)
	viper.SetDefault("DAILY_SYNC_BOOKING_HORIZON_DAYS", 60)
	viper.SetDefault("DAILY_SYNC_SNAPSHOT_HORIZON_DAYS", 60)

	viper.SetDefault("MODEL_ARTIFACT_PATH", "models/walkin_ridge_prod.json")
	viper.SetDefault("MODEL_NAME", "ridge_v1")
	viper.SetDefault("MODEL_DAYS_AHEAD", 16)
	viper.SetDefault("MODEL_HISTORY_SEED_DAYS", 14)

	viper.SetDefault("STAFFING_CAPACITY", 350)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the settings without which no sync can run. A missing value
// here is a configuration error and aborts before any work is done.
func (c *Config) Validate() error {
	var missing []string

	if c.Teburio.URL == "" {
		missing = append(missing, "TEBURIO_API_URL")
	}
	if c.Teburio.AccountToken == "" {
		missing = append(missing, "TEBURIO_ACCOUNT_TOKEN")
	}
	if c.Teburio.LocationID == "" {
		missing = append(missing, "TEBURIO_LOCATION_ID")
	}
	if c.Weather.Latitude == 0 && c.Weather.Longitude == 0 {
		missing = append(missing, "WEATHER_LATITUDE/WEATHER_LONGITUDE")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("No .env file found in any known location")
}
