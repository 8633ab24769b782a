package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramApiToken string
	TelegramChatID   string

	BrokerApiKey    string
	BrokerSecretKey string
	BrokerUrl       string

	LogLevel string
	LokiHost string
	HTTPPort string

	PassInterval  time.Duration
	PassTimeout   time.Duration
	BrokerTimeout time.Duration
	StuckAfter    time.Duration
	StaleAfter    time.Duration
	ViewWindow    time.Duration
	QtyTolerance  float64

	DB    *DB
	Mongo *Mongo
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Mongo struct {
	Host     string
	User     string
	Password string
	DBName   string
}

var ErrEnvNotFound = errors.New("err env not found")

func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var db DB
	var mongo Mongo

	err := godotenv.Load(confFileName)
	if err != nil {
		return err
	}

	if cfg.TelegramApiToken, err = cfg.set("TELEGRAM_API_TOKEN"); err != nil {
		return err
	}

	if cfg.TelegramChatID, err = cfg.set("TELEGRAM_CHAT_ID"); err != nil {
		return err
	}

	if cfg.BrokerApiKey, err = cfg.set("BROKER_API_KEY"); err != nil {
		return err
	}

	if cfg.BrokerSecretKey, err = cfg.set("BROKER_SECRET_KEY"); err != nil {
		return err
	}

	if cfg.BrokerUrl, err = cfg.set("BROKER_URL"); err != nil {
		return err
	}

	if db.Host, err = cfg.set("PG_HOST"); err != nil {
		return err
	}

	if db.User, err = cfg.set("PG_USER"); err != nil {
		return err
	}

	if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
		return err
	}

	if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
		return err
	}

	if db.SSLMode, err = cfg.set("PG_SSL_MODE"); err != nil {
		return err
	}

	if mongo.Host, err = cfg.set("MONGO_HOST"); err != nil {
		return err
	}

	if mongo.User, err = cfg.set("MONGO_USER"); err != nil {
		return err
	}

	if mongo.Password, err = cfg.set("MONGO_PASSWORD"); err != nil {
		return err
	}

	if mongo.DBName, err = cfg.set("MONGO_DBNAME"); err != nil {
		return err
	}

	cfg.LogLevel = setDefault("LOG_LEVEL", "INFO")
	cfg.LokiHost = setDefault("LOKI_HOST", "")
	cfg.HTTPPort = setDefault("HTTP_PORT", "8080")

	// Tunable policy, not contract: the thresholds below are operational
	// defaults carried from production settings.
	if cfg.PassInterval, err = setDefaultDuration("PASS_INTERVAL_SEC", 300*time.Second); err != nil {
		return err
	}

	if cfg.PassTimeout, err = setDefaultDuration("PASS_TIMEOUT_SEC", 60*time.Second); err != nil {
		return err
	}

	if cfg.BrokerTimeout, err = setDefaultDuration("BROKER_TIMEOUT_SEC", 5*time.Second); err != nil {
		return err
	}

	stuckMin, err := setDefaultInt("STUCK_ORDER_MIN", 5)
	if err != nil {
		return err
	}
	cfg.StuckAfter = time.Duration(stuckMin) * time.Minute

	staleMin, err := setDefaultInt("STALE_WINDOW_MIN", 30)
	if err != nil {
		return err
	}
	cfg.StaleAfter = time.Duration(staleMin) * time.Minute

	windowDays, err := setDefaultInt("VIEW_WINDOW_DAYS", 30)
	if err != nil {
		return err
	}
	cfg.ViewWindow = time.Duration(windowDays) * 24 * time.Hour

	tolerancePct, err := setDefaultInt("QTY_TOLERANCE_PCT", 10)
	if err != nil {
		return err
	}
	cfg.QtyTolerance = float64(tolerancePct) / 100

	cfg.DB = &db
	cfg.Mongo = &mongo

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (m *Mongo) DSN() string {
	return fmt.Sprintf("mongodb://%s:27017", m.Host)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", ErrEnvNotFound
	}

	return os.Getenv(key), nil
}

func setDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func setDefaultInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	return strconv.Atoi(v)
}

func setDefaultDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	sec, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}

	return time.Duration(sec) * time.Second, nil
}
