package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ed1thub/Banking-CLI-app/src/internal/domain"
)

const defaultDataDir = "data"
const defaultBackend = BackendJSONFile
const defaultLogLevel = "info"

const (
	BackendJSONFile = "jsonfile"
	BackendSQLite   = "sqlite"
	BackendBolt     = "bolt"
)

type Config struct {
	DataDir     string
	Backend     string
	LogLevel    string
	SavingsRate decimal.Decimal
}

func Load() (Config, error) {
	// A missing .env file is fine; real environment variables win anyway.
	_ = godotenv.Load()

	dataDir := strings.TrimSpace(os.Getenv("LEDGER_DATA_DIR"))
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("LEDGER_BACKEND")))
	if backend == "" {
		backend = defaultBackend
	}
	switch backend {
	case BackendJSONFile, BackendSQLite, BackendBolt:
	default:
		return Config{}, fmt.Errorf("unsupported backend %q", backend)
	}

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LEDGER_LOG_LEVEL")))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("unsupported log level %q", logLevel)
	}

	savingsRate, err := loadSavingsRate(strings.TrimSpace(os.Getenv("LEDGER_RATES_FILE")))
	if err != nil {
		return Config{}, err
	}

	return Config{
		DataDir:     dataDir,
		Backend:     backend,
		LogLevel:    logLevel,
		SavingsRate: savingsRate,
	}, nil
}

type ratesFile struct {
	SavingsInterestRate string `yaml:"savings_interest_rate"`
}

// loadSavingsRate reads the optional rates override file. It only affects
// newly opened savings accounts; existing accounts keep their stored rate.
func loadSavingsRate(path string) (decimal.Decimal, error) {
	if path == "" {
		return domain.DefaultSavingsInterestRate, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSavingsInterestRate, nil
		}
		return decimal.Decimal{}, fmt.Errorf("read rates file: %w", err)
	}

	var parsed ratesFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse rates file: %w", err)
	}

	trimmed := strings.TrimSpace(parsed.SavingsInterestRate)
	if trimmed == "" {
		return domain.DefaultSavingsInterestRate, nil
	}

	rate, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse savings interest rate: %w", err)
	}
	if rate.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("savings interest rate must be positive, got %s", rate)
	}

	return rate, nil
}
