package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel   string
	HTTP       HTTPConfig
	Database   DatabaseConfig
	Issuer     IssuerConfig
	Payee      PayeeConfig
	SMS        SMSConfig
	Email      EmailConfig
	Links      LinksConfig
	Phone      PhoneConfig
	Dispatcher DispatcherConfig
	Jobs       JobsConfig
}

type HTTPConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the key/value connection string understood by the pgx driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// IssuerConfig identifies the business on quotations.
type IssuerConfig struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Website  string
	Currency string
}

type PayeeConfig struct {
	PayBillNumber     string
	AccountNumber     string
	BankName          string
	BankAccountName   string
	BankAccountNumber string
	BankBranch        string
}

// SMSConfig disables SMS when APIKey is empty.
type SMSConfig struct {
	BaseURL  string
	Username string
	APIKey   string
	SenderID string
	Timeout  time.Duration
}

// EmailConfig disables email when Host is empty.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type LinksConfig struct {
	PublicBaseURL string
}

type PhoneConfig struct {
	CountryCode    string
	NationalLength int
}

type DispatcherConfig struct {
	Workers     int
	QueueSize   int
	TaskTimeout time.Duration
}

type JobsConfig struct {
	StatsSchedule string
}

// LoadConfig reads envFile into the process environment, if it exists, and
// builds the Config from environment variables. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	r := envReader{}
	cfg := Config{
		LogLevel: r.str("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Port:            r.str("HTTP_PORT", "8080"),
			ShutdownTimeout: r.duration("HTTP_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:     r.str("DB_HOST", "localhost"),
			Port:     r.str("DB_PORT", "5432"),
			User:     r.str("DB_USER", "postgres"),
			Password: r.str("DB_PASSWORD", ""),
			Name:     r.str("DB_NAME", "fulfillment"),
			SSLMode:  r.str("DB_SSLMODE", "disable"),
		},
		Issuer: IssuerConfig{
			Name:     r.str("ISSUER_NAME", ""),
			Address:  r.str("ISSUER_ADDRESS", ""),
			Phone:    r.str("ISSUER_PHONE", ""),
			Email:    r.str("ISSUER_EMAIL", ""),
			Website:  r.str("ISSUER_WEBSITE", ""),
			Currency: r.str("ISSUER_CURRENCY", "KES"),
		},
		Payee: PayeeConfig{
			PayBillNumber:     r.str("PAYEE_PAYBILL_NUMBER", ""),
			AccountNumber:     r.str("PAYEE_ACCOUNT_NUMBER", ""),
			BankName:          r.str("PAYEE_BANK_NAME", ""),
			BankAccountName:   r.str("PAYEE_BANK_ACCOUNT_NAME", ""),
			BankAccountNumber: r.str("PAYEE_BANK_ACCOUNT_NUMBER", ""),
			BankBranch:        r.str("PAYEE_BANK_BRANCH", ""),
		},
		SMS: SMSConfig{
			BaseURL:  r.str("SMS_BASE_URL", "https://api.africastalking.com"),
			Username: r.str("SMS_USERNAME", ""),
			APIKey:   r.str("SMS_API_KEY", ""),
			SenderID: r.str("SMS_SENDER_ID", ""),
			Timeout:  r.duration("SMS_TIMEOUT", 10*time.Second),
		},
		Email: EmailConfig{
			Host:     r.str("SMTP_HOST", ""),
			Port:     r.integer("SMTP_PORT", 587),
			Username: r.str("SMTP_USERNAME", ""),
			Password: r.str("SMTP_PASSWORD", ""),
			From:     r.str("SMTP_FROM", ""),
			Timeout:  r.duration("SMTP_TIMEOUT", 15*time.Second),
		},
		Links: LinksConfig{
			PublicBaseURL: r.str("PUBLIC_BASE_URL", "http://localhost:8080/api/v1"),
		},
		Phone: PhoneConfig{
			CountryCode:    r.str("PHONE_COUNTRY_CODE", kernel.DefaultCountryCode),
			NationalLength: r.integer("PHONE_NATIONAL_LENGTH", kernel.DefaultNationalLength),
		},
		Dispatcher: DispatcherConfig{
			Workers:     r.integer("DISPATCHER_WORKERS", 4),
			QueueSize:   r.integer("DISPATCHER_QUEUE_SIZE", 256),
			TaskTimeout: r.duration("DISPATCHER_TASK_TIMEOUT", 30*time.Second),
		},
		Jobs: JobsConfig{
			StatsSchedule: r.str("JOBS_STATS_SCHEDULE", "0 */5 * * * *"),
		},
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envReader collects parse errors so every bad variable is reported at once.
type envReader struct {
	errs []error
}

func (r *envReader) str(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (r *envReader) integer(key string, fallback int) int {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}
