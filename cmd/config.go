package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	BrokerLog      = "log"
	BrokerRabbitMQ = "rabbitmq"
	BrokerKafka    = "kafka"
)

// Config is read from defaults, then an optional YAML file, then an optional
// .env file and finally the process environment. Later sources win.
type Config struct {
	HTTPPort      string        `yaml:"httpPort" env:"HTTP_PORT"`
	HTTPRateLimit float64       `yaml:"httpRateLimit" env:"HTTP_RATE_LIMIT"`
	HTTPRateBurst int           `yaml:"httpRateBurst" env:"HTTP_RATE_BURST"`
	JWTSecret     string        `yaml:"jwtSecret" env:"JWT_SECRET"`
	JWTTokenTTL   time.Duration `yaml:"jwtTokenTTL" env:"JWT_TOKEN_TTL"`
	LedgerManager string        `yaml:"ledgerManager" env:"LEDGER_MANAGER"`

	DBDriver     string `yaml:"dbDriver" env:"DB_DRIVER"`
	DBHost       string `yaml:"dbHost" env:"DB_HOST"`
	DBPort       string `yaml:"dbPort" env:"DB_PORT"`
	DBUser       string `yaml:"dbUser" env:"DB_USER"`
	DBPassword   string `yaml:"dbPassword" env:"DB_PASSWORD"`
	DBName       string `yaml:"dbName" env:"DB_NAME"`
	DBSslMode    string `yaml:"dbSslMode" env:"DB_SSLMODE"`
	DBSQLitePath string `yaml:"dbSqlitePath" env:"DB_SQLITE_PATH"`

	EventBroker      string   `yaml:"eventBroker" env:"EVENT_BROKER"`
	RelaySchedule    string   `yaml:"relaySchedule" env:"RELAY_SCHEDULE"`
	RelayBatchSize   int      `yaml:"relayBatchSize" env:"RELAY_BATCH_SIZE"`
	RabbitMQURL      string   `yaml:"rabbitmqUrl" env:"RABBITMQ_URL"`
	RabbitMQExchange string   `yaml:"rabbitmqExchange" env:"RABBITMQ_EXCHANGE"`
	KafkaBrokers     []string `yaml:"kafkaBrokers" env:"KAFKA_BROKERS"`
	KafkaTopic       string   `yaml:"kafkaTopic" env:"KAFKA_TOPIC"`

	LogLevel string `yaml:"logLevel" env:"LOG_LEVEL"`
	LogFile  string `yaml:"logFile" env:"LOG_FILE"`
}

func DefaultConfig() Config {
	return Config{
		HTTPPort:         "8080",
		HTTPRateLimit:    20,
		HTTPRateBurst:    40,
		JWTTokenTTL:      24 * time.Hour,
		DBDriver:         DBDriverPostgres,
		DBHost:           "localhost",
		DBPort:           "5432",
		DBUser:           "postgres",
		DBName:           "foodorder",
		DBSslMode:        "disable",
		DBSQLitePath:     "foodorder.db",
		EventBroker:      BrokerLog,
		RelaySchedule:    "* * * * * *",
		RelayBatchSize:   100,
		RabbitMQExchange: "foodorder.events",
		KafkaTopic:       "foodorder.events",
		LogLevel:         "info",
	}
}

// LoadConfig builds the configuration. Both file paths are optional: an empty
// yamlPath is skipped and a missing envFile is ignored.
func LoadConfig(yamlPath, envFile string) (Config, error) {
	cfg := DefaultConfig()

	if yamlPath != "" {
		raw, err := os.ReadFile(yamlPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", yamlPath, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("http port is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required"))
	}
	if c.JWTTokenTTL <= 0 {
		errs = append(errs, errors.New("jwt token ttl must be positive"))
	}
	if strings.TrimSpace(c.LedgerManager) == "" {
		errs = append(errs, errors.New("ledger manager account is required"))
	}
	switch c.DBDriver {
	case DBDriverPostgres, DBDriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown db driver %q", c.DBDriver))
	}
	switch c.EventBroker {
	case BrokerLog:
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			errs = append(errs, errors.New("rabbitmq url is required"))
		}
	case BrokerKafka:
		if len(c.KafkaBrokers) == 0 {
			errs = append(errs, errors.New("kafka brokers are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown event broker %q", c.EventBroker))
	}
	return errors.Join(errs...)
}

// PostgresDSN is the connection string for the postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
