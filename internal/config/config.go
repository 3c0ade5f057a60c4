package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable invalid")

const (
	apiPortEnvKey         = "API_PORT"
	ethNodeEnvKey         = "ETH_NODE_URL"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	jwtSecretEnvKey       = "JWT_SECRET"
	contractAddressEnvKey = "PAYMENT_SCHEDULER_ADDRESS"
	dbDriverEnvKey        = "DB_DRIVER"
	redisAddrEnvKey       = "REDIS_ADDR"
	redisPasswordEnvKey   = "REDIS_PASSWORD"
	redisDBEnvKey         = "REDIS_DB"
	sessionTTLEnvKey      = "SESSION_TTL"
	tokenTTLEnvKey        = "TOKEN_TTL_HOURS"
	confirmTimeoutEnvKey  = "CHAIN_CONFIRMATION_TIMEOUT"
	pollIntervalEnvKey    = "CHAIN_POLL_INTERVAL"
	operatorKeyEnvKey     = "OPERATOR_PRIVATE_KEY"
	logLevelEnvKey        = "LOG_LEVEL"
	defaultDBDriver       = "postgres"
	defaultRedisAddr      = "localhost:6379"
	defaultSessionTTL     = 24 * time.Hour
	defaultTokenTTLHours  = 24
	defaultConfirmTimeout = 2 * time.Minute
	defaultPollInterval   = time.Second
	defaultLogLevel       = "info"
)

type App struct {
	Port                string
	NodeURL             string
	DBConnectionURL     string
	DBDriver            string
	JWTSecret           string
	TokenTTLHours       int
	ContractAddress     string
	OperatorPrivateKey  string
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	SessionTTL          time.Duration
	LogLevel            string
}

// NewApp reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func NewApp() (App, error) {
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	contractAddress, ok := os.LookupEnv(contractAddressEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, contractAddressEnvKey)
	}

	dbDriver := lookupOrDefault(dbDriverEnvKey, defaultDBDriver)
	if dbDriver != "postgres" && dbDriver != "mysql" {
		return App{}, fmt.Errorf("%w: %s must be postgres or mysql", errEnvVarInvalid, dbDriverEnvKey)
	}

	redisDB, err := intOrDefault(redisDBEnvKey, 0)
	if err != nil {
		return App{}, err
	}

	tokenTTL, err := intOrDefault(tokenTTLEnvKey, defaultTokenTTLHours)
	if err != nil {
		return App{}, err
	}

	sessionTTL, err := durationOrDefault(sessionTTLEnvKey, defaultSessionTTL)
	if err != nil {
		return App{}, err
	}

	confirmTimeout, err := durationOrDefault(confirmTimeoutEnvKey, defaultConfirmTimeout)
	if err != nil {
		return App{}, err
	}

	pollInterval, err := durationOrDefault(pollIntervalEnvKey, defaultPollInterval)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:                port,
		NodeURL:             nodeURL,
		DBConnectionURL:     dbConn,
		DBDriver:            dbDriver,
		JWTSecret:           jwtSecret,
		TokenTTLHours:       tokenTTL,
		ContractAddress:     contractAddress,
		OperatorPrivateKey:  os.Getenv(operatorKeyEnvKey),
		ConfirmationTimeout: confirmTimeout,
		PollInterval:        pollInterval,
		RedisAddr:           lookupOrDefault(redisAddrEnvKey, defaultRedisAddr),
		RedisPassword:       os.Getenv(redisPasswordEnvKey),
		RedisDB:             redisDB,
		SessionTTL:          sessionTTL,
		LogLevel:            lookupOrDefault(logLevelEnvKey, defaultLogLevel),
	}, nil
}

func lookupOrDefault(key, def string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def
	}
	return val
}

func intOrDefault(key string, def int) (int, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, val)
	}
	return n, nil
}

func durationOrDefault(key string, def time.Duration) (time.Duration, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, val)
	}
	return d, nil
}
