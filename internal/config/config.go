package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fairwaypool/golf-pickem/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	HTTPAddr                      string
	DBURL                         string
	DBDisablePreparedBinary       bool
	CORSAllowedOrigins            []string
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
	PprofEnabled                  bool
	PprofAddr                     string
	GolfDataEnabled               bool
	GolfDataBaseURL               string
	GolfDataAPIKey                string
	GolfDataAPIHost               string
	GolfDataTimeout               time.Duration
	GolfDataMaxRetries            int
	GolfDataCircuitEnabled        bool
	GolfDataCircuitFailureCount   int
	GolfDataCircuitOpenTimeout    time.Duration
	GolfDataCircuitHalfOpenMaxReq int
	InternalJobToken              string
	SweepEnabled                  bool
	SweepInterval                 time.Duration
	UptraceEnabled                bool
	UptraceDSN                    string
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeUploadRate           time.Duration
	LogLevel                      logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	golfDataEnabled, err := strconv.ParseBool(getEnv("GOLFDATA_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GOLFDATA_ENABLED: %w", err)
	}
	golfDataAPIKey := strings.TrimSpace(getEnv("GOLFDATA_API_KEY", ""))
	if golfDataEnabled && golfDataAPIKey == "" {
		return Config{}, fmt.Errorf("GOLFDATA_API_KEY is required when GOLFDATA_ENABLED=true")
	}
	golfDataTimeout, err := time.ParseDuration(getEnv("GOLFDATA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GOLFDATA_TIMEOUT: %w", err)
	}
	if golfDataTimeout <= 0 {
		return Config{}, fmt.Errorf("GOLFDATA_TIMEOUT must be > 0")
	}
	golfDataMaxRetries, err := getEnvAsInt("GOLFDATA_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse GOLFDATA_MAX_RETRIES: %w", err)
	}
	if golfDataMaxRetries < 0 {
		return Config{}, fmt.Errorf("GOLFDATA_MAX_RETRIES must be >= 0")
	}
	golfDataCircuitEnabled, err := strconv.ParseBool(getEnv("GOLFDATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GOLFDATA_CIRCUIT_ENABLED: %w", err)
	}
	golfDataCircuitFailureCount, err := getEnvAsInt("GOLFDATA_CIRCUIT_FAILURE_COUNT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse GOLFDATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if golfDataCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("GOLFDATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	golfDataCircuitOpenTimeout, err := time.ParseDuration(getEnv("GOLFDATA_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GOLFDATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if golfDataCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("GOLFDATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	golfDataCircuitHalfOpenMaxReq, err := getEnvAsInt("GOLFDATA_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse GOLFDATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if golfDataCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("GOLFDATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	sweepEnabled, err := strconv.ParseBool(getEnv("EARNINGS_SWEEP_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse EARNINGS_SWEEP_ENABLED: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("EARNINGS_SWEEP_INTERVAL", "6h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse EARNINGS_SWEEP_INTERVAL: %w", err)
	}
	if sweepInterval <= 0 {
		return Config{}, fmt.Errorf("EARNINGS_SWEEP_INTERVAL must be > 0")
	}
	if sweepEnabled && !golfDataEnabled {
		return Config{}, fmt.Errorf("EARNINGS_SWEEP_ENABLED requires GOLFDATA_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "golf-pickem-api"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                      getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                         strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:       dbDisablePreparedBinary,
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                   readTimeout,
		WriteTimeout:                  writeTimeout,
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		GolfDataEnabled:               golfDataEnabled,
		GolfDataBaseURL:               strings.TrimSpace(getEnv("GOLFDATA_BASE_URL", "")),
		GolfDataAPIKey:                golfDataAPIKey,
		GolfDataAPIHost:               strings.TrimSpace(getEnv("GOLFDATA_API_HOST", "live-golf-data.p.rapidapi.com")),
		GolfDataTimeout:               golfDataTimeout,
		GolfDataMaxRetries:            golfDataMaxRetries,
		GolfDataCircuitEnabled:        golfDataCircuitEnabled,
		GolfDataCircuitFailureCount:   golfDataCircuitFailureCount,
		GolfDataCircuitOpenTimeout:    golfDataCircuitOpenTimeout,
		GolfDataCircuitHalfOpenMaxReq: golfDataCircuitHalfOpenMaxReq,
		InternalJobToken:              strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		SweepEnabled:                  sweepEnabled,
		SweepInterval:                 sweepInterval,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
		LogLevel:                      logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
