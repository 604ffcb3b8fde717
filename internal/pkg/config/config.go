package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultRulesCacheTTL      = 30 * time.Second
	defaultOutboxBatchSize    = 100
	defaultOutboxMaxAttempts  = 8
	defaultOutboxLease        = 30 * time.Second
	defaultNotifyCallTimeout  = 3 * time.Second
	defaultOrderPlacedTopic   = "order.placed"
	defaultStatusChangedTopic = "delivery.status.changed"
	defaultTimeZone           = "UTC"
)

type (
	Tasks struct {
		OutboxRelayInterval time.Duration
		OutboxBatchSize     int
		OutboxMaxAttempts   int
		OutboxLease         time.Duration
	}

	HTTPServer struct {
		Port                string
		RequestTimeout      time.Duration // middleware timeout
		RateLimiterCapacity int           // middleware rate limiter capacity per client
		RateLimiterRefill   int           // middleware rate limiter refill tokens/sec
		PprofEnabled        bool
		PprofPort           string
	}

	Database struct {
		Host                string
		Port                string
		User                string
		Password            string
		DBName              string
		SSLMode             string
		MigrationsAutoApply bool
	}

	Auth struct {
		JWTSecret string
		JWTIssuer string
	}

	Ledger struct {
		Location      *time.Location // часовой пояс для "сегодня" и "эта неделя"
		RulesCacheTTL time.Duration
	}

	NotificationService struct {
		GRPCHost    string
		CallTimeout time.Duration
	}

	Telegram struct {
		BotToken    string
		AdminChatID int64
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		ConsumerGroup      string
		OrderPlacedTopic   string
		StatusChangedTopic string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderPlaced OrderPlaced
	}

	OrderPlaced struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel            string
		Tasks               Tasks
		Server              HTTPServer
		Database            Database
		Auth                Auth
		Ledger              Ledger
		NotificationService NotificationService
		Telegram            Telegram
		Kafka               Kafka
	}
)

func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	res := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			res = append(res, b)
		}
	}
	return res
}

func (t Telegram) Enabled() bool {
	return t.BotToken != "" && t.AdminChatID != 0
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	relayInterval, err := osGetEnvDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	batchSize, err := osGetInt("BACKGROUND_OUTBOX_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxAttempts, err := osGetInt("BACKGROUND_OUTBOX_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lease, err := osGetEnvDuration("BACKGROUND_OUTBOX_LEASE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderPlacedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_PLACED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterCapacity, err := osGetInt("MIDDLEWARE_RATE_LIMIT_CAPACITY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterRefill, err := osGetInt("MIDDLEWARE_RATE_LIMIT_REFILL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrationsAutoApply, err := osGetBool("MIGRATIONS_AUTO_APPLY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rulesCacheTTL, err := osGetEnvDuration("LEDGER_RULES_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	location, err := osGetLocation("LEDGER_TIMEZONE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notifyTimeout, err := osGetEnvDuration("NOTIFICATION_SERVICE_CALL_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	adminChatID, err := osGetInt64("TELEGRAM_ADMIN_CHAT_ID")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			OutboxRelayInterval: relayInterval,
			OutboxBatchSize:     orDefault(batchSize, defaultOutboxBatchSize),
			OutboxMaxAttempts:   orDefault(maxAttempts, defaultOutboxMaxAttempts),
			OutboxLease:         orDefault(lease, defaultOutboxLease),
		},
		Server: HTTPServer{
			Port:                os.Getenv("PORT"),
			RequestTimeout:      requestTimeout,
			RateLimiterCapacity: rateLimiterCapacity,
			RateLimiterRefill:   rateLimiterRefill,
			PprofEnabled:        pprofEnabled,
			PprofPort:           os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:                os.Getenv("POSTGRES_HOST"),
			Port:                os.Getenv("POSTGRES_PORT"),
			User:                os.Getenv("POSTGRES_USER"),
			Password:            os.Getenv("POSTGRES_PASSWORD"),
			DBName:              os.Getenv("POSTGRES_DB"),
			SSLMode:             os.Getenv("POSTGRES_SSLMODE"),
			MigrationsAutoApply: migrationsAutoApply,
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			JWTIssuer: os.Getenv("AUTH_JWT_ISSUER"),
		},
		Ledger: Ledger{
			Location:      location,
			RulesCacheTTL: orDefault(rulesCacheTTL, defaultRulesCacheTTL),
		},
		NotificationService: NotificationService{
			GRPCHost:    os.Getenv("NOTIFICATION_SERVICE_GRPC_HOST"),
			CallTimeout: orDefault(notifyTimeout, defaultNotifyCallTimeout),
		},
		Telegram: Telegram{
			BotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
			AdminChatID: adminChatID,
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			OrderPlacedTopic:   orDefault(os.Getenv("KAFKA_ORDER_PLACED_TOPIC"), defaultOrderPlacedTopic),
			StatusChangedTopic: orDefault(os.Getenv("KAFKA_STATUS_CHANGED_TOPIC"), defaultStatusChangedTopic),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderPlaced: OrderPlaced{
					ProcessTimeout: orderPlacedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterCapacity == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_CAPACITY is required")
	}
	if cfg.Server.RateLimiterRefill == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_REFILL is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}
	if cfg.Tasks.OutboxBatchSize < 0 || cfg.Tasks.OutboxMaxAttempts < 0 {
		return errors.New("BACKGROUND_OUTBOX_BATCH_SIZE and BACKGROUND_OUTBOX_MAX_ATTEMPTS must be positive")
	}

	if cfg.NotificationService.GRPCHost == "" {
		return errors.New("NOTIFICATION_SERVICE_GRPC_HOST is required")
	}

	if (cfg.Telegram.BotToken == "") != (cfg.Telegram.AdminChatID == 0) {
		return errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_ADMIN_CHAT_ID must be set together")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderPlaced.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_PLACED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func orDefault[T comparable](val, def T) T {
	var zero T
	if val == zero {
		return def
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int64 format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetLocation(s string) (*time.Location, error) {
	val := os.Getenv(s)
	if val == "" {
		val = defaultTimeZone
	}

	loc, err := time.LoadLocation(val)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone for %s=%q: %w", s, val, err)
	}
	return loc, nil
}
