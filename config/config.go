package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":4000" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"10s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"expenses-app" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Postgres — дискретные переменные подключения (контракт окружения исходной
// системы); хост/пользователь/пароль/имя БД обязательны, дефолтов нет.
type Postgres struct {
	Host     string `required:"true" envconfig:"HOST"`
	Port     int    `default:"5432" envconfig:"PORT"`
	User     string `required:"true" envconfig:"USER"`
	Password string `required:"true" envconfig:"PASSWORD"`
	Name     string `required:"true" envconfig:"NAME"`
	SSLMode  string `default:"disable" envconfig:"SSLMODE"`
	MaxConns int32  `default:"10" envconfig:"MAX_CONNS"`
}

// DSN — собирает строку подключения; пароль экранируется.
func (p Postgres) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.Name,
		RawQuery: "sslmode=" + p.SSLMode,
	}
	return u.String()
}

type Kafka struct {
	Enabled     bool     `default:"false" envconfig:"ENABLED"`
	Brokers     []string `default:"kafka:9092" envconfig:"BROKERS"`
	Topic       string   `default:"payments" envconfig:"TOPIC"`
	GroupID     string   `default:"payments" envconfig:"GROUP_ID"`
	StartOffset string   `default:"last" envconfig:"START_OFFSET"`

	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP     HTTP
	Tracing  Tracing
	Postgres Postgres
	Kafka    Kafka
	Logger   Logger
}

// LoadWithPrefix — читает конфигурацию из окружения с заданным префиксом.
// Отдельный вход нужен тестам, чтобы не задевать реальные переменные.
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load — конфигурация приложения (префикс EXPENSE).
func Load() (Config, error) {
	return LoadWithPrefix("EXPENSE")
}
