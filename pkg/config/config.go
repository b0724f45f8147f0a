package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	ERP     ERPConfig
	Session SessionConfig
	Metrics MetricsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string // vacío = sin /swagger
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ERPConfig acceso al backend REST del ERP.
type ERPConfig struct {
	BaseURL string // ej: https://erp.example.pe/api
	Token   string // bearer estático
	Timeout time.Duration
}

// SessionConfig valores por defecto del contexto de sesión cuando el token no los trae,
// y tiempo de vida de los borradores en memoria.
type SessionConfig struct {
	CompanyID   string
	WarehouseID string
	UserID      string
	DraftTTL    time.Duration
}

// MetricsConfig exposición de métricas Prometheus.
type MetricsConfig struct {
	Enabled bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, ERP_API_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "guias-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "guias-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		ERP: ERPConfig{
			BaseURL: strings.TrimRight(getString(v, "ERP_API_URL", ""), "/"),
			Token:   getString(v, "ERP_API_TOKEN", ""),
			Timeout: time.Duration(getInt(v, "ERP_API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			CompanyID:   getString(v, "SESSION_COMPANY_ID", ""),
			WarehouseID: getString(v, "SESSION_WAREHOUSE_ID", ""),
			UserID:      getString(v, "SESSION_USER_ID", ""),
			DraftTTL:    time.Duration(getInt(v, "DRAFT_TTL_MINUTES", 120)) * time.Minute,
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ERP.BaseURL == "" {
		return fmt.Errorf("config: ERP_API_URL es obligatorio")
	}
	if c.ERP.Timeout <= 0 {
		return fmt.Errorf("config: ERP_API_TIMEOUT_SECONDS debe ser mayor a cero")
	}
	if c.Session.DraftTTL <= 0 {
		return fmt.Errorf("config: DRAFT_TTL_MINUTES debe ser mayor a cero")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
