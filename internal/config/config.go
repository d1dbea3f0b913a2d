package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars        `json:"env"`
	Options *SearchOptions `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	SpoonacularAPIKey string        `env:"SPOONACULAR_API_KEY"`
	SpoonacularURL    string        `env:"SPOONACULAR_BASE_URL" envDefault:"https://api.spoonacular.com"`
	ImageHost         string        `env:"IMAGE_HOST" envDefault:"img.spoonacular.com"`
	PageSize          int           `env:"PAGE_SIZE" envDefault:"20"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	CacheTTL          time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	CacheSize         int           `env:"CACHE_SIZE" envDefault:"512"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MaxSessions       int           `env:"MAX_SESSIONS" envDefault:"10000"`
	RateLimitRPS      int           `env:"RATE_LIMIT_RPS" envDefault:"10" optional:"true"`
	RedisURL          string        `env:"REDIS_URL" optional:"true"`
	SearchOptionsPath string        `env:"SEARCH_OPTIONS_PATH" optional:"true"`
	CORSOrigins       string        `env:"CORS_ORIGINS" optional:"true"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set
// and that the upstream URL and image host are well formed.
func (c *Config) CheckConfigEnvFields() error {
	if err := checkFieldsRecursive(reflect.ValueOf(c.EnvVars)); err != nil {
		return err
	}
	if !govalidator.IsURL(c.EnvVars.SpoonacularURL) {
		return fmt.Errorf("$SpoonacularURL is not a valid URL: %q", c.EnvVars.SpoonacularURL)
	}
	if !govalidator.IsDNSName(c.EnvVars.ImageHost) {
		return fmt.Errorf("$ImageHost is not a valid host name: %q", c.EnvVars.ImageHost)
	}
	if c.EnvVars.PageSize <= 0 || c.EnvVars.PageSize > 100 {
		return fmt.Errorf("$PageSize must be between 1 and 100, got %d", c.EnvVars.PageSize)
	}
	return nil
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if isZeroValue(field) {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}
