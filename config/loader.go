package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with variables from a .env file added first. Variables
// already set in the environment win. An empty path means ".env" and a
// missing file is not an error.
func LoadFile(envFile string) (*Config, error) {
	path := envFile
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		// Try primary env var, then alternate
		value := os.Getenv(envName)
		if alt := field.Tag.Get("envAlt"); value == "" && alt != "" {
			value = os.Getenv(alt)
		}
		if value == "" {
			value = field.Tag.Get("default")
		}
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int:
		i, err := cast.ToIntE(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(int64(i))

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type().Elem().Kind())
		}
		field.Set(reflect.ValueOf(SplitList(value)))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// SplitList splits a comma-separated value, trimming whitespace and
// dropping empty entries.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Errors{
		"BOQ_HEADER_SCAN_ROWS":   validation.Validate(c.Header.ScanRows, validation.Required, validation.Min(1)),
		"BOQ_HEADER_MIN_MATCHES": validation.Validate(c.Header.MinMatches, validation.Required, validation.Min(1)),
		"BOQ_HEADER_KEYWORDS":    validation.Validate(c.Header.Keywords, validation.Required),
		"BOQ_OUTPUT_DIR":         validation.Validate(c.Output.Dir, validation.Required),
		"BOQ_OUTPUT_FORMAT":      validation.Validate(strings.ToLower(c.Output.Format), validation.In("csv", "xlsx", "pdf")),
		"BOQ_CURRENCY":           validation.Validate(c.Output.Currency, validation.In("INR", "plain")),
		"BOQ_LOG_LEVEL":          validation.Validate(strings.ToLower(c.Logging.Level), validation.In("debug", "info", "warn", "warning", "error")),
		"BOQ_LOG_FORMAT":         validation.Validate(strings.ToLower(c.Logging.Format), validation.In("text", "json")),
	}.Filter()
}
