package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrInvalidConfig is returned when the provided config is not a pointer
	// to a struct that embeds EnvConfig.
	ErrInvalidConfig = errors.New("config must be a pointer to a struct embedding EnvConfig")

	// ErrVarNotSet is returned when a required environment variable is not set
	// and the field carries no default tag.
	ErrVarNotSet = errors.New("env var not set")

	// ErrUnsupportedVarType is returned when an env tag is placed on a field
	// whose Go type cannot be parsed from an environment variable.
	ErrUnsupportedVarType = errors.New("unsupported env var type")
)

// EnvConfig must be embedded in configuration structs to enable environment
// variable parsing. It records the namespace the struct was parsed under.
type EnvConfig struct {
	namespace string
}

// Namespace returns the env var prefix the config was parsed with.
func (ec *EnvConfig) Namespace() string { return ec.namespace }

func embeddedEnvConfig(cfg any) (*EnvConfig, error) {
	val := reflect.ValueOf(cfg)

	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return nil, ErrInvalidConfig
	}

	val = val.Elem()
	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.Anonymous || field.Type != reflect.TypeOf(EnvConfig{}) {
			continue
		}

		if fieldVal := val.Field(i); fieldVal.CanAddr() {
			//nolint:forcetypeassert
			return fieldVal.Addr().Interface().(*EnvConfig), nil
		}
	}

	return nil, ErrInvalidConfig
}

// Parse loads configuration values from environment variables into cfg.
// cfg must embed EnvConfig and tag its fields with `env:"NAME"`; optional
// `default:"..."` tags supply fallback values. The namespace is prepended to
// every variable name, and more specific namespace prefixes win over less
// specific ones (SAFEGUARD_CLIENT_X beats SAFEGUARD_X). Nested structs are
// walked with their `envPrefix` tag prepended. String, int, and bool fields
// are supported.
func Parse(ctx context.Context, cfg any, namespace string) error {
	envConfig, err := embeddedEnvConfig(cfg)
	if err != nil {
		return fmt.Errorf("embedded env config: %w", err)
	}

	envConfig.namespace = namespace

	return parseStruct(namespace, "", cfg)
}

func parseStruct(namespace, prefix string, cfg any) error {
	typ := reflect.TypeOf(cfg).Elem()
	val := reflect.ValueOf(cfg).Elem()

	for i := range typ.NumField() {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		if field.Type.Kind() == reflect.Struct && field.Tag.Get("env") == "" {
			envPrefix := field.Tag.Get("envPrefix")

			if err := parseStruct(namespace, prefix+envPrefix, fieldVal.Addr().Interface()); err != nil {
				return err
			}

			continue
		}

		if err := setField(namespace, prefix, field, fieldVal); err != nil {
			return fmt.Errorf("set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// lookupVar resolves an env var by trying namespace prefixes from most to
// least specific: NS_A_NS_B_NAME, then NS_A_NAME.
func lookupVar(namespace, name string) (string, bool) {
	nsParts := strings.Split(namespace, "_")

	for i := len(nsParts); i > 0; i-- {
		candidate := strings.Join(nsParts[:i], "_")
		if candidate != "" {
			candidate += "_"
		}

		if value, ok := os.LookupEnv(candidate + name); ok {
			return value, true
		}
	}

	return "", false
}

func setField(
	namespace string,
	prefix string,
	field reflect.StructField,
	fieldVal reflect.Value,
) error {
	envTag := field.Tag.Get("env")
	if envTag == "" {
		return nil // untagged fields are left alone
	}

	value, ok := lookupVar(namespace, prefix+envTag)
	if !ok {
		defaultValue, hasDefault := field.Tag.Lookup("default")
		if !hasDefault {
			return fmt.Errorf("%w: %s", ErrVarNotSet, envTag)
		}

		value = defaultValue
	}

	//nolint:exhaustive
	switch field.Type.Kind() {
	case reflect.String:
		fieldVal.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", envTag, err)
		}

		fieldVal.SetInt(intValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", envTag, err)
		}

		fieldVal.SetBool(boolValue)
	default:
		return fmt.Errorf("%w: %s (%v)", ErrUnsupportedVarType, envTag, field.Type.Kind())
	}

	return nil
}
