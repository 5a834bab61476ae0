package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate names fields by their koanf keys so problems read like the
// YAML that caused them.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
		if name == "" {
			return strings.ToLower(fld.Name)
		}

		return name
	})

	v.RegisterStructValidation(validateDatabase, DatabaseConfig{})
	v.RegisterStructValidation(validateCORS, CORSConfig{})

	return v
}

// Problem is one invalid setting.
type Problem struct {
	// Key is the dotted koanf key, e.g. server.api_root.
	Key     string
	Message string
}

// ValidationError lists every invalid setting found in one pass.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		lines = append(lines, p.Key+" "+p.Message)
	}

	return "config validation failed:\n  " + strings.Join(lines, "\n  ")
}

// Validate checks every section. The service refuses to start on error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]Problem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, Problem{Key: keyOf(fe.Namespace()), Message: explain(fe)})
	}

	return &ValidationError{Problems: problems}
}

// keyOf drops the root struct name: Config.server.api_root -> server.api_root.
func keyOf(namespace string) string {
	_, key, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return key
}

func explain(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		field, _, _ := strings.Cut(param, " ")
		return fmt.Sprintf("is required when %s is set", strings.ToLower(field))
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "oneof":
		return "must be one of: " + param
	case "url":
		return "must be a valid URL"
	case "startswith":
		return "must start with " + param
	case "mysql_only":
		return "are only supported with the mysql driver"
	case "ltefield":
		return "must not exceed " + param
	case "origins":
		return "must list at least one origin when allow_all is false"
	default:
		return "failed validation: " + fe.Tag()
	}
}

func validateDatabase(sl validator.StructLevel) {
	db, ok := sl.Current().Interface().(DatabaseConfig)
	if !ok {
		return
	}

	if len(db.Replicas) > 0 && db.Driver != "mysql" {
		sl.ReportError(db.Replicas, "replicas", "Replicas", "mysql_only", "")
	}

	if db.MaxOpenConns > 0 && db.MaxIdleConns > db.MaxOpenConns {
		sl.ReportError(db.MaxIdleConns, "max_idle_conns", "MaxIdleConns", "ltefield", "max_open_conns")
	}
}

func validateCORS(sl validator.StructLevel) {
	cors, ok := sl.Current().Interface().(CORSConfig)
	if !ok {
		return
	}

	if !cors.AllowAll && len(cors.AllowedOrigins) == 0 {
		sl.ReportError(cors.AllowedOrigins, "allowed_origins", "AllowedOrigins", "origins", "")
	}
}
