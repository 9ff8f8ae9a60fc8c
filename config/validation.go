package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the configuration is complete enough for
// the current environment. Development and test tolerate a missing
// JWT secret by substituting a fixed insecure one; production and CI
// do not.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var errors []string

	if cfg.JWTSecret == "" {
		if env == Production || env == CI {
			errors = append(errors, "jwt secret is required (JWT_SECRET or jwt_secret secret)")
		} else {
			cfg.JWTSecret = "insecure-development-secret"
		}
	}

	if env == Production {
		if cfg.DBPassword == "" {
			errors = append(errors, "database password is required (DB_PASSWORD or db_password secret)")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "DB_SSL_MODE must not be 'disable' in production")
		}
	}

	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port and name are required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return nil
}
