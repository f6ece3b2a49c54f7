package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvAPIKey,
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaNotSet, ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatch, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingEnvVars, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvDBPassword) == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if v := os.Getenv(EnvShieldPriceRow); v != "" && v != fmt.Sprint(DefaultShieldPriceRow) {
		warnings = append(warnings, "SHIELD_PRICE_ROW overrides the default shield price row - verify against the price tables")
	}

	return warnings, nil
}
