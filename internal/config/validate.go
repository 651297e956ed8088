package config

import "github.com/go-playground/validator/v10"

var v = validator.New()

// validateSettings returns the first validation error, or nil on success.
func validateSettings(s *Settings) error {
	return v.Struct(s)
}
