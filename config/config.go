package config

import (
	// Local Packages
	errors "tx-codec/errors"
)

var DefaultConfig = []byte(`
application: "tx-codec"

logger:
  level: "info"

is_prod_mode: false

convert:
  on_record_error: "continue"
`)

type Config struct {
	Application string  `koanf:"application"`
	Logger      Logger  `koanf:"logger"`
	IsProdMode  bool    `koanf:"is_prod_mode"`
	Convert     Convert `koanf:"convert"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Convert struct {
	OnRecordError string `koanf:"on_record_error"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.Convert.OnRecordError != "continue" && c.Convert.OnRecordError != "abort" {
		ve.Add("convert.on_record_error", "must be continue or abort")
	}

	return ve.Err()
}
