package config

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export
