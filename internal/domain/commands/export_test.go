package commands

// WarnOnMisalignment exports warnOnMisalignment for testing.
var WarnOnMisalignment = warnOnMisalignment //nolint:gochecknoglobals // test export
