// Package logger builds log/slog loggers with functional options and keeps
// attribute names consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "payinput"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("edit rejected", logger.FieldID(id), logger.Length(9))
//
// Attribute helpers never carry field contents: postal codes and security
// codes are personal or PCI data, so only lengths and outcomes are logged.
//
// WithFormat panics on unknown formats so a bad configuration fails at
// startup. Discard returns a no-op logger for library defaults.
package logger
