// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across the
// validator packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "signup-form"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
//	v := validator.New(data, validator.WithLogger(log))
//
// Components that accept a logger default to Discard, so nothing is written
// unless the application opts in.
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel and WithLevelName set the minimum level.
//   - WithOutput redirects output (stdout by default).
//   - WithAttr attaches static attributes to every record.
//   - WithDevelopment / WithProduction / WithEnvironment apply per-environment defaults.
//
// Attribute helpers (Field, Rule, Param, Error, Component) return empty
// attributes for empty input, so they can be passed unconditionally.
package logger
