// Package config loads process configuration from environment variables into
// typed structs and caches the result per struct type.
//
// It combines github.com/joho/godotenv for optional .env files with
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type Config struct {
//	    DateSeparator string `env:"UTILKIT_DATE_SEPARATOR" envDefault:"-"`
//	    Timezone      string `env:"UTILKIT_TIMEZONE" envDefault:"Local"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The first Load call reads ./.env when present; LoadEnv reads explicit files
// instead. Variables already set in the process environment always win over
// file values. Each struct type is parsed once; later Load calls copy the
// cached value. ForceReloadConfig and ResetCache bypass or clear the cache,
// which is mostly useful in tests.
//
// # Errors
//
//   - ErrParsingConfig: env.Parse failed (for example a required variable is missing).
//   - ErrNilPointer: Load was given a nil pointer.
//   - ErrConfigNotLoaded: a previous parse of the same type failed and the cache is empty.
//   - ErrLoadingEnvFile: one of the files passed to LoadEnv could not be read.
package config
