package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed value per config type, keyed by type name.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newCache() *cache {
	return &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

func (c *cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *cache) set(key string, v any) {
	c.mu.Lock()
	c.values[key] = v
	c.mu.Unlock()
}

func (c *cache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[key]
	if !ok {
		o = new(sync.Once)
		c.onces[key] = o
	}
	return o
}

func (c *cache) reset() {
	c.mu.Lock()
	c.values = make(map[string]any)
	c.onces = make(map[string]*sync.Once)
	c.mu.Unlock()
}

var (
	globalCache      = newCache()
	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v. Each config type is parsed at
// most once per process; later calls are served from the cache.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// a missing ./.env is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if cached, ok := globalCache.get(key); ok {
		*v = cached.(T)
		return nil
	}

	var parseErr error
	globalCache.once(key).Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}
		globalCache.set(key, parsed)
	})
	if parseErr != nil {
		return parseErr
	}

	cached, ok := globalCache.get(key)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v again, ignoring and then replacing the cached value.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.set(typeKey[T](), parsed)
	*v = parsed
	return nil
}

// ResetCache forgets every cached config.
func ResetCache() {
	globalCache.reset()
}

// LoadEnv reads the given .env files (./.env when none are given) into the
// process environment. Later files override earlier ones; variables set
// before the first file was read are never overridden.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	merged := make(map[string]string)
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		maps.Copy(merged, values)
	}

	for k, val := range merged {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
