package keyframe

import (
	"runtime"
	"time"

	"honnef.co/go/animcurve"
)

const defaultCacheTTL = 5 * time.Minute

// Config configures a [Bank]. The zero value is usable; zero fields take
// their defaults.
type Config struct {
	// Depth is the flattening depth for tracks that don't set their own.
	// Zero means animcurve.DefaultDepth.
	Depth int `yaml:"depth,omitempty"`
	// Workers bounds the number of tracks evaluated at once by
	// [Bank.EvaluateAll]. Zero means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`
	// CacheTTL is how long evaluated polylines are remembered. Zero means
	// five minutes.
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"`
}

func (cfg Config) withDefaults() Config {
	if cfg.Depth <= 0 {
		cfg.Depth = animcurve.DefaultDepth
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return cfg
}
