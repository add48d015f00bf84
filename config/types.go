package config

import "time"

// Config is the whole service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Route   RouteConfig   `yaml:"route"`
	Log     LogConfig     `yaml:"log"`
	Network NetworkConfig `yaml:"network"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr         string        `yaml:"addr" validate:"omitempty,hostname_port"`
	ReadTimeout  time.Duration `yaml:"readTimeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"writeTimeout" validate:"gte=0"`
}

// RouteConfig configures the route facade.
type RouteConfig struct {
	// GraphCacheTTL is how long a built network graph is reused; 0 uses the
	// default, a negative value disables caching.
	GraphCacheTTL time.Duration `yaml:"graphCacheTTL"`

	// MaxSearchVisits caps settled stations per search; 0 means no cap.
	MaxSearchVisits int `yaml:"maxSearchVisits" validate:"gte=0"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// NetworkConfig points at the network seed.
type NetworkConfig struct {
	SeedFile string `yaml:"seedFile"`
}
