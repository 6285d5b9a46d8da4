package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Mode       string        `mapstructure:"mode"`
	Port       int           `mapstructure:"port"`
	StaticPath string        `mapstructure:"static_path"`
	ReadLimit  int64         `mapstructure:"read_limit"`
	PingPeriod time.Duration `mapstructure:"ping_period"`
	Secret     string        `mapstructure:"secret"`

	// RoomCapacity bounds admission. MediaPeers is how many occupants
	// actually negotiate media; the two are deliberately independent.
	RoomCapacity int `mapstructure:"room_capacity"`
	MediaPeers   int `mapstructure:"media_peers"`

	PendingSignals int           `mapstructure:"pending_signals"`
	PendingTTL     time.Duration `mapstructure:"pending_ttl"`

	ICEURLs       []string `mapstructure:"ice_urls"`
	ICEUsername   string   `mapstructure:"ice_username"`
	ICECredential string   `mapstructure:"ice_credential"`

	AIEndpoint string        `mapstructure:"ai_endpoint"`
	AITimeout  time.Duration `mapstructure:"ai_timeout"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("static_path", "./web")
	v.SetDefault("read_limit", 32768)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("room_capacity", 4)
	v.SetDefault("media_peers", 2)
	v.SetDefault("pending_signals", 8)
	v.SetDefault("pending_ttl", "10s")
	v.SetDefault("ai_timeout", "15s")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("⚠️ Config file not found (%s), using defaults\n", fileName)
	} else {
		fmt.Printf("✅ Loaded config: %s\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	fmt.Printf("🧩 Mode: %s | Port: %d | Capacity: %d\n", cfg.Mode, cfg.Port, cfg.RoomCapacity)
	return &cfg, nil
}
