package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Store struct {
		Driver string
		DSN    string
	}
	// Token authorizes POST /reading/add. When empty, every add request is
	// refused.
	Token     string
	SiteTitle string
	SiteURL   string
	MoreURL   string
}

// Load reads config from environment (READING_ prefix) and optional
// reading-log.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("READING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("reading-log")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("store.driver", "sqlite3")
	v.SetDefault("store.dsn", "reading-log.db")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Store.Driver = v.GetString("store.driver")
	cfg.Store.DSN = v.GetString("store.dsn")
	cfg.Token = v.GetString("token")
	cfg.SiteTitle = v.GetString("site.title")
	cfg.SiteURL = v.GetString("site.url")
	cfg.MoreURL = v.GetString("more.url")

	if cfg.Store.Driver == "" {
		return nil, fmt.Errorf("READING_STORE_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.Store.DSN == "" {
		return nil, fmt.Errorf("READING_STORE_DSN is required")
	}

	return cfg, nil
}
