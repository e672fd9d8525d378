package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/SaurabhMV/price-tracking/internal/calculator"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		Symbol   string `yaml:"symbol"`
		Interval string `yaml:"interval"`
		Period   string `yaml:"period"`
	} `yaml:"data_source"`
	Engine struct {
		ShortWindow    int    `yaml:"short_window"`
		LongWindow     int    `yaml:"long_window"`
		MomentumWindow int    `yaml:"momentum_window"`
		ExtremaWindow  int    `yaml:"extrema_window"`
		VolumeWindow   int    `yaml:"volume_window"`
		RSIPolicy      string `yaml:"rsi_policy"`
	} `yaml:"engine"`
	Schedule struct {
		ScanCron   string `yaml:"scan_cron"`
		DigestCron string `yaml:"digest_cron"`
	} `yaml:"schedule"`
	Watch struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"watch"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("BARSERVER_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARSERVER_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TICKER"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SHORT_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.ShortWindow = n
		}
	}
	if v := os.Getenv("LONG_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.LongWindow = n
		}
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "AAPL"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "1d"
	}
	if cfg.DataSource.Period == "" {
		cfg.DataSource.Period = "6mo"
	}
	defaults := calculator.DefaultParams()
	if cfg.Engine.ShortWindow == 0 {
		cfg.Engine.ShortWindow = defaults.WShort
	}
	if cfg.Engine.LongWindow == 0 {
		cfg.Engine.LongWindow = defaults.WLong
	}
	if cfg.Engine.MomentumWindow == 0 {
		cfg.Engine.MomentumWindow = defaults.WMomentum
	}
	if cfg.Engine.ExtremaWindow == 0 {
		cfg.Engine.ExtremaWindow = defaults.WExtrema
	}
	if cfg.Engine.VolumeWindow == 0 {
		cfg.Engine.VolumeWindow = defaults.WVolume
	}
	if cfg.Engine.RSIPolicy == "" {
		cfg.Engine.RSIPolicy = string(defaults.RSIPolicy)
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 */30 9-16 * * 1-5"
	}
	if cfg.Schedule.DigestCron == "" {
		cfg.Schedule.DigestCron = "0 30 17 * * 1-5"
	}
	if cfg.Watch.StateFile == "" {
		cfg.Watch.StateFile = "data/alert_state.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/price_tracking.db"
	}

	return cfg, nil
}

// EngineParams maps the engine section to pipeline params. Window validation
// itself lives on calculator.Params.
func (c *Config) EngineParams() calculator.Params {
	return calculator.Params{
		WShort:    c.Engine.ShortWindow,
		WLong:     c.Engine.LongWindow,
		WMomentum: c.Engine.MomentumWindow,
		WExtrema:  c.Engine.ExtremaWindow,
		WVolume:   c.Engine.VolumeWindow,
		RSIPolicy: calculator.RSIPolicy(c.Engine.RSIPolicy),
	}
}

// Validate checks that all required fields are set and the engine params are
// consistent.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if err := c.EngineParams().Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}
