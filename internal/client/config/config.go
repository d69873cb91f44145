package config

import "time"

// Config holds runtime settings for the chatfiles client.
//
// Fields:
//   - APIBaseURL: base URL of the backend API (upload registration, view/download URLs).
//   - DistributionBaseURL: base URL of the public distribution endpoint serving stored files.
//   - DownloadDir: directory downloaded files are saved into.
//   - LocalDBPath: path of the local sqlite database (upload history).
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	APIBaseURL          string
	DistributionBaseURL string
	DownloadDir         string
	LocalDBPath         string
	RequestTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DistributionBaseURL = "http://127.0.0.1:9000"
	c.DownloadDir = "downloads"
	c.LocalDBPath = "chatfiles.db"
	c.RequestTimeout = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
