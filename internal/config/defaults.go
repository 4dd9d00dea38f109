package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.History.DatabasePath == "" {
		cfg.History.DatabasePath = "/usr/local/var/festmap/data/history.db"
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Places.UserAgent == "" {
		cfg.Places.UserAgent = "festmap-suggest/1.0"
	}
	if cfg.Places.Limit == 0 {
		cfg.Places.Limit = 5
	}
	if cfg.Places.TimeoutMS == 0 {
		cfg.Places.TimeoutMS = 2000
	}
	if cfg.Places.MinRequestIntervalMS == 0 {
		cfg.Places.MinRequestIntervalMS = 1000
	}
	if cfg.Suggest.SettleDelayMS == 0 {
		cfg.Suggest.SettleDelayMS = 300
	}
	cfg.Ranking.ApplyDefaults()
}
