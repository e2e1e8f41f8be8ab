package config

// Configfile represents the structure of the stashql.yaml configuration file.
type Configfile struct {
	Origin      string          `yaml:"origin"`
	Path        string          `yaml:"path"`
	Development *DevelopmentDTO `yaml:"development"`
	Transport   *TransportDTO   `yaml:"transport"`
	Log         *LogDTO         `yaml:"log"`
	Metrics     *MetricsDTO     `yaml:"metrics"`
}

// DevelopmentDTO represents the development server overrides.
type DevelopmentDTO struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
	HTTPS   bool `yaml:"https"`
}

// TransportDTO represents transport tuning. Durations use Go duration syntax.
type TransportDTO struct {
	RequestTimeout   string `yaml:"request_timeout"`
	HandshakeTimeout string `yaml:"handshake_timeout"`
	Reconnect        *bool  `yaml:"reconnect"`
	ReconnectDelay   string `yaml:"reconnect_delay"`
	MaxReconnects    int    `yaml:"max_reconnects"`
	PingInterval     string `yaml:"ping_interval"`
}

// LogDTO represents logging settings.
type LogDTO struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsDTO represents metrics settings.
type MetricsDTO struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}
