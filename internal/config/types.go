package config

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// Config is the parsed .quizplay/config.yml document.
type Config struct {
	Version int    `yaml:"version"`
	Bank    string `yaml:"bank"`
	Theme   string `yaml:"theme"`
	UI      string `yaml:"ui"`
	NoColor bool   `yaml:"no_color"`
	Seed    int64  `yaml:"seed"`
	Log     string `yaml:"log"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{Version: 1, UI: UIAuto}
}
