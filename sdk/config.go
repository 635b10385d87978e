package sdk

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the client configuration file, HCL with a server block and a
// bot block:
//
//	server {
//	  url             = "tcp://127.0.0.1:12052"
//	  connect_timeout = 10
//	}
//
//	bot {
//	  name     = "algorithm"
//	  strategy = "algorithm"
//	  seed     = 1
//	}
type Config struct {
	Server ServerConfig `hcl:"server,block"`
	Bot    BotConfig    `hcl:"bot,block"`
}

// ServerConfig contains connection settings.
type ServerConfig struct {
	URL            string `hcl:"url"`
	ConnectTimeout int    `hcl:"connect_timeout,optional"`
}

// BotConfig contains bot identity and strategy settings.
type BotConfig struct {
	Name     string `hcl:"name"`
	Strategy string `hcl:"strategy,optional"`
	Seed     int64  `hcl:"seed,optional"`
}

// DefaultConfig returns the configuration used when no file is given. The
// ENGARDE_SERVER environment variable overrides the default server URL.
func DefaultConfig() *Config {
	url := "tcp://127.0.0.1:12052"
	if env := os.Getenv("ENGARDE_SERVER"); env != "" {
		url = env
	}
	return &Config{
		Server: ServerConfig{
			URL:            url,
			ConnectTimeout: 10,
		},
		Bot: BotConfig{
			Name:     "engarde",
			Strategy: "algorithm",
		},
	}
}

// LoadConfig parses an HCL configuration file, filling unset optional
// fields from the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config %s: %s", path, diags.Error())
	}

	config := &Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, config); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config %s: %s", path, diags.Error())
	}

	defaults := DefaultConfig()
	if config.Server.ConnectTimeout == 0 {
		config.Server.ConnectTimeout = defaults.Server.ConnectTimeout
	}
	if config.Bot.Strategy == "" {
		config.Bot.Strategy = defaults.Bot.Strategy
	}
	return config, nil
}
