package config

import (
	"flag"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/awakentax/crypto-tax-go/pkg/log"
)

const (
	defaultConfigPath = "./configs/config.yaml"

	defaultRestAddr    = ":3000"
	defaultLinkBaseURL = "http://localhost:8080"
	defaultLinkTimeout = 30 * time.Second
)

// LinkAPI points the demo at a link API; the api key is typed in by the user.
type LinkAPI struct {
	BaseURL string        `mapstructure:"baseUrl"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (l *LinkAPI) Validate() error {
	if l.BaseURL == "" {
		return errors.New("you must provide link api base url in a config")
	}

	u, err := url.Parse(l.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("link api base url %q is not an absolute url", l.BaseURL)
	}

	if l.Timeout < 0 {
		return errors.New("link api timeout cannot be negative")
	}

	return nil
}

type Config struct {
	RestAddr string     `mapstructure:"restAddr"`
	LinkAPI  LinkAPI    `mapstructure:"linkApi"`
	Logging  log.Config `mapstructure:"log"`
}

// Parse reads the file given by the -config flag.
func Parse() (*Config, error) {
	configPath := flag.String("config", defaultConfigPath, "configuration file path")
	flag.Parse()

	return Load(*configPath)
}

func Load(path string) (*Config, error) {
	v := viper.New()

	// set reasonable defaults
	v.SetDefault("restAddr", defaultRestAddr)
	v.SetDefault("linkApi.baseUrl", defaultLinkBaseURL)
	v.SetDefault("linkApi.timeout", defaultLinkTimeout)

	// read a config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed to read a file")
	}

	// unmarshal to a config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal a config")
	}

	// ensure the link api is reachable in principle
	if err := cfg.LinkAPI.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
