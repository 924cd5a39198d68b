package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress      = ":8080"
	DefaultProviderAddress = "https://api.mercadopago.com"
	DefaultAccessToken     = ""
	DefaultTerminalID      = ""
	DefaultPendingTTL      = 5 * time.Minute
	DefaultPollInterval    = 5 * time.Second
	DefaultRequestTimeout  = 10 * time.Second
	DefaultAddressMapFile  = ""
	DefaultActuatorAddress = 15
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ProviderAddress string        `env:"PROVIDER_ADDRESS"`
	AccessToken     string        `env:"PROVIDER_ACCESS_TOKEN"`
	TerminalID      string        `env:"TERMINAL_ID"`
	PendingTTL      time.Duration `env:"PENDING_TTL"`
	PollInterval    time.Duration `env:"POLL_INTERVAL"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	AddressMapFile  string        `env:"ADDRESS_MAP_FILE"`
	DefaultActuator int           `env:"DEFAULT_ACTUATOR_ADDRESS"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.ProviderAddress, "r", DefaultProviderAddress, "Payment provider address protocol://hostname:port")
	flag.StringVar(&config.AccessToken, "s", DefaultAccessToken, "Payment provider access token")
	flag.StringVar(&config.TerminalID, "t", DefaultTerminalID, "Payment terminal (POS) external id")
	flag.DurationVar(&config.PendingTTL, "l", DefaultPendingTTL, "Pending order lifetime before eviction (e.g. 5m)")
	flag.DurationVar(&config.PollInterval, "i", DefaultPollInterval, "Charge status poll interval")
	flag.DurationVar(&config.RequestTimeout, "o", DefaultRequestTimeout, "Outbound provider request timeout")
	flag.StringVar(&config.AddressMapFile, "m", DefaultAddressMapFile, "Path to JSON product address map (optional)")
	flag.IntVar(&config.DefaultActuator, "d", DefaultActuatorAddress, "Actuator address for unmapped products")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
