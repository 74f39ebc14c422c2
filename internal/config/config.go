package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress  = ":8080"
	DefaultDatabaseURI = ""
	DefaultAppURL      = "http://localhost:8080"

	DefaultSbisAuthURL     = "https://online.sbis.ru/oauth/service/"
	DefaultSbisAPIURL      = "https://api.sbis.ru"
	DefaultSbisPriceListID = 8
	DefaultSbisCity        = "Санкт-Петербург"

	DefaultSberAPIURL = "https://3dsec.sberbank.ru"

	DefaultMailPort = 587

	DefaultPassCost      = 3
	DefaultSecretKey     = "secret"
	DefaultTokenLifetime = 3 * time.Hour
)

type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseURI string `env:"DATABASE_URI"`
	AppURL      string `env:"APP_URL"`
	AppDebug    bool   `env:"APP_DEBUG"`

	MailHost      string `env:"MAIL_HOST"`
	MailPort      int    `env:"MAIL_PORT"`
	MailUsername  string `env:"MAIL_USERNAME"`
	MailPassword  string `env:"MAIL_PASSWORD"`
	MailFrom      string `env:"MAIL_FROM_ADDRESS"`
	OperatorEmail string `env:"OPERATOR_EMAIL"`

	SbisAuthURL      string `env:"SBIS_AUTH_URL"`
	SbisAPIURL       string `env:"SBIS_API_URL"`
	SbisAppID        string `env:"SBIS_APP_ID"`
	SbisProtectedKey string `env:"SBIS_PROTECTED_KEY"`
	SbisServiceKey   string `env:"SBIS_SERVICE_KEY"`
	SbisPriceListID  int    `env:"SBIS_PRICE_LIST_ID"`
	SbisCity         string `env:"SBIS_CITY"`

	SberAPIURL      string `env:"SBER_API_URL"`
	SberAPIName     string `env:"SBER_API_NAME"`
	SberAPIPassword string `env:"SBER_API_PASSWORD"`

	PassCost      int           `env:"PASS_COST"`
	SecretKey     string        `env:"SECRET_KEY"`
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME"`
}

func Read() (Config, error) {
	config := Config{
		MailPort:        DefaultMailPort,
		SbisAuthURL:     DefaultSbisAuthURL,
		SbisAPIURL:      DefaultSbisAPIURL,
		SbisPriceListID: DefaultSbisPriceListID,
		SbisCity:        DefaultSbisCity,
		SberAPIURL:      DefaultSberAPIURL,
	}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.AppURL, "u", DefaultAppURL, "Public application URL protocol://hostname:port")
	flag.BoolVar(&config.AppDebug, "debug", false, "Debug mode, suppresses outbound mail")

	flag.IntVar(&config.PassCost, "p", DefaultPassCost, "Pass cost for admin password hash")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for admin token")
	flag.DurationVar(&config.TokenLifetime, "h", DefaultTokenLifetime, "Admin token lifetime (e.g. 1h, 30m, 2h30m)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
