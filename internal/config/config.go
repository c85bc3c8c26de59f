package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/valeriaulyamaeva/living-budget/models"
)

type Config struct {
	DatabaseURL  string        `mapstructure:"database_url"`
	HTTPAddr     string        `mapstructure:"http_addr"`
	GinMode      string        `mapstructure:"gin_mode"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTTTL       time.Duration `mapstructure:"jwt_ttl"`
	BcryptCost   int           `mapstructure:"bcrypt_cost"`
	Currency     string        `mapstructure:"currency"`
	Timezone     string        `mapstructure:"timezone"`
	RolloverCron string        `mapstructure:"rollover_cron"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
	Defaults     Defaults      `mapstructure:"default"`
}

// Defaults is the allocation plan used for owners who never saved one.
type Defaults struct {
	Salary    string `mapstructure:"salary"`
	PayDay    int    `mapstructure:"pay_day"`
	Rent      string `mapstructure:"rent"`
	Savings   string `mapstructure:"savings"`
	Risk      string `mapstructure:"risk"`
	FixedCost string `mapstructure:"fixed_cost"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database_url", "")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_ttl", "24h")
	v.SetDefault("bcrypt_cost", 10)
	v.SetDefault("currency", "TWD")
	v.SetDefault("timezone", "Asia/Taipei")
	v.SetDefault("rollover_cron", "0 9 1 * *")
	v.SetDefault("cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("default.salary", "32000")
	v.SetDefault("default.pay_day", 5)
	v.SetDefault("default.rent", "8500")
	v.SetDefault("default.savings", "6200")
	v.SetDefault("default.risk", "3200")
	v.SetDefault("default.fixed_cost", "3000")
}

// Load reads an optional .env file, then the environment. DEFAULT_PAY_DAY maps
// to default.pay_day, JWT_TTL to jwt_ttl and so on.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.DefaultSettings(); err != nil {
		return err
	}
	return nil
}

// Location is the zone months and pay days are resolved in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) DefaultSettings() (models.Settings, error) {
	var s models.Settings
	fields := []struct {
		key string
		raw string
		dst *decimal.Decimal
	}{
		{"DEFAULT_SALARY", c.Defaults.Salary, &s.TotalSalary},
		{"DEFAULT_RENT", c.Defaults.Rent, &s.Rent},
		{"DEFAULT_SAVINGS", c.Defaults.Savings, &s.SavingsTarget},
		{"DEFAULT_RISK", c.Defaults.Risk, &s.RiskTarget},
		{"DEFAULT_FIXED_COST", c.Defaults.FixedCost, &s.FixedCost},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return models.Settings{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = d
	}
	s.PayDay = c.Defaults.PayDay
	return s, nil
}
