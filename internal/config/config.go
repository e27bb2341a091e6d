package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	ListenAddr  string        `yaml:"listen_addr" validate:"required"`
	Pg          Pg            `yaml:"pg"`
	Redis       Redis         `yaml:"redis"`
	JwtTTL      time.Duration `yaml:"jwt_ttl" validate:"required"`     // seconds
	SessionTTL  time.Duration `yaml:"session_ttl" validate:"required"` // seconds, also lifetime of view flags
	LogLevel    string        `yaml:"log_level"`
	LogJSON     bool          `yaml:"log_json"`
	CorsOrigins []string      `yaml:"cors_origins"`
	// SecureCookies sets the Secure flag on cookies and enables HSTS.
	SecureCookies bool `yaml:"secure_cookies"`
	// WritesPerMinute limits posts and topics per user and signups/logins per ip.
	WritesPerMinute int `yaml:"writes_per_minute" validate:"gte=0"`
}

type Pg struct {
	Host   string `yaml:"host" validate:"required"`
	Port   int    `yaml:"port" validate:"required"`
	Dbname string `yaml:"dbname" validate:"required"`
}

type Redis struct {
	Addr string `yaml:"addr" validate:"required"`
	DB   int    `yaml:"db"`
}

type Private struct {
	Pg            PgCredentials `yaml:"pg"`
	RedisPassword string        `yaml:"redis_password"`
	JwtKey        string        `yaml:"jwt_key" validate:"required"`
}

type PgCredentials struct {
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return c.Public.SessionTTL * time.Second
}

// PgConnString builds a lib/pq keyword/value connection string.
func (c *Config) PgConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Public.Pg.Host, c.Public.Pg.Port, c.Private.Pg.User, c.Private.Pg.Password, c.Public.Pg.Dbname)
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file " + configPath + ": " + err.Error())
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(output); err != nil {
		panic("invalid config file " + configPath + ": " + err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
