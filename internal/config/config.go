package config

import (
	"flag"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App     `yaml:"app"`
		HTTP    `yaml:"http"`
		Log     `yaml:"logger"`
		PG      `yaml:"postgres"`
		Session `yaml:"session"`
	}

	App struct {
		Env           string `yaml:"env"            env-default:"local"  env:"APP_ENV"`
		Name          string `yaml:"name"           env-default:"alarmlog"`
		Version       string `yaml:"version"        env-default:"dev"    env:"APP_VERSION"`
		AdminName     string `yaml:"admin_name"     env-default:"admin"  env:"ADMIN_NAME"`
		AdminPassword string `yaml:"admin_password" env-default:"admin"  env:"ADMIN_PASSWORD"`
	}

	HTTP struct {
		IP              string        `yaml:"ip"               env-default:"0.0.0.0"`
		Port            string        `yaml:"port"             env-default:"8000"     env:"HTTP_PORT"`
		Timeout         time.Duration `yaml:"timeout"          env-default:"4s"`
		IdleTimout      time.Duration `yaml:"idle_timeout"     env-default:"60s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"3s"`
		StaticDir       string        `yaml:"static_dir"       env-default:"./static" env:"STATIC_DIR"`
		CORS            CORS          `yaml:"cors"`
	}

	CORS struct {
		AllowedMethods     []string `yaml:"allowed_methods"     env-default:"GET,POST,PUT,DELETE,OPTIONS"`
		AllowedOrigins     []string `yaml:"allowed_origins"     env-default:"http://localhost:5173,http://127.0.0.1:5173"`
		AllowCredentials   bool     `yaml:"allow_credentials"   env-default:"true"`
		AllowedHeaders     []string `yaml:"allowed_headers"     env-default:"*"`
		OptionsPassthrough bool     `yaml:"options_passthrough"`
		ExposedHeaders     []string `yaml:"exposed_headers"`
		Debug              bool     `yaml:"debug"`
	}

	Log struct {
		Level string `yaml:"log_level" env-default:"info" env:"LOG_LEVEL"`
	}

	PG struct {
		PoolMax int    `yaml:"pool_max" env-default:"2"`
		URL     string `yaml:"url"      env-required:"true" env:"PG_URL"`
	}

	Session struct {
		URL        string        `yaml:"url"         env-default:"memory://" env:"SESSION_URL"`
		CookieName string        `yaml:"cookie_name" env-default:"token"`
		TTL        time.Duration `yaml:"ttl"         env-default:"0s"        env:"SESSION_TTL"`
	}
)

const (
	EnvConfigPathName  = "CONFIG_PATH"
	FlagConfigPathName = "config"
)

var (
	configPath string
	instance   *Config
	once       sync.Once
)

// Load reads the yaml file at path and applies env overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfig returns app configs.
func GetConfig() *Config {
	once.Do(func() {
		flag.StringVar(
			&configPath,
			FlagConfigPathName,
			"",
			"this is app config file",
		)
		flag.Parse()

		log.Print("config init")

		if configPath == "" {
			configPath = os.Getenv(EnvConfigPathName)
		}

		if configPath == "" {
			configPath = "./configs/config.yml"
		}

		cfg, err := Load(configPath)
		if err != nil {
			helpText := "Alarm Log - sensor alarm event service"
			help, _ := cleanenv.GetDescription(&Config{}, &helpText)
			log.Print(help)
			log.Fatal(err)
		}
		instance = cfg
	})
	return instance
}
