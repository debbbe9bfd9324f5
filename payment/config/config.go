package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/bookkeep/lending-service/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"PAYMENT_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"PAYMENT_HTTP_PORT" default:"8081"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE_TIMEOUT" default:"15s"`
}

type Config struct {
	Server    HTTPServer `yaml:"server"`
	MaxCharge float64    `yaml:"maxCharge" envconfig:"PAYMENT_MAX_CHARGE" default:"500"`
	Log       logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig() *Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
