package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/kcls/circulation/pkg/kafka"
	"github.com/kcls/circulation/pkg/logger"
	"github.com/kcls/circulation/pkg/server"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"GATEWAY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"GATEWAY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// Backend is the KCLS REST API the gateway fronts.
type Backend struct {
	APIBase     string        `envconfig:"KCLS_API_BASE" default:"http://localhost:5000/api"`
	Timeout     time.Duration `envconfig:"KCLS_API_TIMEOUT" default:"30s"`
	RPS         float64       `envconfig:"KCLS_API_RPS" default:"50"`
	Burst       int           `envconfig:"KCLS_API_BURST" default:"20"`
	Concurrency int           `envconfig:"KCLS_API_CONCURRENCY" default:"8"`
}

type Circulation struct {
	FinePerDay float64 `envconfig:"FINE_PER_DAY" default:"0"`
	TimeZone   string  `envconfig:"KCLS_TIMEZONE" default:"Asia/Manila"`
	// UseBackendSettings prefers the fine configured in /system/settings.
	UseBackendSettings bool `envconfig:"KCLS_BACKEND_SETTINGS" default:"true"`
}

func (c Circulation) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

type Config struct {
	Server      HTTPServer `yaml:"server"`
	Backend     Backend
	Circulation Circulation
	Kafka       kafka.Config
	Log         logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

func (s HTTPServer) ServerConfig() server.Config {
	return server.Config{
		Host:         s.Host,
		Port:         s.Port,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
	}
}
