package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookbuddy-service/pkg/kafka"
	"github.com/Astemirdum/bookbuddy-service/pkg/kv"
	"github.com/Astemirdum/bookbuddy-service/pkg/logger"
	"github.com/Astemirdum/bookbuddy-service/pkg/server"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `envconfig:"SHELF_HTTP_HOST"`
	Port         string        `envconfig:"SHELF_HTTP_PORT"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE"`
}

func (s HTTPServer) ServerConfig() server.Config {
	return server.Config{Host: s.Host, Port: s.Port, ReadTimeout: s.ReadTimeout, WriteTimeout: s.WriteTimeout}
}

type CatalogHTTPServer struct {
	Host    string        `envconfig:"CATALOG_HTTP_HOST"`
	Port    string        `envconfig:"CATALOG_HTTP_PORT"`
	Timeout time.Duration `envconfig:"CATALOG_HTTP_TIMEOUT"`
}

type Shelf struct {
	TrashTTL          time.Duration `envconfig:"SHELF_TRASH_TTL"`
	SeedDefaultLists  bool          `envconfig:"SHELF_SEED_DEFAULT_LISTS"`
	EventBuffer       int           `envconfig:"SHELF_EVENT_BUFFER"`
	HeartbeatInterval time.Duration `envconfig:"SHELF_SSE_HEARTBEAT"`
}

type Config struct {
	Server            HTTPServer
	CatalogHTTPServer CatalogHTTPServer
	Shelf             Shelf
	KV                kv.Config
	Kafka             kafka.Config
	Log               logger.Log
}

var (
	once sync.Once
	cfg  Config
)

func defaultConfig() Config {
	return Config{
		Server: HTTPServer{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0,
		},
		CatalogHTTPServer: CatalogHTTPServer{
			Host:    "localhost",
			Port:    "8060",
			Timeout: 5 * time.Second,
		},
		Shelf: Shelf{
			TrashTTL:          30 * time.Second,
			EventBuffer:       64,
			HeartbeatInterval: 30 * time.Second,
		},
		Log: logger.Log{LogLevel: zapcore.InfoLevel},
	}
}

// NewConfig reads config from environment. Options override the defaults and
// are overridden by the environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		config := defaultConfig()
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
