package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookbuddy-service/pkg/kafka"
	"github.com/Astemirdum/bookbuddy-service/pkg/logger"
	"github.com/Astemirdum/bookbuddy-service/pkg/postgres"
	"github.com/Astemirdum/bookbuddy-service/pkg/server"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type HTTPServer struct {
	Host         string        `envconfig:"CATALOG_HTTP_HOST"`
	Port         string        `envconfig:"CATALOG_HTTP_PORT"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE"`
}

func (s HTTPServer) ServerConfig() server.Config {
	return server.Config{Host: s.Host, Port: s.Port, ReadTimeout: s.ReadTimeout, WriteTimeout: s.WriteTimeout}
}

type Config struct {
	Server   HTTPServer
	Storage  string `envconfig:"CATALOG_STORAGE"`
	Database postgres.DB
	Kafka    kafka.Config
	Log      logger.Log
}

var (
	once sync.Once
	cfg  *Config
)

func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config = Config{
			Server: HTTPServer{
				Host:         "0.0.0.0",
				Port:         "8060",
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			},
			Storage: StorageMemory,
			Log:     logger.Log{LogLevel: zapcore.InfoLevel},
		}
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		if config.Storage != StorageMemory && config.Storage != StoragePostgres {
			log.Fatalf("NewConfig: unknown CATALOG_STORAGE %q", config.Storage)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	safe := *cfg
	safe.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(safe, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
