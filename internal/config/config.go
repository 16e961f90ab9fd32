package config

import (
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the application configuration. Values come from the
// environment, with an optional .env file loaded first.
type Config struct {
	IsDebug bool `env:"DEBUG" env-default:"false"`
	Listen  struct {
		BindIP string `env:"BIND_IP" env-default:"0.0.0.0"`
		Port   string `env:"PORT" env-default:"8080"`
	}
	Mongo struct {
		URI      string `env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
		Database string `env:"MONGODB_DATABASE" env-default:"parking"`
	}
	Auth struct {
		JWTSecret string        `env:"JWT_SECRET" env-default:""`
		TokenTTL  time.Duration `env:"JWT_EXPIRY" env-default:"24h"`
	}
	MQTT struct {
		Broker   string `env:"MQTT_BROKER" env-default:""`
		ClientID string `env:"MQTT_CLIENT_ID" env-default:"parking-backend"`
	}
}

var instance *Config
var once sync.Once

// GetConfig reads the configuration once and caches it.
func GetConfig() (*Config, error) {
	var err error
	once.Do(func() {
		if loadErr := godotenv.Load(); loadErr != nil {
			log.Debug("No .env file found, using environment")
		}
		instance = &Config{}
		if err = cleanenv.ReadEnv(instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			log.Println(desc)
			instance = nil
		}
	})
	return instance, err
}
