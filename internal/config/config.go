package config

import (
	"fmt"
	"time"

	"github.com/0niran/rhb-send-backend/pkg/mq"
	"github.com/0niran/rhb-send-backend/pkg/mysql"
	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
	"github.com/spf13/viper"
)

type Config struct {
	API       API                `mapstructure:"api"`
	Database  mysql.Config       `mapstructure:"database"`
	RabbitMQ  mq.Config          `mapstructure:"rabbitmq"`
	Provider  smsprovider.Config `mapstructure:"provider"`
	Dispatch  Dispatch           `mapstructure:"dispatch"`
	Scheduler Scheduler          `mapstructure:"scheduler"`
}

type API struct {
	Port string `mapstructure:"port"`
}

// Dispatch controls outbound batching: BatchSize recipients are sent
// concurrently, then the dispatcher pauses BatchDelay before the next batch.
type Dispatch struct {
	BatchSize  int           `mapstructure:"batch_size"`
	BatchDelay time.Duration `mapstructure:"batch_delay"`
}

type Scheduler struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchLimit   int           `mapstructure:"batch_limit"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("dispatch.batch_size", 10)
	viper.SetDefault("dispatch.batch_delay", time.Second)
	viper.SetDefault("scheduler.poll_interval", 30*time.Second)
	viper.SetDefault("scheduler.batch_limit", 50)

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
