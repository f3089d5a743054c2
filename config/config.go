package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	Exchange struct {
		FeedURL      string        `mapstructure:"feed_url"`
		BaseCurrency string        `mapstructure:"base_currency"`
		Timeout      time.Duration `mapstructure:"timeout"`
		CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"exchange"`
	Mail struct {
		Host string `mapstructure:"host"`
		Port string `mapstructure:"port"`
		From string `mapstructure:"from"`
	} `mapstructure:"mail"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	viper.SetDefault("exchange.base_currency", "HUF")
	viper.SetDefault("exchange.timeout", "5s")
	viper.SetDefault("exchange.cache_ttl", "10m")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
