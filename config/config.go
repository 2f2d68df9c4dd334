package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	DB     DBConfig
	Redis  RedisConfig
	Search SearchConfig
}

type DBConfig struct {
	User     string
	Password string
	DBName   string
	SSLMode  string
	Host     string
	Port     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SearchConfig struct {
	DesiredCount     int `mapstructure:"desired_count"`
	MinPrecision     int `mapstructure:"min_precision"`
	MaxPrecision     int `mapstructure:"max_precision"`
	RowLimitPerQuery int `mapstructure:"row_limit_per_query"`
	CacheTTLSeconds  int `mapstructure:"cache_ttl_seconds"`
}

var Cfg *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("search.desired_count", 10)
	viper.SetDefault("search.min_precision", 2)
	viper.SetDefault("search.max_precision", 9)
	viper.SetDefault("search.row_limit_per_query", 500)
	viper.SetDefault("search.cache_ttl_seconds", 60)

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	err = viper.Unmarshal(&Cfg)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
