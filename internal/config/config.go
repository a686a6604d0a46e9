package config

import (
	"github.com/blues/ets/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Team      TeamConfig      `mapstructure:"team"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// AuthConfig controls session issuance and the first-run lead account.
type AuthConfig struct {
	TokenTTLDays  int    `mapstructure:"token_ttl_days"` // session token lifetime
	BcryptCost    int    `mapstructure:"bcrypt_cost"`    // 0 means bcrypt default
	SeedUsername  string `mapstructure:"seed_username"`  // lead account created on first run
	SeedPassword  string `mapstructure:"seed_password"`
	SeedLeadName  string `mapstructure:"seed_lead_name"`
	SeedLeadLevel string `mapstructure:"seed_lead_level"`
}

type TeamConfig struct {
	DefaultName string `mapstructure:"default_name"` // members without a team are reassigned here at startup
}

type SchedulerConfig struct {
	PurgeInterval int `mapstructure:"purge_interval"` // seconds between expired-session sweeps
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // stdout, stderr, file
	File   string `mapstructure:"file"`   // log file path when output is file
}

// GetLevel implements the logger.LogConfig interface.
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput implements the logger.LogConfig interface.
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile implements the logger.LogConfig interface.
func (l LogConfig) GetFile() string {
	return l.File
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/ets")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "effort_tracker")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("auth.token_ttl_days", 7)
	viper.SetDefault("auth.bcrypt_cost", 0)
	viper.SetDefault("auth.seed_username", "alex.lead")
	viper.SetDefault("auth.seed_password", "change-me")
	viper.SetDefault("auth.seed_lead_name", "Alex Lead")
	viper.SetDefault("auth.seed_lead_level", "Lead")
	viper.SetDefault("team.default_name", "Orange Tigers")
	viper.SetDefault("scheduler.purge_interval", 3600)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
