// config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Postgres      PostgresConfiguration
	Redis         RedisConfiguration
	JWT           JWTConfiguration
	Auth          AuthConfiguration
	Elasticsearch ElasticsearchConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// PostgresConfiguration stores data for the system-of-record connection
type PostgresConfiguration struct {
	DSN string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfiguration stores signing settings for admin bearer tokens
type JWTConfiguration struct {
	Secret    string
	Issuer    string
	AccessTTL string
}

// AuthConfiguration stores session-cache and enforcement settings
type AuthConfiguration struct {
	SessionTTL         string
	EnforcePermissions bool
	EnforceIPBinding   bool
	RequiredUserType   string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("postgres.dsn", "host=localhost user=swarna password=swarna dbname=swarna port=5432 sslmode=disable")
	viper.SetDefault("postgres.maxOpenConns", 25)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("jwt.issuer", "swarnapay")
	viper.SetDefault("jwt.accessTTL", "24h")
	// Short on purpose: the session cache bounds how long a revoked role can
	// keep serving requests.
	viper.SetDefault("auth.sessionTTL", "15s")
	viper.SetDefault("auth.enforcePermissions", true)
	viper.SetDefault("auth.enforceIPBinding", false)
	viper.SetDefault("auth.requiredUserType", "admin")
	viper.SetDefault("ledger.enabled", false)
	viper.SetDefault("referral.maxAttempts", 5)
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
