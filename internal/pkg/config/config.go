package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

// InitConfig loads configuration from environment variables, optionally
// layered over a config file when one is present at configPath. Environment
// always wins so deployments can override file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config file not loaded (%v), using environment only", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "payd")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "")
	v.SetDefault("APP_BASE_URL", "http://localhost:9990")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_FEE_TOPIC", "fee.transfer")
	v.SetDefault("NSQ_FEE_CHANNEL", "payd")
	v.SetDefault("NSQ_MAX_IN_FLIGHT", 1)

	v.SetDefault("FACILITATOR_TIMEOUT_SECONDS", 30)

	v.SetDefault("FEE_PERCENT", "5")
	v.SetDefault("FEE_CAP", "1.00")
	v.SetDefault("FEE_FIXED_MINIMUM", "0.05")
	v.SetDefault("FEE_QUOTE_TTL_MINUTES", 60)

	v.SetDefault("WALLET_GAS_LIMIT", 120000)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.APIKey = v.GetString("APP_API_KEY")
	configs.App.BaseURL = v.GetString("APP_BASE_URL")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.FeeTopic = v.GetString("NSQ_FEE_TOPIC")
	configs.NSQ.FeeChannel = v.GetString("NSQ_FEE_CHANNEL")
	configs.NSQ.MaxInFlight = v.GetInt("NSQ_MAX_IN_FLIGHT")

	configs.Facilitator.EVMBaseURL = v.GetString("FACILITATOR_EVM_URL")
	configs.Facilitator.SolanaBaseURL = v.GetString("FACILITATOR_SOLANA_URL")
	configs.Facilitator.TimeoutSeconds = v.GetInt("FACILITATOR_TIMEOUT_SECONDS")
	configs.Facilitator.APIKey = v.GetString("FACILITATOR_API_KEY")

	configs.Fee.Percent = v.GetString("FEE_PERCENT")
	configs.Fee.Cap = v.GetString("FEE_CAP")
	configs.Fee.FixedMinimum = v.GetString("FEE_FIXED_MINIMUM")
	configs.Fee.RecipientAddress = v.GetString("FEE_RECIPIENT_ADDRESS")
	configs.Fee.QuoteTTLMinutes = v.GetInt("FEE_QUOTE_TTL_MINUTES")

	configs.Wallet.PrivateKey = v.GetString("WALLET_PRIVATE_KEY")
	configs.Wallet.RPCURL = v.GetString("WALLET_RPC_URL")
	configs.Wallet.GasLimit = v.GetUint64("WALLET_GAS_LIMIT")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
