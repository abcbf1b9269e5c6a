package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NSQ         NSQConfig
	Facilitator FacilitatorConfig
	Fee         FeeConfig
	Wallet      WalletConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	// APIKey gates operator endpoints (service catalog mutations).
	APIKey string
	// BaseURL is used to build the resource URL embedded in 402 quotes.
	BaseURL string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the fee transfer queue configuration
type NSQConfig struct {
	Address     string
	FeeTopic    string
	FeeChannel  string
	MaxInFlight int
}

// FacilitatorConfig points at the delegated verification services, one base
// URL per chain family. The wire format is the x402 /verify, /settle,
// /supported convention.
type FacilitatorConfig struct {
	EVMBaseURL     string
	SolanaBaseURL  string
	TimeoutSeconds int
	APIKey         string
}

// FeeConfig drives platform fee computation. Amounts are decimal strings in
// display units; they are converted to minor units at startup.
type FeeConfig struct {
	Percent          string
	Cap              string
	FixedMinimum     string
	RecipientAddress string
	QuoteTTLMinutes  int
}

// WalletConfig is the operator hot wallet used for on-chain fee forwarding.
// An empty PrivateKey disables transfers without failing the payment flow.
type WalletConfig struct {
	PrivateKey string
	RPCURL     string
	GasLimit   uint64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
