package config

import (
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github/chapool/go-transfer/internal/util"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnableSecureMiddleware         bool
	EnableBodyLimitMiddleware      bool
	BodyLimit                      string
}

type ManagementServer struct {
	Secret           string `json:"-"` // sensitive
	ReadinessTimeout time.Duration
	LivenessTimeout  time.Duration
}

// LoggerServer configures logging. Request and response bodies are never
// logged since they carry seed phrases.
type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestHeader   bool
	LogRequestQuery    bool
	LogCaller          bool
	PrettyPrintConsole bool
}

type MetricsServer struct {
	Enabled        bool
	GatherSQLStats bool
}

type Server struct {
	Database   Database
	Echo       EchoServer
	Management ManagementServer
	Logger     LoggerServer
	Metrics    MetricsServer
	Wallet     Wallet
	Network    Network
}

const (
	defaultChainID        = 56 // BNB Smart Chain mainnet
	defaultGasLimit       = 21000
	defaultNetworkTimeout = 10 * time.Second
)

// 0.005 ether
var defaultTransferValue = big.NewInt(5_000_000_000_000_000)

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. secrets to external APIs) and applying them modifies the process
	// global "os.Env" state (it should be applied via t.Setenv instead).
	if !util.RunningInTest() {
		DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env.local"), os.Setenv)
	}

	return Server{
		Database: Database{
			Host:     util.GetEnv("PGHOST", "postgres"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Database: util.GetEnv("PGDATABASE", "development"),
			Username: util.GetEnv("PGUSER", "dbuser"),
			Password: util.GetEnv("PGPASSWORD", ""),
			AdditionalParams: map[string]string{
				"sslmode": util.GetEnvEnum("PGSSLMODE", "disable", []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}),
			},
			MaxOpenConns:    util.GetEnvAsInt("DB_MAX_OPEN_CONNS", runtime.NumCPU()*2),
			MaxIdleConns:    util.GetEnvAsInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: time.Second * time.Duration(util.GetEnvAsInt("DB_CONN_MAX_LIFETIME_SEC", 60)),
		},
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			BaseURL:                        util.GetEnv("SERVER_ECHO_BASE_URL", "http://localhost:8080"),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
			EnableSecureMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_SECURE_MIDDLEWARE", true),
			EnableBodyLimitMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_BODY_LIMIT_MIDDLEWARE", true),
			BodyLimit:                      util.GetEnv("SERVER_ECHO_BODY_LIMIT", "64K"),
		},
		Management: ManagementServer{
			Secret:           util.GetMgmtSecret("SERVER_MANAGEMENT_SECRET"),
			ReadinessTimeout: time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_READINESS_TIMEOUT_SEC", 4)),
			LivenessTimeout:  time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_LIVENESS_TIMEOUT_SEC", 9)),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
			LogRequestQuery:    util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_QUERY", false),
			LogCaller:          util.GetEnvAsBool("SERVER_LOGGER_LOG_CALLER", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Metrics: MetricsServer{
			Enabled:        util.GetEnvAsBool("METRICS_ENABLED", true),
			GatherSQLStats: util.GetEnvAsBool("METRICS_GATHER_SQL_STATS", true),
		},
		Wallet: Wallet{
			CoinType:       util.GetEnvAsUint32("WALLET_COIN_TYPE", 60),
			Account:        util.GetEnvAsUint32("WALLET_ACCOUNT", 0),
			Change:         util.GetEnvAsUint32("WALLET_CHANGE", 0),
			AddressIndex:   util.GetEnvAsUint32("WALLET_ADDRESS_INDEX", 0),
			DerivationPath: util.GetEnv("WALLET_DERIVATION_PATH", ""),
			ChainID:        util.GetEnvAsInt64("WALLET_CHAIN_ID", defaultChainID),
			GasLimit:       util.GetEnvAsUint64("WALLET_GAS_LIMIT", defaultGasLimit),
			TransferValue:  util.GetEnvAsBigInt("WALLET_TRANSFER_VALUE_WEI", defaultTransferValue),
			Broadcast:      util.GetEnvAsBool("WALLET_BROADCAST", false),
			DynamicFee:     util.GetEnvAsBool("WALLET_DYNAMIC_FEE", false),
			NetworkTimeout: util.GetEnvAsDurationSec("WALLET_NETWORK_TIMEOUT_SEC", defaultNetworkTimeout),
		},
		Network: Network{
			RPCURLs:     util.GetEnvAsStringArrTrimmed("NETWORK_RPC_URLS", []string{"https://bsc-dataseed.binance.org/"}),
			DialTimeout: util.GetEnvAsDurationSec("NETWORK_DIAL_TIMEOUT_SEC", defaultNetworkTimeout),
		},
	}
}
