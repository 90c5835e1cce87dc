package config

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common"
	inscriptionconfig "github.com/gaze-network/ckb-inscription/modules/inscription/config"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gaze-network/ckb-inscription/pkg/middleware/requestcontext"
	"github.com/gaze-network/ckb-inscription/pkg/middleware/requestlogger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit bool
	mu     sync.Mutex
	config = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkMainnet,
		HTTPServer: HTTPServerConfig{
			Port: 8080,
			Logger: requestlogger.Config{
				SkipPaths: []string{"/", "/metrics"},
			},
		},
		CKB: CKBConfig{
			Timeout: 30 * time.Second,
		},
		Aggregator: AggregatorConfig{
			Disabled: true,
		},
		Modules: Modules{
			Inscription: inscriptionconfig.Config{
				APIHandlers: []string{"http"},
			},
		},
		EnableModules: []string{"inscription"},
	}
)

type Config struct {
	EnableModules []string         `mapstructure:"enable_modules"`
	Logger        logger.Config    `mapstructure:"logger"`
	Network       common.Network   `mapstructure:"network"`
	HTTPServer    HTTPServerConfig `mapstructure:"http_server"`
	CKB           CKBConfig        `mapstructure:"ckb"`
	Aggregator    AggregatorConfig `mapstructure:"aggregator"`
	Modules       Modules          `mapstructure:"modules"`
}

type Modules struct {
	Inscription inscriptionconfig.Config `mapstructure:"inscription"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`
}

// CKBConfig is the connection to the CKB indexer serving live cells.
type CKBConfig struct {
	IndexerURL string        `mapstructure:"indexer_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Debug      bool          `mapstructure:"debug"` // log every RPC round trip
}

// AggregatorConfig is the CoTA aggregator used for JoyID subkey unlocks.
type AggregatorConfig struct {
	URL      string `mapstructure:"url"`
	Disabled bool   `mapstructure:"disabled"`
}

// Parse parses the configuration from environment variables and the given config file.
// An empty configFile falls back to ./config.yaml.
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slogx.String("package", "config"))

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default config value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}

// Load returns the parsed configuration, parsing the default sources on first use.
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if !isInit {
		return parse()
	}
	return *config
}

// BindPFlag binds a cobra flag to a configuration key, the flag wins when it is set.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slogx.String("package", "config"), slogx.Error(err))
	}
}
