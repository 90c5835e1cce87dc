package config

type Config struct {
	// APIHandlers are the transports the module serves on, only "http" is supported.
	APIHandlers []string `mapstructure:"api_handlers"`

	// FeeRate in shannons per KB for requests that don't set one. 0 uses the builder default.
	FeeRate uint64 `mapstructure:"fee_rate"`
}
