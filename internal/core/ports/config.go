package ports

import "go.trai.ch/weft/internal/core/domain"

// ConfigResolver turns command line arguments into a parsed configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigResolver interface {
	// ResolveFromArgs finds and parses the configuration selected by args.
	ResolveFromArgs(args domain.ConfigArgs) (*domain.ResolvedConfig, error)
}

// GlobalConfigResolver computes the global configuration from the properties no plugin claimed.
type GlobalConfigResolver interface {
	// Resolve consumes configMap and reports diagnostics through an error.
	Resolve(configMap domain.ConfigMap, opts domain.GlobalConfigOptions) (domain.GlobalConfiguration, error)
}
