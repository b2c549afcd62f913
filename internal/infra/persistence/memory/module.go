package memory

import "go.uber.org/fx"

// Module provides the in-process repositories. State is lost on restart.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewTransactionManager,
		NewAccountRepository,
		NewCredentialRepository,
		NewHealthChecker,
	),
)
