package postgres

import "go.uber.org/fx"

// Module provides the PostgreSQL-backed repositories.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewAccountRepository,
		NewCredentialRepository,
		NewHealthChecker,
	),
)
