package usecase

import "context"

// HousekeepingUsecase removes credential records that can never be used again.
type HousekeepingUsecase interface {
	// Purge deletes expired or revoked credentials and returns how many were removed.
	Purge(ctx context.Context) (int64, error)
}
