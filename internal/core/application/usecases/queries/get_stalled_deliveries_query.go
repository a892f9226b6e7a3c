package queries

import (
	"errors"
	"time"

	"freightflow/internal/pkg/guard"
)

var (
	ErrGetStalledDeliveriesQueryIsNotConstructed = errors.New(
		"GetStalledDeliveriesQuery must be created via NewGetStalledDeliveriesQuery constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// GetStalledDeliveriesQuery retrieves active deliveries whose last status
// change is older than a threshold. The monitoring job uses it to surface
// deliveries that stopped progressing; nothing is transitioned
// automatically.
type GetStalledDeliveriesQuery struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalledDeliveriesQuery creates a query for deliveries that have not
// progressed within the given threshold. Validates that the threshold is
// positive.
func NewGetStalledDeliveriesQuery(threshold time.Duration) (GetStalledDeliveriesQuery, error) {
	if threshold <= 0 {
		return GetStalledDeliveriesQuery{}, ErrThresholdIsInvalid
	}

	return GetStalledDeliveriesQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalledDeliveriesQueryIsNotConstructed if validation fails.
func (q GetStalledDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledDeliveriesQueryIsNotConstructed)
}

// Threshold returns the inactivity duration after which an active delivery
// is considered stalled.
func (q GetStalledDeliveriesQuery) Threshold() time.Duration {
	return q.threshold
}
