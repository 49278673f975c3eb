package directory

import (
	"context"

	"github.com/pkg/errors"

	"github.com/grupo-main/mainsite/internal/models"
)

// ErrNotFound means the directory answered but no record matched the code.
// Transport failures and non-2xx answers are reported as ordinary errors.
var ErrNotFound = errors.New("shipment not found")

// Client looks up one shipment record in the external shipment directory by
// its exact tracking code.
type Client interface {
	SearchByTrackingCode(ctx context.Context, trackingCode string) (*models.Shipment, error)
}
