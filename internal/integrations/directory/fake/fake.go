package fake

import (
	"context"
	"hash/fnv"

	"github.com/grupo-main/mainsite/internal/integrations/directory"
	"github.com/grupo-main/mainsite/internal/models"
	"github.com/grupo-main/mainsite/internal/stages"
)

// FakeClient is a deterministic in-memory directory for local development and
// tests: the status depends only on the tracking code, and a slice of codes
// resolves to not-found so both paths are reachable without credentials.
type FakeClient struct{}

func New() *FakeClient { return &FakeClient{} }

func (f *FakeClient) SearchByTrackingCode(ctx context.Context, trackingCode string) (*models.Shipment, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingCode))
	v := h.Sum32()

	if v%7 == 0 {
		return nil, directory.ErrNotFound
	}

	status := stages.StatusCollected
	switch v % 3 {
	case 1:
		status = stages.StatusInTransit
	case 2:
		status = stages.StatusConfirmed
	}

	guideType := models.GuideTypeEconomy
	if v%5 == 0 {
		guideType = models.GuideTypeExpress
	}

	return &models.Shipment{
		TrackingCode: trackingCode,
		Status:       status,
		GuideType:    guideType,
		Sender:       "Remitente de prueba",
		ReceivedBy:   "",
		OriginCity:   "Cuernavaca, Morelos",
		DestCity:     "Monterrey, Nuevo León",
		Content:      "Paquete de prueba",
		Date:         "15/01/2025",
		Carrier:      "MA-IN",
	}, nil
}
