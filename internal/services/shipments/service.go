package shipments

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/grupo-main/mainsite/internal/integrations/directory"
	"github.com/grupo-main/mainsite/internal/models"
)

// Lookup error taxonomy. Validation errors never reach the directory.
var (
	ErrMissingCode  = errors.New("tracking code is required")
	ErrCodeTooShort = errors.New("tracking code is too short")
	ErrCodeInvalid  = errors.New("tracking code has invalid characters")
	ErrNotFound     = errors.New("shipment not found")
	ErrUpstream     = errors.New("directory lookup failed")
)

const DefaultMinCodeLength = 3

type Service struct {
	dir    directory.Client
	minLen int
}

func New(dir directory.Client, minCodeLength int) *Service {
	if minCodeLength <= 0 {
		minCodeLength = DefaultMinCodeLength
	}
	return &Service{dir: dir, minLen: minCodeLength}
}

// Lookup resolves a user-supplied tracking code to a shipment record. The
// record is fetched fresh on every call and never stored.
func (s *Service) Lookup(ctx context.Context, trackingCode string) (*models.Shipment, error) {
	code := strings.TrimSpace(trackingCode)
	if code == "" {
		return nil, ErrMissingCode
	}
	if len(code) < s.minLen {
		return nil, ErrCodeTooShort
	}
	if !isAlphanumeric(code) {
		return nil, ErrCodeInvalid
	}

	sh, err := s.dir.SearchByTrackingCode(ctx, code)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrNotFound
		}
		// Keep the upstream detail for logging; callers surface ErrUpstream
		// with a generic message.
		return nil, errors.WithMessage(ErrUpstream, err.Error())
	}
	return sh, nil
}

// MinCodeLength is exposed so the page rendering the form shares one policy
// with the server instead of hardcoding its own.
func (s *Service) MinCodeLength() int { return s.minLen }

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
