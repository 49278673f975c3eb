package forms

import (
	"context"
	"log/slog"
)

// Submission is a validated form ready to be delivered somewhere: a CRM, a
// mailbox, a queue. Kind is "contact" or "quote".
type Submission struct {
	Kind   string
	Fields map[string]string
}

// Submitter is the delivery port. The HTTP layer only talks to this interface,
// so swapping a real backend for a test double changes nothing above it.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// LogSubmitter records submissions in the server log. It stands in until a
// real delivery backend is wired.
type LogSubmitter struct{}

func (LogSubmitter) Submit(ctx context.Context, s Submission) error {
	slog.Info("form submitted", "kind", s.Kind, "fields", len(s.Fields))
	return nil
}

func (f ContactForm) Submission() Submission {
	return Submission{
		Kind: "contact",
		Fields: map[string]string{
			"name":    f.Name,
			"email":   f.Email,
			"phone":   f.Phone,
			"subject": f.Subject,
			"message": f.Message,
		},
	}
}

func (f QuoteForm) Submission() Submission {
	return Submission{
		Kind: "quote",
		Fields: map[string]string{
			"name":                  f.Name,
			"email":                 f.Email,
			"phone":                 f.Phone,
			"company":               f.Company,
			"originCity":            f.OriginCity,
			"originPostalCode":      f.OriginPostalCode,
			"destinationCity":       f.DestinationCity,
			"destinationPostalCode": f.DestinationPostalCode,
			"packageType":           f.PackageType,
			"weight":                f.Weight,
			"dimensions":            f.Dimensions,
			"description":           f.Description,
		},
	}
}
