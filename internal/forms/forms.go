// Package forms holds the field-level validation rules shared by the contact
// and quote forms. Rules are presence/format checks only; there is no business
// logic here.
package forms

import (
	"fmt"
	"regexp"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	postalRe = regexp.MustCompile(`^\d{5}$`)
	digitsRe = regexp.MustCompile(`\D`)
)

func Required(value, field, label string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: label + " es requerido"}
	}
	return nil
}

func Email(value string) *FieldError {
	if value != "" && !emailRe.MatchString(value) {
		return &FieldError{Field: "email", Message: "Ingresa un email válido"}
	}
	return nil
}

// Phone accepts 10 digits, or 12 digits with the 52 country prefix. Separators
// and spaces are stripped before checking.
func Phone(value, field string) *FieldError {
	if value == "" {
		return nil
	}
	cleaned := digitsRe.ReplaceAllString(value, "")
	if len(cleaned) == 10 {
		return nil
	}
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "52") {
		return nil
	}
	return &FieldError{Field: field, Message: "Ingresa un teléfono válido (10 dígitos)"}
}

func MinLength(value string, min int, field, label string) *FieldError {
	if value != "" && len(strings.TrimSpace(value)) < min {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s debe tener al menos %d caracteres", label, min)}
	}
	return nil
}

func MaxLength(value string, max int, field, label string) *FieldError {
	if value != "" && len(strings.TrimSpace(value)) > max {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s no puede exceder %d caracteres", label, max)}
	}
	return nil
}

func PostalCode(value, field string) *FieldError {
	if value != "" && !postalRe.MatchString(value) {
		return &FieldError{Field: field, Message: "Código postal inválido (5 dígitos)"}
	}
	return nil
}

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (f ContactForm) Validate() []FieldError {
	var errs []FieldError
	push := func(e *FieldError) {
		if e != nil {
			errs = append(errs, *e)
		}
	}

	push(Required(f.Name, "name", "Nombre"))
	if e := Required(f.Email, "email", "Email"); e != nil {
		errs = append(errs, *e)
	} else {
		push(Email(f.Email))
	}
	push(Phone(f.Phone, "phone"))
	push(Required(f.Subject, "subject", "Asunto"))
	if e := Required(f.Message, "message", "Mensaje"); e != nil {
		errs = append(errs, *e)
	} else {
		push(MinLength(f.Message, 10, "message", "Mensaje"))
	}
	return errs
}

type QuoteForm struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Company               string `json:"company"`
	OriginCity            string `json:"originCity"`
	OriginPostalCode      string `json:"originPostalCode"`
	DestinationCity       string `json:"destinationCity"`
	DestinationPostalCode string `json:"destinationPostalCode"`
	PackageType           string `json:"packageType"`
	Weight                string `json:"weight"`
	Dimensions            string `json:"dimensions"`
	Description           string `json:"description"`
}

func (f QuoteForm) Validate() []FieldError {
	var errs []FieldError
	push := func(e *FieldError) {
		if e != nil {
			errs = append(errs, *e)
		}
	}

	push(Required(f.Name, "name", "Nombre"))
	if e := Required(f.Email, "email", "Email"); e != nil {
		errs = append(errs, *e)
	} else {
		push(Email(f.Email))
	}
	if e := Required(f.Phone, "phone", "Teléfono"); e != nil {
		errs = append(errs, *e)
	} else {
		push(Phone(f.Phone, "phone"))
	}
	push(Required(f.OriginCity, "originCity", "Ciudad de origen"))
	if e := Required(f.OriginPostalCode, "originPostalCode", "CP origen"); e != nil {
		errs = append(errs, *e)
	} else {
		push(PostalCode(f.OriginPostalCode, "originPostalCode"))
	}
	push(Required(f.DestinationCity, "destinationCity", "Ciudad de destino"))
	if e := Required(f.DestinationPostalCode, "destinationPostalCode", "CP destino"); e != nil {
		errs = append(errs, *e)
	} else {
		push(PostalCode(f.DestinationPostalCode, "destinationPostalCode"))
	}
	push(Required(f.PackageType, "packageType", "Tipo de paquete"))
	push(Required(f.Weight, "weight", "Peso"))
	return errs
}
