package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fieldsOf(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestRequired(t *testing.T) {
	require.Nil(t, Required("x", "name", "Nombre"))
	e := Required("   ", "name", "Nombre")
	require.NotNil(t, e)
	require.Equal(t, "name", e.Field)
	require.Equal(t, "Nombre es requerido", e.Message)
}

func TestEmail(t *testing.T) {
	require.Nil(t, Email(""))
	require.Nil(t, Email("ana@ma-in.mx"))
	require.NotNil(t, Email("ana@"))
	require.NotNil(t, Email("ana@ma-in"))
	require.NotNil(t, Email("ana ma@in.mx"))
}

func TestPhone(t *testing.T) {
	require.Nil(t, Phone("", "phone"))
	require.Nil(t, Phone("7771234567", "phone"))
	require.Nil(t, Phone("(777) 123-4567", "phone"))
	require.Nil(t, Phone("527771234567", "phone"))
	require.NotNil(t, Phone("12345", "phone"))
	require.NotNil(t, Phone("997771234567", "phone")) // 12 digits, wrong prefix
}

func TestPostalCode(t *testing.T) {
	require.Nil(t, PostalCode("", "cp"))
	require.Nil(t, PostalCode("62290", "cp"))
	require.NotNil(t, PostalCode("6229", "cp"))
	require.NotNil(t, PostalCode("62290a", "cp"))
}

func TestMinMaxLength(t *testing.T) {
	require.Nil(t, MinLength("", 10, "message", "Mensaje"))
	require.NotNil(t, MinLength("corto", 10, "message", "Mensaje"))
	require.Nil(t, MinLength("suficientemente largo", 10, "message", "Mensaje"))
	require.NotNil(t, MaxLength("demasiado largo", 5, "subject", "Asunto"))
}

func TestContactForm_Validate(t *testing.T) {
	errs := ContactForm{}.Validate()
	require.ElementsMatch(t, []string{"name", "email", "subject", "message"}, fieldsOf(errs))

	errs = ContactForm{
		Name:    "Ana",
		Email:   "no-es-email",
		Subject: "Hola",
		Message: "corto",
	}.Validate()
	require.ElementsMatch(t, []string{"email", "message"}, fieldsOf(errs))

	errs = ContactForm{
		Name:    "Ana",
		Email:   "ana@ma-in.mx",
		Phone:   "7771234567",
		Subject: "Hola",
		Message: "Necesito información de envíos.",
	}.Validate()
	require.Empty(t, errs)
}

func TestQuoteForm_Validate(t *testing.T) {
	errs := QuoteForm{}.Validate()
	require.Contains(t, fieldsOf(errs), "phone")
	require.Contains(t, fieldsOf(errs), "originPostalCode")
	require.Contains(t, fieldsOf(errs), "packageType")
	require.Contains(t, fieldsOf(errs), "weight")

	ok := QuoteForm{
		Name:                  "Ana",
		Email:                 "ana@ma-in.mx",
		Phone:                 "7771234567",
		OriginCity:            "Cuernavaca",
		OriginPostalCode:      "62290",
		DestinationCity:       "Monterrey",
		DestinationPostalCode: "64000",
		PackageType:           "caja",
		Weight:                "5",
	}
	require.Empty(t, ok.Validate())

	bad := ok
	bad.DestinationPostalCode = "123"
	require.ElementsMatch(t, []string{"destinationPostalCode"}, fieldsOf(bad.Validate()))
}
