package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFAQ_EmptyQueryReturnsAll(t *testing.T) {
	require.Equal(t, FAQ, SearchFAQ(""))
	require.Equal(t, FAQ, SearchFAQ("   "))
}

func TestSearchFAQ_CaseInsensitiveOverQuestionAndAnswer(t *testing.T) {
	res := SearchFAQ("RASTREAR")
	require.NotEmpty(t, res)
	for _, item := range res {
		q := strings.ToLower(item.Question)
		a := strings.ToLower(item.Answer)
		require.True(t, strings.Contains(q, "rastrear") || strings.Contains(a, "rastrear"),
			"item %d matched without containing the query", item.ID)
	}

	// Term that only appears in answers.
	require.NotEmpty(t, SearchFAQ("facturación"))

	require.Empty(t, SearchFAQ("palabra-que-no-existe"))
}

func TestFAQByCategory(t *testing.T) {
	res := FAQByCategory("rastreo")
	require.NotEmpty(t, res)
	for _, item := range res {
		require.Equal(t, "rastreo", item.Category)
	}
	require.Empty(t, FAQByCategory("no-such"))
}

func TestProductsByCategory(t *testing.T) {
	res := ProductsByCategory("cajas")
	require.NotEmpty(t, res)
	for _, p := range res {
		require.Equal(t, "cajas", p.Category)
	}
}

func TestFeaturedProducts(t *testing.T) {
	res := FeaturedProducts()
	require.NotEmpty(t, res)
	for _, p := range res {
		require.True(t, p.Featured)
	}
}

func TestShippingProcessOrder(t *testing.T) {
	require.Len(t, ShippingProcess, 4)
	for i, step := range ShippingProcess {
		require.Equal(t, i+1, step.Step)
		require.NotEmpty(t, step.Title)
	}
}

func TestLogistikCoverage(t *testing.T) {
	require.Equal(t, 32, LogistikCoverage.States)
	require.NotEmpty(t, LogistikCoverage.MainRoutes)
	require.NotEmpty(t, MainCities)
}

func TestDivisionByID(t *testing.T) {
	d, ok := DivisionByID("track")
	require.True(t, ok)
	require.Equal(t, "MA-IN Track", d.Name)

	_, ok = DivisionByID("nope")
	require.False(t, ok)
}
