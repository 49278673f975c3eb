package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/grupo-main/mainsite/internal/stages"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	if opts.StageSet == nil {
		opts.StageSet = stages.SetByName("simple")
	}
	if opts.MinCodeLength == 0 {
		opts.MinCodeLength = 3
	}
	s, err := New(opts)
	require.NoError(t, err)
	r := chi.NewRouter()
	s.Routes(r)
	return httptest.NewServer(r)
}

func fetch(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestPagesRender(t *testing.T) {
	srv := newTestServer(t, Options{})
	defer srv.Close()

	for _, path := range []string{
		"/", "/logistik", "/logistik/services", "/logistik/coverage",
		"/logistik/process", "/logistik/quote",
		"/track", "/track/track-shipment",
		"/pack", "/pack/catalog", "/pack/featured", "/market",
		"/support", "/support/faq", "/support/contact", "/support/location",
		"/privacy", "/terms",
	} {
		status, body := fetch(t, srv.URL+path)
		require.Equal(t, 200, status, "path %s", path)
		require.Contains(t, body, "MA-IN", "path %s", path)
	}
}

func TestLogistikSubpages(t *testing.T) {
	srv := newTestServer(t, Options{})
	defer srv.Close()

	status, body := fetch(t, srv.URL+"/logistik/coverage")
	require.Equal(t, 200, status)
	require.Contains(t, body, "Cobertura Nacional")
	require.Contains(t, body, "Estados con cobertura")
	require.Contains(t, body, "Guadalajara - Mérida")

	status, body = fetch(t, srv.URL+"/logistik/process")
	require.Equal(t, 200, status)
	require.Contains(t, body, "Proceso de Envío")
	require.Contains(t, body, "Paso 1")
	require.Contains(t, body, "Recolección")
}

func TestFeaturedProductsPage(t *testing.T) {
	srv := newTestServer(t, Options{})
	defer srv.Close()

	status, body := fetch(t, srv.URL+"/pack/featured")
	require.Equal(t, 200, status)
	require.Contains(t, body, "Productos Destacados")
	require.Contains(t, body, "Sobre Acolchado")
}

func TestNotFoundPage(t *testing.T) {
	srv := newTestServer(t, Options{})
	defer srv.Close()

	status, body := fetch(t, srv.URL+"/no-such-page")
	require.Equal(t, 404, status)
	require.Contains(t, body, "Página no encontrada")
}

func TestTrackShipmentPage_InjectsPolicy(t *testing.T) {
	srv := newTestServer(t, Options{MinCodeLength: 3, StageSet: stages.SetByName("simple")})
	defer srv.Close()

	status, body := fetch(t, srv.URL+"/track/track-shipment")
	require.Equal(t, 200, status)
	require.Contains(t, body, `data-min-length="3"`)
	require.Contains(t, body, "EN_TRANSITO")
	require.Contains(t, body, "CONFIRMADO")

	// Stage data rides a JSON script block, not a window global.
	require.Contains(t, body, `<script type="application/json" id="tracking-stages">`)
	require.NotContains(t, body, "window.TRACKING_STAGES")
}

func TestFAQPage_Search(t *testing.T) {
	srv := newTestServer(t, Options{})
	defer srv.Close()

	status, body := fetch(t, srv.URL+"/support/faq?q=rastrear")
	require.Equal(t, 200, status)
	require.Contains(t, body, "rastrear mi paquete")
	require.NotContains(t, body, "material de empaque al por menor")

	status, body = fetch(t, srv.URL+"/support/faq?q=zzz-nada")
	require.Equal(t, 200, status)
	require.Contains(t, body, "No encontramos preguntas")
}

func TestCatalogPage_CategoryFilter(t *testing.T) {
	srv := newTestServer(t, Options{})
	defer srv.Close()

	status, body := fetch(t, srv.URL+"/pack/catalog?category=sobres")
	require.Equal(t, 200, status)
	require.Contains(t, body, "Sobre de Seguridad")
	require.NotContains(t, body, "Caja 20x20x20")
}

func TestMenuDownload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alimentos.pdf"), []byte("%PDF-1.4 fake"), 0o600))

	srv := newTestServer(t, Options{MenusDir: dir})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/market/menus/alimentos")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	require.Contains(t, resp.Header.Get("Content-Disposition"), "MMarket_Menu_Alimentos.pdf")

	b, _ := io.ReadAll(resp.Body)
	require.Contains(t, string(b), "%PDF")
}

func TestMenuDownload_FallbackRedirect(t *testing.T) {
	srv := newTestServer(t, Options{
		MenusDir: t.TempDir(), // no files
		BaseURL:  "https://ma-in.mx",
	})
	defer srv.Close()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(srv.URL + "/market/menus/bebidas")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	require.Equal(t, "https://ma-in.mx/menus/bebidas.pdf", resp.Header.Get("Location"))
}
