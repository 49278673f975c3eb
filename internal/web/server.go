// Package web serves the site itself: rendered pages, static assets and the
// menu downloads. API handlers live under internal/api and are mounted next to
// this router by the cmd app.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-main/mainsite/internal/content"
	"github.com/grupo-main/mainsite/internal/stages"
)

//go:embed templates static
var assets embed.FS

type Options struct {
	BaseURL       string
	MapsAPIKey    string
	MenusDir      string
	MinCodeLength int
	StageSet      stages.Set
}

type Server struct {
	opts  Options
	pages map[string]*template.Template
}

// Pages and the layout they render into. Each entry is parsed together with
// layout.html so a page only defines its own content block.
var pageFiles = map[string]string{
	"home":              "templates/home.html",
	"logistik":          "templates/logistik.html",
	"logistik-coverage": "templates/logistik_coverage.html",
	"logistik-process":  "templates/logistik_process.html",
	"track":             "templates/track.html",
	"track-shipment":    "templates/track_shipment.html",
	"pack":              "templates/pack.html",
	"pack-catalog":      "templates/pack_catalog.html",
	"pack-featured":     "templates/pack_featured.html",
	"market":            "templates/market.html",
	"support":           "templates/support.html",
	"faq":               "templates/faq.html",
	"contact":           "templates/contact.html",
	"quote":             "templates/quote.html",
	"location":          "templates/location.html",
	"privacy":           "templates/privacy.html",
	"terms":             "templates/terms.html",
	"notfound":          "templates/notfound.html",
}

func New(opts Options) (*Server, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for name, file := range pageFiles {
		t, err := template.ParseFS(assets, "templates/layout.html", file)
		if err != nil {
			return nil, err
		}
		pages[name] = t
	}
	return &Server{opts: opts, pages: pages}, nil
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.page("home", "Inicio", nil))
	r.Get("/logistik", s.page("logistik", "Logistik", content.LogisticServices))
	r.Get("/logistik/services", s.page("logistik", "Servicios", content.LogisticServices))
	r.Get("/logistik/coverage", s.page("logistik-coverage", "Cobertura Nacional", coveragePageData{
		Coverage: content.LogistikCoverage,
		Cities:   content.MainCities,
	}))
	r.Get("/logistik/process", s.page("logistik-process", "Proceso de Envío", content.ShippingProcess))
	r.Get("/track", s.page("track", "Track", nil))
	r.Get("/track/track-shipment", s.handleTrackShipment)
	r.Get("/pack", s.page("pack", "Pack", content.ProductCategories))
	r.Get("/pack/catalog", s.handleCatalog)
	r.Get("/pack/featured", s.page("pack-featured", "Productos Destacados", content.FeaturedProducts()))
	r.Get("/market", s.page("market", "Market", nil))
	r.Get("/support", s.page("support", "Soporte", nil))
	r.Get("/support/faq", s.handleFAQ)
	r.Get("/support/contact", s.page("contact", "Contacto", nil))
	r.Get("/support/location", s.page("location", "Ubicación", nil))
	r.Get("/logistik/quote", s.page("quote", "Cotizar", nil))
	r.Get("/privacy", s.page("privacy", "Aviso de privacidad", nil))
	r.Get("/terms", s.page("terms", "Términos y condiciones", nil))

	r.Get("/market/menus/alimentos", s.menuHandler("alimentos", "MMarket_Menu_Alimentos.pdf"))
	r.Get("/market/menus/bebidas", s.menuHandler("bebidas", "MMarket_Menu_Bebidas.pdf"))

	staticFS, _ := fs.Sub(assets, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.NotFound(s.page("notfound", "Página no encontrada", nil))
}

// pageData is what every template receives.
type pageData struct {
	Title      string
	Company    content.CompanyInfo
	Location   content.LocationInfo
	Schedule   string
	Divisions  []content.Division
	MapsAPIKey string
	Data       any

	// Tracking page only.
	MinCodeLength int
	StageSetJSON  template.JS
}

func (s *Server) newPageData(title string, data any) pageData {
	return pageData{
		Title:      title,
		Company:    content.Company,
		Location:   content.Location,
		Schedule:   content.ScheduleFormatted,
		Divisions:  content.Divisions,
		MapsAPIKey: s.opts.MapsAPIKey,
		Data:       data,
	}
}

func (s *Server) page(name, title string, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, name, s.newPageData(title, data))
	}
}

// handleTrackShipment injects the validation policy and the stage set so the
// client-side form shares one source of truth with the server.
func (s *Server) handleTrackShipment(w http.ResponseWriter, r *http.Request) {
	d := s.newPageData("Rastrear Envío", s.opts.StageSet)
	d.MinCodeLength = s.opts.MinCodeLength
	b, err := json.Marshal(s.opts.StageSet)
	if err != nil {
		slog.Error("marshal stage set", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	d.StageSetJSON = template.JS(b)
	s.render(w, "track-shipment", d)
}

type coveragePageData struct {
	Coverage content.Coverage
	Cities   []content.CityDelivery
}

type faqPageData struct {
	Categories []content.FAQCategory
	Items      []content.FAQItem
	Query      string
	Category   string
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	cat := r.URL.Query().Get("category")

	items := content.FAQ
	switch {
	case q != "":
		items = content.SearchFAQ(q)
	case cat != "":
		items = content.FAQByCategory(cat)
	}

	s.render(w, "faq", s.newPageData("Preguntas frecuentes", faqPageData{
		Categories: content.FAQCategories,
		Items:      items,
		Query:      q,
		Category:   cat,
	}))
}

type catalogPageData struct {
	Categories []content.ProductCategory
	Products   []content.Product
	Category   string
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := r.URL.Query().Get("category")
	products := content.Products
	if cat != "" {
		products = content.ProductsByCategory(cat)
	}
	s.render(w, "pack-catalog", s.newPageData("Catálogo", catalogPageData{
		Categories: content.ProductCategories,
		Products:   products,
		Category:   cat,
	}))
}

func (s *Server) render(w http.ResponseWriter, name string, data pageData) {
	t, ok := s.pages[name]
	if !ok {
		slog.Error("unknown page template", "name", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if name == "notfound" {
		w.WriteHeader(http.StatusNotFound)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("render page", "name", name, "err", err)
	}
}
