package content

type Division struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Tagline  string   `json:"tagline"`
	Desc     string   `json:"description"`
	Icon     string   `json:"icon"`
	Href     string   `json:"href"`
	Features []string `json:"features"`
}

var Divisions = []Division{
	{
		ID: "logistik", Name: "MA-IN Logistik",
		Tagline: "Soluciones de logística integral",
		Desc:    "Servicios de transporte y distribución a nivel nacional con la mejor cobertura y tiempos de entrega garantizados.",
		Icon:    "truck", Href: "/logistik",
		Features: []string{"Cobertura nacional", "Entregas programadas", "Almacenaje y distribución", "Logística inversa"},
	},
	{
		ID: "track", Name: "MA-IN Track",
		Tagline: "Rastreo en tiempo real",
		Desc:    "Sistema de rastreo inteligente para monitorear tus envíos en tiempo real desde cualquier dispositivo.",
		Icon:    "map-pin", Href: "/track",
		Features: []string{"Rastreo en tiempo real", "Notificaciones automáticas", "Historial de envíos", "API de integración"},
	},
	{
		ID: "pack", Name: "MA-IN Pack",
		Tagline: "Empaques profesionales",
		Desc:    "Soluciones de empaque y embalaje para proteger tus productos durante el transporte.",
		Icon:    "package", Href: "/pack",
		Features: []string{"Empaques personalizados", "Materiales ecológicos", "Soluciones industriales", "Venta mayoreo y menudeo"},
	},
	{
		ID: "market", Name: "MA-IN Market",
		Tagline: "Comercio y alimentos",
		Desc:    "Menú digital de alimentos y bebidas disponible para descarga y consulta.",
		Icon:    "shopping-bag", Href: "/market",
		Features: []string{"Menú de alimentos", "Menú de bebidas", "Pedidos en sucursal"},
	},
}

func DivisionByID(id string) (Division, bool) {
	for _, d := range Divisions {
		if d.ID == id {
			return d, true
		}
	}
	return Division{}, false
}
