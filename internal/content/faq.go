// Package content holds the static catalogs behind the site: FAQ, products,
// services, divisions and company facts. Everything here is defined at compile
// time; the only behavior is filtering and search.
package content

import "strings"

type FAQItem struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var FAQCategories = []FAQCategory{
	{ID: "envios", Name: "Envíos y Logística", Icon: "truck"},
	{ID: "rastreo", Name: "Rastreo de Paquetes", Icon: "map-pin"},
	{ID: "empaques", Name: "Empaques y Productos", Icon: "package"},
	{ID: "pagos", Name: "Pagos y Facturación", Icon: "credit-card"},
	{ID: "general", Name: "General", Icon: "help-circle"},
}

var FAQ = []FAQItem{
	{
		ID: 1, Category: "envios",
		Question: "¿Cuál es el tiempo de entrega para envíos nacionales?",
		Answer:   "Los tiempos de entrega varían según el destino. Para las principales ciudades (CDMX, Monterrey, Guadalajara) ofrecemos entrega en 1-2 días hábiles. Para el resto del país, los tiempos oscilan entre 3-5 días hábiles dependiendo de la zona.",
	},
	{
		ID: 2, Category: "envios",
		Question: "¿Ofrecen servicio de recolección a domicilio?",
		Answer:   "Sí, ofrecemos servicio de recolección a domicilio sin costo adicional en zonas urbanas. Puedes programar tu recolección al momento de generar tu guía o llamando a nuestro centro de atención.",
	},
	{
		ID: 3, Category: "envios",
		Question: "¿Qué zonas tienen cobertura?",
		Answer:   "Contamos con cobertura en los 32 estados de la República Mexicana, con más de 500 ciudades y 10,000 puntos de entrega. Consulta nuestra sección de cobertura para verificar tu código postal.",
	},
	{
		ID: 4, Category: "envios",
		Question: "¿Qué artículos están prohibidos para envío?",
		Answer:   "Están prohibidos: sustancias peligrosas, materiales inflamables, armas, drogas ilegales, animales vivos, dinero en efectivo, y artículos perecederos sin empaque adecuado.",
	},
	{
		ID: 5, Category: "rastreo",
		Question: "¿Cómo puedo rastrear mi paquete?",
		Answer:   "Puedes rastrear tu paquete ingresando tu número de guía en la sección Track de nuestro sitio web. También puedes rastrear por email si proporcionaste tu correo al generar la guía.",
	},
	{
		ID: 6, Category: "rastreo",
		Question: "¿Con qué frecuencia se actualiza la información de rastreo?",
		Answer:   "La información de rastreo se actualiza en tiempo real. Cada vez que tu paquete pasa por un punto de control o cambia de estatus, la información se refleja inmediatamente en el sistema.",
	},
	{
		ID: 7, Category: "rastreo",
		Question: "¿Qué significa cada estatus de rastreo?",
		Answer:   "\"Guía generada\" significa que el envío está registrado. \"Recolectado\" indica que ya recogimos el paquete. \"En tránsito\" significa que está en camino al destino. \"En reparto\" indica que salió a entrega. \"Entregado\" confirma la entrega exitosa.",
	},
	{
		ID: 8, Category: "empaques",
		Question: "¿Venden material de empaque al por menor?",
		Answer:   "Sí, en MA-IN Pack vendemos cajas, sobres, plástico burbuja, cintas y más, tanto al menudeo como al mayoreo. Visita nuestro catálogo o acude a nuestra sucursal.",
	},
	{
		ID: 9, Category: "pagos",
		Question: "¿Qué formas de pago aceptan?",
		Answer:   "Aceptamos efectivo, tarjetas de crédito y débito, y transferencias bancarias. Para clientes empresariales ofrecemos facturación con crédito a 15 y 30 días.",
	},
	{
		ID: 10, Category: "general",
		Question: "¿Cuál es el horario de atención?",
		Answer:   "Atendemos de lunes a viernes de 8:00 a 14:00 y de 16:00 a 19:00. Sábados y domingos permanecemos cerrados.",
	},
}

// SearchFAQ returns the items whose question or answer contains the query,
// case-insensitively. An empty or blank query returns the full list.
func SearchFAQ(query string) []FAQItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return FAQ
	}
	var out []FAQItem
	for _, item := range FAQ {
		if strings.Contains(strings.ToLower(item.Question), q) ||
			strings.Contains(strings.ToLower(item.Answer), q) {
			out = append(out, item)
		}
	}
	return out
}

func FAQByCategory(categoryID string) []FAQItem {
	var out []FAQItem
	for _, item := range FAQ {
		if item.Category == categoryID {
			out = append(out, item)
		}
	}
	return out
}
