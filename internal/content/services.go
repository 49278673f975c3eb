package content

type Service struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Desc     string   `json:"description"`
	Icon     string   `json:"icon"`
	Features []string `json:"features"`
}

type Coverage struct {
	States         int      `json:"states"`
	Cities         int      `json:"cities"`
	DeliveryPoints int      `json:"deliveryPoints"`
	MainRoutes     []string `json:"mainRoutes"`
}

type ProcessStep struct {
	Step  int    `json:"step"`
	Title string `json:"title"`
	Desc  string `json:"description"`
}

type CityDelivery struct {
	Name         string `json:"name"`
	State        string `json:"state"`
	DeliveryTime string `json:"deliveryTime"`
}

var LogistikCoverage = Coverage{
	States:         32,
	Cities:         500,
	DeliveryPoints: 10000,
	MainRoutes: []string{
		"Ciudad de México - Monterrey",
		"Ciudad de México - Guadalajara",
		"Ciudad de México - Cancún",
		"Monterrey - Tijuana",
		"Guadalajara - Mérida",
	},
}

var ShippingProcess = []ProcessStep{
	{Step: 1, Title: "Cotización", Desc: "Solicita una cotización con los datos de tu envío."},
	{Step: 2, Title: "Recolección", Desc: "Programamos la recolección en tu domicilio o punto de origen."},
	{Step: 3, Title: "Transporte", Desc: "Tu paquete viaja de forma segura con rastreo en tiempo real."},
	{Step: 4, Title: "Entrega", Desc: "Entregamos en el destino con confirmación de recepción."},
}

var MainCities = []CityDelivery{
	{Name: "Ciudad de México", State: "CDMX", DeliveryTime: "1-2 días"},
	{Name: "Guadalajara", State: "Jalisco", DeliveryTime: "1-2 días"},
	{Name: "Monterrey", State: "Nuevo León", DeliveryTime: "1-2 días"},
	{Name: "Puebla", State: "Puebla", DeliveryTime: "1-2 días"},
	{Name: "Querétaro", State: "Querétaro", DeliveryTime: "1-2 días"},
	{Name: "Mérida", State: "Yucatán", DeliveryTime: "2-3 días"},
	{Name: "Tijuana", State: "Baja California", DeliveryTime: "2-3 días"},
	{Name: "León", State: "Guanajuato", DeliveryTime: "1-2 días"},
	{Name: "Cancún", State: "Quintana Roo", DeliveryTime: "2-3 días"},
	{Name: "Cuernavaca", State: "Morelos", DeliveryTime: "1 día"},
}

var LogisticServices = []Service{
	{
		ID: "transporte-terrestre", Title: "Transporte Terrestre",
		Desc: "Servicio de transporte por carretera a nivel nacional con unidades modernas y seguimiento GPS en tiempo real.",
		Icon: "truck",
		Features: []string{"Cobertura a nivel nacional", "Unidades con GPS", "Seguro de carga incluido", "Entregas programadas"},
	},
	{
		ID: "paqueteria-express", Title: "Paquetería Express",
		Desc: "Envíos urgentes con entrega al siguiente día hábil en las principales ciudades del país.",
		Icon: "zap",
		Features: []string{"Entrega día siguiente", "Recolección a domicilio", "Notificaciones en tiempo real", "Comprobante de entrega digital"},
	},
	{
		ID: "carga-consolidada", Title: "Carga Consolidada",
		Desc: "Optimiza tus costos de envío compartiendo espacio de transporte con otras cargas.",
		Icon: "layers",
		Features: []string{"Ahorro hasta 40%", "Rutas optimizadas", "Ideal para volúmenes pequeños"},
	},
	{
		ID: "almacenaje", Title: "Almacenaje y Distribución",
		Desc: "Resguardo de mercancía y distribución programada desde nuestros centros.",
		Icon: "warehouse",
		Features: []string{"Inventario en línea", "Picking y packing", "Distribución última milla"},
	},
}
