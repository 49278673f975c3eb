package content

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Category      string  `json:"category"`
	InStock       bool    `json:"inStock"`
	Featured      bool    `json:"featured"`
}

type ProductCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var ProductCategories = []ProductCategory{
	{ID: "cajas", Name: "Cajas de Cartón", Description: "Cajas corrugadas en diferentes medidas para envío y almacenaje.", Icon: "box"},
	{ID: "sobres", Name: "Sobres y Bolsas", Description: "Sobres de seguridad, bolsas de mensajería y sobres acolchados.", Icon: "mail"},
	{ID: "relleno", Name: "Material de Relleno", Description: "Plástico burbuja, espuma, papel kraft y más para protección.", Icon: "layers"},
	{ID: "cintas", Name: "Cintas Adhesivas", Description: "Cintas de empaque, sellado y seguridad.", Icon: "tape"},
	{ID: "etiquetas", Name: "Etiquetas", Description: "Etiquetas térmicas, adhesivas y de envío.", Icon: "tag"},
	{ID: "ecologicos", Name: "Ecológicos", Description: "Empaques biodegradables y reciclables.", Icon: "leaf"},
}

var Products = []Product{
	{ID: "caja-20x20x20", Name: "Caja 20x20x20 cm", Description: "Caja de cartón corrugado sencillo, ideal para paquetes pequeños.", Price: 18, Category: "cajas", InStock: true, Featured: true},
	{ID: "caja-40x30x30", Name: "Caja 40x30x30 cm", Description: "Caja mediana de doble corrugado para envíos estándar.", Price: 32, Category: "cajas", InStock: true, Featured: false},
	{ID: "caja-60x40x40", Name: "Caja 60x40x40 cm", Description: "Caja grande reforzada para mudanzas y envíos voluminosos.", Price: 55, OriginalPrice: 65, Category: "cajas", InStock: true, Featured: true},
	{ID: "sobre-seguridad", Name: "Sobre de Seguridad", Description: "Sobre plástico con cierre inviolable para documentos.", Price: 8, Category: "sobres", InStock: true, Featured: false},
	{ID: "sobre-acolchado", Name: "Sobre Acolchado", Description: "Sobre con burbuja interior para artículos frágiles pequeños.", Price: 12, Category: "sobres", InStock: true, Featured: true},
	{ID: "burbuja-rollo", Name: "Plástico Burbuja (rollo 10 m)", Description: "Rollo de plástico burbuja para protección de mercancía.", Price: 89, Category: "relleno", InStock: true, Featured: false},
	{ID: "papel-kraft", Name: "Papel Kraft (rollo 5 kg)", Description: "Papel kraft para relleno y envoltura ecológica.", Price: 120, Category: "relleno", InStock: false, Featured: false},
	{ID: "cinta-transparente", Name: "Cinta Transparente 48mm", Description: "Cinta de empaque estándar, alta adherencia.", Price: 25, Category: "cintas", InStock: true, Featured: false},
	{ID: "etiqueta-termica", Name: "Etiquetas Térmicas 10x15 (500 pzs)", Description: "Rollo de etiquetas térmicas para impresión de guías.", Price: 150, Category: "etiquetas", InStock: true, Featured: true},
	{ID: "caja-eco", Name: "Caja Ecológica Reciclada", Description: "Caja fabricada 100% con cartón reciclado.", Price: 22, Category: "ecologicos", InStock: true, Featured: false},
}

func ProductsByCategory(categoryID string) []Product {
	var out []Product
	for _, p := range Products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func FeaturedProducts() []Product {
	var out []Product
	for _, p := range Products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
