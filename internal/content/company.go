package content

type CompanyInfo struct {
	Name        string
	FullName    string
	Tagline     string
	Description string
	Email       string
	Phone       string
	WhatsApp    string
}

type LocationInfo struct {
	Address     string
	Colony      string
	PostalCode  string
	City        string
	State       string
	Country     string
	FullAddress string
	Lat         float64
	Lng         float64
}

var Company = CompanyInfo{
	Name:        "MA-IN",
	FullName:    "Grupo MA-IN",
	Tagline:     "Soluciones integrales de logística",
	Description: "Empresa mexicana líder en soluciones de logística, rastreo, empaque y comercio.",
	Email:       "contacto@ma-in.mx",
	Phone:       "+52 777 123 4567",
	WhatsApp:    "+52 777 123 4567",
}

var Location = LocationInfo{
	Address:     "Av. San Diego 426, zona 1",
	Colony:      "Lomas de Vista Hermosa",
	PostalCode:  "62290",
	City:        "Cuernavaca",
	State:       "Morelos",
	Country:     "México",
	FullAddress: "Av. San Diego 426, zona 1, Lomas de Vista Hermosa, 62290 Cuernavaca, Morelos, México",
	Lat:         18.9261,
	Lng:         -99.2214,
}

var ScheduleFormatted = "Lunes a viernes de 8:00 a 14:00 y de 16:00 a 19:00"
