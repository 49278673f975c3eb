package models

// Shipment is the normalized record returned to the browser. Every field is a
// plain string and may be empty; the display layer renders a placeholder for
// blanks instead of failing. The JSON names are the public contract of
// GET /api/track.
type Shipment struct {
	TrackingCode string `json:"trackingCode"`
	Status       string `json:"status"`
	GuideType    string `json:"guideType"`
	Sender       string `json:"sender"`
	ReceivedBy   string `json:"receivedBy"`
	OriginCity   string `json:"originCity"`
	DestCity     string `json:"destCity"`
	Content      string `json:"content"`
	Date         string `json:"date"`
	Carrier      string `json:"carrier"`
}

// Guide types (service tier).
const (
	GuideTypeExpress = "EXPRESS"
	GuideTypeEconomy = "ECONOMY"
)
