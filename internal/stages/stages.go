// Package stages holds the ordered shipment-lifecycle enumerations used to
// render a tracking timeline. Two deployments shipped two different sets, so
// the set in effect is configuration, not a constant.
package stages

// Stage keys of the simple (3-stage) set.
const (
	StatusCollected = "RECOLECTADO POR MA-IN"
	StatusInTransit = "EN_TRANSITO"
	StatusConfirmed = "CONFIRMADO"
)

// Stage keys of the full (6-stage) set.
const (
	StatusCreated        = "CREATED"
	StatusPickedUp       = "PICKED_UP"
	StatusFullInTransit  = "IN_TRANSIT"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusDelivered      = "DELIVERED"
	StatusReturned       = "RETURNED"
)

type Stage struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Set is an ordered stage list. Position in the slice is position in the
// shipment lifecycle.
type Set []Stage

var simpleSet = Set{
	{
		Key:         StatusCollected,
		Label:       "Recolectado por MA-IN",
		Description: "Paquete recolectado y en camino a centro de distribución.",
	},
	{
		Key:         StatusInTransit,
		Label:       "En tránsito",
		Description: "Tu paquete está en ruta hacia la ciudad de destino.",
	},
	{
		Key:         StatusConfirmed,
		Label:       "Confirmado",
		Description: "La entrega ha sido confirmada exitosamente.",
	},
}

var fullSet = Set{
	{Key: StatusCreated, Label: "Guía generada", Description: "El envío está registrado en el sistema."},
	{Key: StatusPickedUp, Label: "Recolectado", Description: "Ya recogimos el paquete."},
	{Key: StatusFullInTransit, Label: "En tránsito", Description: "El paquete está en camino al destino."},
	{Key: StatusOutForDelivery, Label: "En camino", Description: "El paquete salió a entrega."},
	{Key: StatusDelivered, Label: "Entregado", Description: "Entrega confirmada."},
	{Key: StatusReturned, Label: "Devuelto", Description: "El paquete fue devuelto al remitente."},
}

// SetByName returns the stage set for a config name. Unknown names fall back
// to the simple set.
func SetByName(name string) Set {
	switch name {
	case "full":
		return fullSet
	default:
		return simpleSet
	}
}

// Index returns the position of status in the set, matching the canonical key
// exactly. An unrecognized status maps to the first stage.
func (s Set) Index(status string) int {
	for i, st := range s {
		if st.Key == status {
			return i
		}
	}
	return 0
}

// Step is one timeline entry: a stage plus its state relative to the
// shipment's current status.
type Step struct {
	Stage
	Completed bool `json:"completed"`
	Current   bool `json:"current"`
}

// Timeline renders the whole set against one status. Stages up to and
// including the current one are completed; the current one is also flagged.
func (s Set) Timeline(status string) []Step {
	cur := s.Index(status)
	out := make([]Step, 0, len(s))
	for i, st := range s {
		out = append(out, Step{
			Stage:     st,
			Completed: i <= cur,
			Current:   i == cur,
		})
	}
	return out
}
