package entity

// WarehouseStatus estado operativo de una bodega.
type WarehouseStatus string

const (
	WarehouseActive      WarehouseStatus = "active"
	WarehouseInactive    WarehouseStatus = "inactive"
	WarehouseMaintenance WarehouseStatus = "maintenance"
)

func (s WarehouseStatus) Valid() bool {
	switch s {
	case WarehouseActive, WarehouseInactive, WarehouseMaintenance:
		return true
	}
	return false
}

// Warehouse representa una bodega o sucursal donde se almacena inventario.
// Capacity y UsedCapacity se expresan en posiciones de estiba.
type Warehouse struct {
	ID           string          `json:"id" yaml:"id"`
	Code         string          `json:"code" yaml:"code"`
	Name         string          `json:"name" yaml:"name"`
	Location     string          `json:"location" yaml:"location"`
	Manager      string          `json:"manager" yaml:"manager"`
	Capacity     int             `json:"capacity" yaml:"capacity"`
	UsedCapacity int             `json:"usedCapacity" yaml:"usedCapacity"`
	Status       WarehouseStatus `json:"status" yaml:"status"`
}

func (w Warehouse) GetID() string { return w.ID }

func (w Warehouse) WithID(id string) Warehouse {
	w.ID = id
	return w
}

func (Warehouse) Kind() Kind { return KindWarehouse }

func (w Warehouse) SearchTerms() []string { return []string{w.Code, w.Name, w.Location, w.Manager} }

func (w Warehouse) Facet() string { return string(w.Status) }
