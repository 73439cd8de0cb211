// Package fixtures carga los datos semilla embebidos (fixtures.yaml).
package fixtures

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

//go:embed fixtures.yaml
var raw []byte

// Set arreglos semilla por entidad.
type Set struct {
	Partners          []entity.Partner         `yaml:"partners"`
	Products          []entity.Product         `yaml:"products"`
	Orders            []entity.Order           `yaml:"orders"`
	Inventory         []entity.InventoryItem   `yaml:"inventory"`
	PurchaseOrders    []entity.PurchaseOrder   `yaml:"purchaseOrders"`
	SalesOrders       []entity.SalesOrder      `yaml:"salesOrders"`
	Machines          []entity.Machine         `yaml:"machines"`
	Customers         []entity.Customer        `yaml:"customers"`
	Suppliers         []entity.Supplier        `yaml:"suppliers"`
	Employees         []entity.Employee        `yaml:"employees"`
	ProductionOrders  []entity.ProductionOrder `yaml:"productionOrders"`
	QualityControls   []entity.QualityControl  `yaml:"qualityControls"`
	Warehouses        []entity.Warehouse       `yaml:"warehouses"`
	AccountingEntries []entity.AccountingEntry `yaml:"accountingEntries"`
	Projects          []entity.Project         `yaml:"projects"`
	Formulations      []entity.Formulation     `yaml:"formulations"`
	BOMs              []entity.BOM             `yaml:"boms"`
}

// Load decodifica los datos semilla. Cada llamada devuelve arreglos nuevos.
func Load() (Set, error) {
	return Parse(raw)
}

// MustLoad igual que Load pero entra en pánico si el YAML embebido es inválido.
func MustLoad() Set {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodifica un documento de fixtures arbitrario.
func Parse(doc []byte) (Set, error) {
	var s Set
	if err := yaml.Unmarshal(doc, &s); err != nil {
		return Set{}, fmt.Errorf("fixtures: decodificar yaml: %w", err)
	}
	return s, nil
}
