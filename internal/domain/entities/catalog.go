package entities

import "github.com/shopspring/decimal"

// InsumoCategory separates consumables whose consumption reacts to surface
// wear (metallic diamond pads) from those that do not (resin pads) and from
// fixed-rate consumables (surface hardener).

type InsumoCategory string

const (
	InsumoCategoryMetalico    InsumoCategory = "metalico"
	InsumoCategoryResinado    InsumoCategory = "resinado"
	InsumoCategoryEndurecedor InsumoCategory = "endurecedor"
)

// CatalogInsumo is a fixed-price consumable from the built-in catalog.
type CatalogInsumo struct {
	SKU         string
	Description string
	Category    InsumoCategory
	UnitPrice   decimal.Decimal
}

// CatalogMachine is one machine entry of the built-in consumption table.
//
// BaseAreaPerSet is the area (m²) one set (jogo) of pads covers before it is
// worn out; PiecesPerSet is how many pads make up a set on this machine head.
type CatalogMachine struct {
	ID             string
	Name           string
	PiecesPerSet   int
	BaseAreaPerSet float64
	Metalico       CatalogInsumo
	Resinado       CatalogInsumo
}

// Hardener is the machine-independent surface hardener: one liter covers
// HardenerMetersPerLiter m² regardless of machine or surface grade.
const HardenerMetersPerLiter = 40.0

var HardenerInsumo = CatalogInsumo{
	SKU:         "END-LIT-001",
	Description: "Endurecedor de superfície (litro)",
	Category:    InsumoCategoryEndurecedor,
	UnitPrice:   decimal.NewFromFloat(38.90),
}

var catalogMachines = []CatalogMachine{
	{
		ID:             "pg280",
		Name:           "Politriz de piso PG 280",
		PiecesPerSet:   3,
		BaseAreaPerSet: 250,
		Metalico: CatalogInsumo{
			SKU:         "MET-PG280-030",
			Description: "Diamantado metálico grão 30 (PG 280)",
			Category:    InsumoCategoryMetalico,
			UnitPrice:   decimal.NewFromFloat(129.90),
		},
		Resinado: CatalogInsumo{
			SKU:         "RES-PG280-100",
			Description: "Diamantado resinado grão 100 (PG 280)",
			Category:    InsumoCategoryResinado,
			UnitPrice:   decimal.NewFromFloat(74.50),
		},
	},
	{
		ID:             "pg450",
		Name:           "Politriz de piso PG 450",
		PiecesPerSet:   6,
		BaseAreaPerSet: 500,
		Metalico: CatalogInsumo{
			SKU:         "MET-PG450-030",
			Description: "Diamantado metálico grão 30 (PG 450)",
			Category:    InsumoCategoryMetalico,
			UnitPrice:   decimal.NewFromFloat(119.90),
		},
		Resinado: CatalogInsumo{
			SKU:         "RES-PG450-100",
			Description: "Diamantado resinado grão 100 (PG 450)",
			Category:    InsumoCategoryResinado,
			UnitPrice:   decimal.NewFromFloat(69.90),
		},
	},
	{
		ID:             "pg680",
		Name:           "Politriz de piso PG 680",
		PiecesPerSet:   9,
		BaseAreaPerSet: 800,
		Metalico: CatalogInsumo{
			SKU:         "MET-PG680-030",
			Description: "Diamantado metálico grão 30 (PG 680)",
			Category:    InsumoCategoryMetalico,
			UnitPrice:   decimal.NewFromFloat(112.00),
		},
		Resinado: CatalogInsumo{
			SKU:         "RES-PG680-100",
			Description: "Diamantado resinado grão 100 (PG 680)",
			Category:    InsumoCategoryResinado,
			UnitPrice:   decimal.NewFromFloat(64.00),
		},
	},
}

// CatalogMachineByID looks up a machine in the built-in table.
func CatalogMachineByID(id string) (CatalogMachine, bool) {
	for _, m := range catalogMachines {
		if m.ID == id {
			return m, true
		}
	}
	return CatalogMachine{}, false
}

// CatalogMachines returns the built-in machine table.
func CatalogMachines() []CatalogMachine {
	out := make([]CatalogMachine, len(catalogMachines))
	copy(out, catalogMachines)
	return out
}
