package usecase

import (
	"errors"
	"math"

	"insumos_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCatalogMachine = errors.New("invalid catalog machine")
	ErrInvalidArea           = errors.New("invalid area")
	ErrInvalidQualityGrade   = errors.New("invalid quality grade")
)

// Quality grades follow the 1-10 surface inspection scale.
const (
	minQualityGrade = 1
	maxQualityGrade = 10
)

// maxCatalogCount bounds any derived quantity (sets or liters) so the float
// ceiling always converts to int safely, multipliers included.
const maxCatalogCount = math.MaxInt32

// ILegacyQuoteUseCase builds quote line items from the built-in machine/insumo
// catalog, used for accessories that have no registered formula.
//
// Consumption policy:
//   - sets (jogos) needed = ceiling(area / baseAreaPerSet)
//   - metallic pads wear with the surface: sets are multiplied by the wear
//     factor derived from the quality grade (<=5: 3x, 6-8: 2x, >=9: 1x)
//   - resin pads ignore the grade
//   - surface hardener is machine-independent: ceiling(area / metersPerLiter)

type ILegacyQuoteUseCase interface {
	BuildLineItems(machineID string, areaSquareMeters float64, qualityGrade int) ([]entities.LineItem, error)
}

type LegacyQuoteUseCase struct{}

var _ ILegacyQuoteUseCase = (*LegacyQuoteUseCase)(nil)

func NewLegacyQuoteUseCase() *LegacyQuoteUseCase {
	return &LegacyQuoteUseCase{}
}

func (u *LegacyQuoteUseCase) BuildLineItems(machineID string, areaSquareMeters float64, qualityGrade int) ([]entities.LineItem, error) {
	machine, ok := entities.CatalogMachineByID(machineID)
	if !ok {
		return nil, ErrInvalidCatalogMachine
	}
	if areaSquareMeters <= 0 || math.IsNaN(areaSquareMeters) || math.IsInf(areaSquareMeters, 0) {
		return nil, ErrInvalidArea
	}
	if qualityGrade < minQualityGrade || qualityGrade > maxQualityGrade {
		return nil, ErrInvalidQualityGrade
	}

	rawSets := math.Ceil(areaSquareMeters / machine.BaseAreaPerSet)
	rawLiters := math.Ceil(areaSquareMeters / entities.HardenerMetersPerLiter)
	// A finite area can still push the counts past what int64 holds; the
	// conversion would wrap around to a negative quantity.
	if rawSets > maxCatalogCount || rawLiters > maxCatalogCount {
		return nil, ErrInvalidArea
	}

	baseSets := int(rawSets)
	metallicSets := baseSets * wearMultiplier(qualityGrade)
	resinSets := baseSets

	metallicQty := decimal.NewFromInt(int64(machine.PiecesPerSet * metallicSets))
	resinQty := decimal.NewFromInt(int64(machine.PiecesPerSet * resinSets))
	hardenerLiters := decimal.NewFromInt(int64(rawLiters))

	return []entities.LineItem{
		entities.NewLineItem(machine.Metalico.SKU, machine.Metalico.Description, metallicQty, machine.Metalico.UnitPrice),
		entities.NewLineItem(machine.Resinado.SKU, machine.Resinado.Description, resinQty, machine.Resinado.UnitPrice),
		entities.NewLineItem(entities.HardenerInsumo.SKU, entities.HardenerInsumo.Description, hardenerLiters, entities.HardenerInsumo.UnitPrice),
	}, nil
}

func wearMultiplier(grade int) int {
	switch {
	case grade <= 5:
		return 3
	case grade <= 8:
		return 2
	default:
		return 1
	}
}
