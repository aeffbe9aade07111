package model

import (
	"fmt"
	"strconv"
	"time"
)

type Category int32

const (
	CategoryUnknown Category = iota
	CategoryElectrical
	CategoryMechanical
)

func (c Category) String() string {
	switch c {
	case CategoryElectrical:
		return "electrical"
	case CategoryMechanical:
		return "mechanical"
	default:
		return "unknown"
	}
}

// Part is a stock item of any category.
type Part interface {
	Info() PartInfo
	Category() Category
	// Details renders the part for the store menu.
	Details() string
	// Value is the stock value of the part: price times quantity.
	Value() float64
}

// PartInfo holds the attributes shared by every category.
type PartInfo struct {
	// Identifier of this stock entry. Two parts may share a name, never an ID.
	ID string
	// Human-readable part name, matched case-insensitively.
	Name string
	// Unit price of the part.
	Price float64
	// Quantity of this part currently available in stock.
	StockQuantity int64
	// Timestamp when the part was created.
	CreatedAt *time.Time
}

func (p PartInfo) Info() PartInfo { return p }

func (p PartInfo) Value() float64 { return p.Price * float64(p.StockQuantity) }

type ElectricalPart struct {
	PartInfo
	// Operating voltage in volts.
	Voltage float64
}

func (p *ElectricalPart) Category() Category { return CategoryElectrical }

func (p *ElectricalPart) Details() string {
	return fmt.Sprintf("Repuesto Eléctrico: %s, Precio: $%.2f, Cantidad: %d, Voltaje: %s V",
		p.Name, p.Price, p.StockQuantity, formatMeasure(p.Voltage))
}

type MechanicalPart struct {
	PartInfo
	// Weight in kilograms.
	Weight float64
}

func (p *MechanicalPart) Category() Category { return CategoryMechanical }

func (p *MechanicalPart) Details() string {
	return fmt.Sprintf("Repuesto Mecánico: %s, Precio: $%.2f, Cantidad: %d, Peso: %s kg",
		p.Name, p.Price, p.StockQuantity, formatMeasure(p.Weight))
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
