package converter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/rocket-maintenance/autoparts/internal/model"
)

// OptionInvalid is returned by ParseOption for anything that is not an integer.
const OptionInvalid = 0

func ParseOption(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return OptionInvalid
	}
	return n
}

func ParseName(s string) string {
	return strings.TrimSpace(s)
}

func ParsePrice(s string) (float64, error) {
	return parseFloat("price", s, "El precio debe ser un número.")
}

func ParseQuantity(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &model.InvalidInputError{
			Field:  "quantity",
			Value:  raw,
			Reason: "La cantidad debe ser un número.",
		}
	}
	return n, nil
}

func ParseVoltage(s string) (float64, error) {
	return parseFloat("voltage", s, "El voltaje debe ser un número.")
}

func ParseWeight(s string) (float64, error) {
	return parseFloat("weight", s, "El peso debe ser un número.")
}

func ElectricalPartToModel(name string, price float64, qty int64, voltage float64) *model.ElectricalPart {
	return &model.ElectricalPart{
		PartInfo: newPartInfo(name, price, qty),
		Voltage:  voltage,
	}
}

func MechanicalPartToModel(name string, price float64, qty int64, weight float64) *model.MechanicalPart {
	return &model.MechanicalPart{
		PartInfo: newPartInfo(name, price, qty),
		Weight:   weight,
	}
}

func newPartInfo(name string, price float64, qty int64) model.PartInfo {
	return model.PartInfo{
		ID:            uuid.NewString(),
		Name:          name,
		Price:         price,
		StockQuantity: qty,
		CreatedAt:     lo.ToPtr(time.Now()),
	}
}

func parseFloat(field, s, reason string) (float64, error) {
	raw := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &model.InvalidInputError{Field: field, Value: raw, Reason: reason}
	}
	return v, nil
}
