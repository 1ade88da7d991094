package game

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/eco-farm/internal/parser"
)

var (
	cropNames = parser.NewRegistry(
		parser.NameDef{Canonical: string(CropCorn), Aliases: []string{"maize", "sweetcorn"}},
		parser.NameDef{Canonical: string(CropWheat), Aliases: []string{"grain"}},
		parser.NameDef{Canonical: string(CropRice), Aliases: []string{"paddy"}},
		parser.NameDef{Canonical: string(CropCoconut), Aliases: []string{"coconut palm", "palm"}},
	)
	soilNames = parser.NewRegistry(
		parser.NameDef{Canonical: string(SoilClay), Aliases: []string{"clay soil"}},
		parser.NameDef{Canonical: string(SoilLoam), Aliases: []string{"loam soil", "loamy"}},
		parser.NameDef{Canonical: string(SoilSandy), Aliases: []string{"sand", "sandy soil"}},
		parser.NameDef{Canonical: string(SoilSilt), Aliases: []string{"silt soil", "silty"}},
	)
	irrigationNames = parser.NewRegistry(
		parser.NameDef{Canonical: string(IrrigationDrip), Aliases: []string{"drip irrigation", "trickle"}},
		parser.NameDef{Canonical: string(IrrigationRainwater), Aliases: []string{"rainwater harvesting", "rain barrel"}},
		parser.NameDef{Canonical: string(IrrigationFlood), Aliases: []string{"flood irrigation", "surface"}},
	)
	treatmentNames = parser.NewRegistry(
		parser.NameDef{Canonical: string(TreatmentPesticide), Aliases: []string{"pest control", "insecticide"}},
		parser.NameDef{Canonical: string(TreatmentFertilizer), Aliases: []string{"fertiliser", "compost"}},
	)
)

func ParseCropType(raw string) (CropType, error) {
	name, err := resolveName(cropNames, raw, ErrUnknownCrop)
	return CropType(name), err
}

func ParseSoilType(raw string) (SoilType, error) {
	name, err := resolveName(soilNames, raw, ErrUnknownSoil)
	return SoilType(name), err
}

func ParseIrrigationType(raw string) (IrrigationType, error) {
	name, err := resolveName(irrigationNames, raw, ErrUnknownIrrigation)
	return IrrigationType(name), err
}

func ParseTreatmentType(raw string) (TreatmentType, error) {
	name, err := resolveName(treatmentNames, raw, ErrUnknownTreatment)
	return TreatmentType(name), err
}

func resolveName(r *parser.Registry, raw string, sentinel error) (string, error) {
	m := r.Resolve(raw)
	if m.Resolved() {
		return m.Canonical, nil
	}
	switch {
	case m.Kind == parser.Ambiguous:
		return "", fmt.Errorf("%w %q: could be %s", sentinel, raw, strings.Join(m.Suggestions, " or "))
	case len(m.Suggestions) > 0:
		return "", fmt.Errorf("%w %q: did you mean %q?", sentinel, raw, m.Suggestions[0])
	default:
		return "", fmt.Errorf("%w %q: expected one of %s", sentinel, raw, strings.Join(r.Names(), ", "))
	}
}
