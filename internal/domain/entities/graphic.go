package entities

// GraphicVariant selects one of the cylinder illustrations.
type GraphicVariant int

const (
	VariantStandard GraphicVariant = iota
	VariantTall
	VariantWide
	VariantShort
	VariantNarrow

	// GraphicVariantCount is the number of available illustrations.
	GraphicVariantCount = 5
)

func (v GraphicVariant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantTall:
		return "tall"
	case VariantWide:
		return "wide"
	case VariantShort:
		return "short"
	case VariantNarrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Valid reports whether v indexes an existing illustration.
func (v GraphicVariant) Valid() bool {
	return v >= 0 && v < GraphicVariantCount
}
