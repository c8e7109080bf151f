package services

// Button variants
const (
	VariantSolid   = "solid"
	VariantGhost   = "ghost"
	VariantOutline = "outline"
)

// Colour palettes
const (
	PaletteBrand = "brand"
	PaletteGray  = "gray"
)

// Labels of the subscribe buttons (i18n keys)
const (
	LabelGetUpdates = "subscribe.get_updates"
	LabelSubscribed = "subscribe.subscribed"
)

// ButtonStyle describes how a button looks for a given state.
// Colours are theme token names, resolved by the theme package.
type ButtonStyle struct {
	Variant  string
	Palette  string
	HoverBg  string
	ActiveBg string
	Disabled bool
	// LabelKey is empty when the caller supplies its own label
	LabelKey string
}

// CardStyle describes a pricing card
type CardStyle struct {
	BorderColor string
	Shadow      string
	ShowBadge   bool
}

// SubmitButtonStyle maps (emailValid, submitted) to the subscribe button.
// Both subscribe buttons on the page use it.
func SubmitButtonStyle(emailValid, submitted bool) ButtonStyle {
	canSubmit := emailValid && !submitted

	style := ButtonStyle{
		Variant:  VariantSolid,
		Palette:  PaletteBrand,
		HoverBg:  "gray.200",
		ActiveBg: "gray.200",
		Disabled: !canSubmit,
		LabelKey: LabelGetUpdates,
	}
	if canSubmit {
		style.HoverBg = "brand.600"
		style.ActiveBg = "brand.700"
	}
	if submitted {
		style.LabelKey = LabelSubscribed
	}
	return style
}

// BrandButtonStyle is the plain solid brand button
func BrandButtonStyle() ButtonStyle {
	return ButtonStyle{Variant: VariantSolid, Palette: PaletteBrand, HoverBg: "brand.600", ActiveBg: "brand.700"}
}

// PlanTabStyle is the segmented selector above the pricing cards
func PlanTabStyle(selected bool) ButtonStyle {
	if selected {
		return BrandButtonStyle()
	}
	return ButtonStyle{Variant: VariantGhost, Palette: PaletteGray, HoverBg: "gray.100", ActiveBg: "gray.200"}
}

// PlanActionStyle is the "Choose <plan>" button inside a card
func PlanActionStyle(selected bool) ButtonStyle {
	if selected {
		return BrandButtonStyle()
	}
	return ButtonStyle{Variant: VariantOutline, Palette: PaletteGray, HoverBg: "gray.50", ActiveBg: "gray.100"}
}

// PlanCardStyle emphasises the selected card
func PlanCardStyle(selected bool) CardStyle {
	if selected {
		return CardStyle{BorderColor: "brand.500", Shadow: "md", ShowBadge: true}
	}
	return CardStyle{BorderColor: "gray.200", Shadow: "sm"}
}
