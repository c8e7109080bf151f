package models

// Feature is a static card of the features grid. Title and Text are i18n keys.
type Feature struct {
	Key   string
	Title string
	Text  string
}

// Features returns the three feature cards in display order
func Features() []Feature {
	return []Feature{
		{Key: "responsive", Title: "features.responsive.title", Text: "features.responsive.text"},
		{Key: "pseudo", Title: "features.pseudo.title", Text: "features.pseudo.text"},
		{Key: "conditional", Title: "features.conditional.title", Text: "features.conditional.text"},
	}
}
