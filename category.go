package landval

import "strings"

// Category classifies a valuation table.
type Category string

// Valuation categories recognized on region pages.
const (
	CategoryResidential Category = "residential"
	CategoryCommercial  Category = "commercial"
	CategoryIndustrial  Category = "industrial"
	CategoryRural       Category = "rural"
)

// headingPhrases maps the section headings used on valuation pages to their
// category. Order matters: the first phrase contained in a heading wins.
var headingPhrases = []struct {
	phrase   string
	category Category
}{
	{"Typical residential land values", CategoryResidential},
	{"Typical commercial land values", CategoryCommercial},
	{"Typical industrial land values", CategoryIndustrial},
	{"Typical rural land values", CategoryRural},
}

// ClassifyHeading returns the category introduced by a section heading.
// Returns false if the heading text contains none of the known phrases.
func ClassifyHeading(text string) (Category, bool) {
	for _, h := range headingPhrases {
		if strings.Contains(text, h.phrase) {
			return h.category, true
		}
	}
	return "", false
}

// IsCommercialFamily reports whether the category shares the single
// non-residential table slot of a document.
func (c Category) IsCommercialFamily() bool {
	return c == CategoryCommercial || c == CategoryIndustrial || c == CategoryRural
}
