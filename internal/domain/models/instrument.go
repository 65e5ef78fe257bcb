package models

// Instrument is a tradable security listed on the exchange. Loaded once from
// the static catalog and never mutated.
type Instrument struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Sector         string  `json:"sector"`
	ReferencePrice float64 `json:"referencePrice"`
	LastUpdated    string  `json:"lastUpdated"`
}

// PriceKnown reports whether the catalog carries a reference price for the
// instrument. A zero price is the "resolve live" sentinel used for custom
// searches.
func (i Instrument) PriceKnown() bool {
	return i.ReferencePrice > 0
}
