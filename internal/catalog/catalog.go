package catalog

import (
	"sort"
	"strings"

	"GemScout/internal/domain/models"
	"GemScout/internal/domain/repository"
	"GemScout/pkg/logger"
)

// Catalog serves the static instrument universe and free-text search over it.
// Symbols outside the table are still researchable; Search synthesizes a
// custom entry for them so the caller never dead-ends on a miss.
type Catalog struct {
	instruments []models.Instrument
	bySymbol    map[string]models.Instrument
	search      *searchIndex
	log         *logger.Logger
}

func New(log *logger.Logger) (*Catalog, error) {
	c := &Catalog{
		instruments: psxInstruments,
		bySymbol:    make(map[string]models.Instrument, len(psxInstruments)),
		log:         log,
	}
	for _, inst := range psxInstruments {
		c.bySymbol[inst.Symbol] = inst
	}

	idx, err := newSearchIndex(psxInstruments)
	if err != nil {
		return nil, err
	}
	c.search = idx

	log.Info("catalog ready", logger.Int("instruments", len(psxInstruments)))
	return c, nil
}

func (c *Catalog) All() []models.Instrument {
	out := make([]models.Instrument, len(c.instruments))
	copy(out, c.instruments)
	return out
}

// Lookup resolves a symbol against the static table. Unknown symbols come
// back as a custom instrument with no reference price.
func (c *Catalog) Lookup(symbol string) (models.Instrument, bool) {
	key := strings.ToUpper(strings.TrimSpace(symbol))
	if inst, ok := c.bySymbol[key]; ok {
		return inst, true
	}
	return customInstrument(key), false
}

func (c *Catalog) Sectors() []repository.SectorGroup {
	grouped := make(map[string][]models.Instrument)
	order := make([]string, 0)
	for _, inst := range c.instruments {
		if _, seen := grouped[inst.Sector]; !seen {
			order = append(order, inst.Sector)
		}
		grouped[inst.Sector] = append(grouped[inst.Sector], inst)
	}
	sort.Strings(order)

	groups := make([]repository.SectorGroup, 0, len(order))
	for _, sector := range order {
		groups = append(groups, repository.SectorGroup{Sector: sector, Instruments: grouped[sector]})
	}
	return groups
}

// Search runs the ranked free-text query. An empty result set for a
// symbol-looking query still yields a single custom candidate.
func (c *Catalog) Search(query string) ([]models.Instrument, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	symbols, err := c.search.query(query)
	if err != nil {
		return nil, err
	}

	results := make([]models.Instrument, 0, len(symbols))
	for _, sym := range symbols {
		if inst, ok := c.bySymbol[sym]; ok {
			results = append(results, inst)
		}
	}
	if len(results) == 0 && looksLikeSymbol(query) {
		results = append(results, customInstrument(strings.ToUpper(query)))
	}
	return results, nil
}

func customInstrument(symbol string) models.Instrument {
	return models.Instrument{
		Symbol: symbol,
		Name:   symbol,
		Sector: "Custom Search",
	}
}

func looksLikeSymbol(q string) bool {
	if len(q) > 12 {
		return false
	}
	for _, r := range q {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isAlpha && r != '.' && r != '-' {
			return false
		}
	}
	return true
}
