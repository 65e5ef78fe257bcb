package catalog

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"GemScout/internal/domain/models"
)

const maxSearchResults = 20

// searchIndex is an in-memory full-text index over the instrument table.
// Document IDs are the instrument symbols, so hits map straight back to
// catalog rows without stored fields.
type searchIndex struct {
	idx bleve.Index
}

type instrumentDoc struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

func newSearchIndex(instruments []models.Instrument) (*searchIndex, error) {
	mapping := bleve.NewIndexMapping()

	symbolField := bleve.NewTextFieldMapping()
	symbolField.Analyzer = keyword.Name

	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = standard.Name

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("symbol", symbolField)
	doc.AddFieldMappingsAt("name", textField)
	doc.AddFieldMappingsAt("sector", textField)
	mapping.DefaultMapping = doc

	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("create search index: %w", err)
	}

	batch := idx.NewBatch()
	for _, inst := range instruments {
		err := batch.Index(inst.Symbol, instrumentDoc{
			Symbol: strings.ToLower(inst.Symbol),
			Name:   inst.Name,
			Sector: inst.Sector,
		})
		if err != nil {
			return nil, fmt.Errorf("index %s: %w", inst.Symbol, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("flush search index: %w", err)
	}

	return &searchIndex{idx: idx}, nil
}

// query ranks symbol matches above name matches: exact symbol first, then
// symbol prefixes, then name terms, then fuzzier wildcard matches.
func (s *searchIndex) query(raw string) ([]string, error) {
	term := strings.ToLower(strings.TrimSpace(raw))
	if term == "" {
		return nil, nil
	}

	exact := bleve.NewTermQuery(term)
	exact.SetField("symbol")
	exact.SetBoost(10.0)

	prefix := bleve.NewPrefixQuery(term)
	prefix.SetField("symbol")
	prefix.SetBoost(5.0)

	nameMatch := bleve.NewMatchQuery(term)
	nameMatch.SetField("name")
	nameMatch.SetBoost(3.0)

	nameWild := bleve.NewWildcardQuery("*" + term + "*")
	nameWild.SetField("name")
	nameWild.SetBoost(2.0)

	sectorMatch := bleve.NewMatchQuery(term)
	sectorMatch.SetField("sector")
	sectorMatch.SetBoost(1.5)

	disjunction := bleve.NewDisjunctionQuery(
		exact, prefix, nameMatch, nameWild, sectorMatch,
	)

	req := bleve.NewSearchRequest(disjunction)
	req.Size = maxSearchResults

	res, err := s.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", raw, err)
	}

	symbols := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		symbols = append(symbols, hit.ID)
	}
	return symbols, nil
}
