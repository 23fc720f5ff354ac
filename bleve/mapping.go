package bleve

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/single"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Bleve field names for consistent references in mappings and queries.
const (
	FieldText      = "text"
	FieldTitle     = "title"
	FieldComponent = "component"
	FieldVersion   = "version"
	FieldURL       = "url"
)

// Analyzers registered by buildIndexMapping.
const (
	// NameAnalyzer splits on word boundaries and lowercases, keeping stop
	// words, so that names like "other" or "about" stay searchable.
	NameAnalyzer = "docindex_name"

	// ExactAnalyzer lowercases the whole value as a single term.
	ExactAnalyzer = "docindex_exact"
)

// buildIndexMapping returns a static mapping for page and section entries.
//
// text and title use analyzer. component uses NameAnalyzer; both are
// searched by default. version is only matched with a "version:" qualifier
// so that version numbers do not leak into free-text queries. url is stored
// to resolve hits back to pages.
func buildIndexMapping(analyzer string) (*mapping.IndexMappingImpl, error) {
	indexMapping := bleve.NewIndexMapping()

	if err := indexMapping.AddCustomAnalyzer(NameAnalyzer, map[string]interface{}{
		"type":          custom.Name,
		"tokenizer":     unicode.Name,
		"token_filters": []string{lowercase.Name},
	}); err != nil {
		return nil, fmt.Errorf("register %s analyzer: %w", NameAnalyzer, err)
	}
	if err := indexMapping.AddCustomAnalyzer(ExactAnalyzer, map[string]interface{}{
		"type":          custom.Name,
		"tokenizer":     single.Name,
		"token_filters": []string{lowercase.Name},
	}); err != nil {
		return nil, fmt.Errorf("register %s analyzer: %w", ExactAnalyzer, err)
	}

	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = analyzer
	textField.Store = false

	titleField := bleve.NewTextFieldMapping()
	titleField.Analyzer = analyzer
	titleField.Store = false

	componentField := bleve.NewTextFieldMapping()
	componentField.Analyzer = NameAnalyzer
	componentField.Store = false

	versionField := bleve.NewTextFieldMapping()
	versionField.Analyzer = ExactAnalyzer
	versionField.IncludeInAll = false
	versionField.Store = false

	urlField := bleve.NewTextFieldMapping()
	urlField.Analyzer = ExactAnalyzer
	urlField.IncludeInAll = false
	urlField.Index = false
	urlField.Store = true

	docMapping := bleve.NewDocumentStaticMapping()
	docMapping.AddFieldMappingsAt(FieldText, textField)
	docMapping.AddFieldMappingsAt(FieldTitle, titleField)
	docMapping.AddFieldMappingsAt(FieldComponent, componentField)
	docMapping.AddFieldMappingsAt(FieldVersion, versionField)
	docMapping.AddFieldMappingsAt(FieldURL, urlField)

	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = queryAnalyzer(analyzer)
	return indexMapping, nil
}

// queryAnalyzer returns the analyzer of unqualified query terms, which are
// matched against every default field at once. The standard analyzer would
// drop component names that are stop words from the query; NameAnalyzer
// produces the same tokens without that filter.
func queryAnalyzer(analyzer string) string {
	if analyzer == standard.Name {
		return NameAnalyzer
	}
	return analyzer
}
