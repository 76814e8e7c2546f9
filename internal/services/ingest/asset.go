package ingest

import (
	"strings"

	"github.com/findosh/sheetfolio/internal/models"
)

var assetSchema = Schema{
	{Name: "name", Hints: []string{"name", "asset", "item", "description"}},
	{Name: "type", Hints: []string{"type", "category", "class"}},
	{Name: "value", Hints: []string{"value", "amount", "balance", "total"}},
	{Name: "currency", Hints: []string{"currency", "ccy"}},
	{Name: "updated", Hints: []string{"updated", "last updated", "date", "as of"}},
}

// AssetParser parses rows of the asset tab. Construct once per sheet; the
// resolved column map is closed over for every row.
type AssetParser struct {
	cols ColumnMap
}

// NewAssetParser resolves the asset schema against the block's header.
func NewAssetParser(rows [][]string) *AssetParser {
	return &AssetParser{cols: Resolve(rows, assetSchema)}
}

// HeaderRow exposes the resolved header position for row iteration.
func (p *AssetParser) HeaderRow() int { return p.cols.HeaderRow() }

// Parse converts one data row into an Asset, or nil for rows with no usable
// identity (blank and formatting rows).
func (p *AssetParser) Parse(row []string, rowIdx int) *models.Asset {
	name := p.cols.Cell(row, "name")
	value := ParseAmount(p.cols.Cell(row, "value"))
	if name == "" && value.IsZero() {
		return nil
	}

	a := models.NewAsset(name)
	a.Value = value
	a.SourceRow = rowIdx

	if cur := strings.ToUpper(p.cols.Cell(row, "currency")); cur != "" {
		a.Currency = cur
	}
	if iso, ok := ParseDate(p.cols.Cell(row, "updated")); ok {
		a.Updated = iso
	}

	// Prefer the explicit type column; infer from name keywords otherwise.
	if typ := p.cols.Cell(row, "type"); typ != "" {
		a.Category = inferAssetCategory(typ)
		if a.Category == models.AssetOther {
			a.Category = inferAssetCategory(name)
		}
	} else {
		a.Category = inferAssetCategory(name)
	}
	return a
}

// inferAssetCategory tags an asset from keywords in free text. Categories are
// checked in the table's fixed order so overlapping keywords resolve the same
// way on every parse.
func inferAssetCategory(text string) models.AssetCategory {
	text = strings.ToLower(text)
	for _, entry := range assetKeywords {
		for _, w := range entry.words {
			if strings.Contains(text, w) {
				return models.AssetCategory(entry.category)
			}
		}
	}
	return models.AssetOther
}
