package visualize

import (
	"encoding/json"
	"os"

	"github.com/zora-rando/zora/pkg/item"
	"github.com/zora-rando/zora/pkg/validate"
)

func itemKindName(k item.Kind) string { return item.New(k).String() }

// reportDoc is the JSON-friendly rendition of a validate.Report: MissingItems
// (item.Kind, an int type) is re-expressed as its String() form so the
// emitted document is self-describing without a reader needing pkg/item's
// numbering.
type reportDoc struct {
	Passed                bool     `json:"passed"`
	MissingItems          []string `json:"missing_items"`
	UnreachedDestinations []string `json:"unreached_destinations"`
}

// ExportReportJSON serializes a validate.Report to indented JSON, in the
// style of teacher's export.ExportJSON.
func ExportReportJSON(r *validate.Report) ([]byte, error) {
	doc := reportDoc{
		Passed:                r.Passed,
		UnreachedDestinations: append([]string(nil), r.UnreachedDestinations...),
	}
	for _, k := range r.MissingItems {
		doc.MissingItems = append(doc.MissingItems, itemKindName(k))
	}
	return json.MarshalIndent(doc, "", "  ")
}

// SaveReportJSONToFile exports r and writes it to path with the same 0644
// permissions teacher's SaveJSONToFile uses.
func SaveReportJSONToFile(r *validate.Report, path string) error {
	data, err := ExportReportJSON(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
