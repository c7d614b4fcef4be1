// Package parser extracts the fillable fields of a captured form structure.
package parser

import (
	"errors"

	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

// ErrNilStructure is returned by [StructureParser.Parse] for a nil structure.
var ErrNilStructure = errors.New("structure is nil")

// StructureParser walks a [models.Structure] and collects every view that
// declares at least one supported autofill hint.
type StructureParser struct {
	logger *logger.Logger
}

// NewStructureParser returns a StructureParser.
func NewStructureParser(log *logger.Logger) *StructureParser {
	return &StructureParser{logger: log}
}

// Parse returns the autofill fields of structure in depth-first order.
// Unsupported hints are dropped; a view left with no hints is skipped. The
// collection's save type is the union of the save types of its fields.
func (p *StructureParser) Parse(structure *models.Structure) (*models.FieldsCollection, error) {
	if structure == nil {
		return nil, ErrNilStructure
	}

	fields := models.NewFieldsCollection()
	for i := range structure.Windows {
		p.parseNode(&structure.Windows[i], fields)
	}

	p.logger.Debug().
		Str("func", "StructureParser.Parse").
		Str("package", structure.Package).
		Int("fields", fields.Len()).
		Strs("focused_hints", fields.FocusedHints()).
		Msg("structure parsed")

	return fields, nil
}

func (p *StructureParser) parseNode(node *models.ViewNode, fields *models.FieldsCollection) {
	if hints := supportedHints(node.Hints); len(hints) > 0 {
		fields.Add(models.AutofillField{
			ID:       node.ID,
			Hints:    hints,
			SaveType: models.SaveTypeForHints(hints),
			Focused:  node.Focused,
		})
	}

	for i := range node.Children {
		p.parseNode(&node.Children[i], fields)
	}
}

func supportedHints(hints []string) []string {
	var out []string
	for _, hint := range hints {
		if models.IsSupportedHint(hint) {
			out = append(out, hint)
		}
	}
	return out
}
