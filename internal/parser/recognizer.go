package parser

import "strings"

// SheetRecognizer scores sheets against the known report layouts
type SheetRecognizer struct{}

// NewSheetRecognizer creates a recognizer.
func NewSheetRecognizer() *SheetRecognizer {
	return &SheetRecognizer{}
}

// Recognize classifies one sheet from its name and cell grid.
func (r *SheetRecognizer) Recognize(sheetName string, rows [][]string) RecognitionResult {
	normName := NormalizeLabel(sheetName)

	// Finance sheets carry fixed names; resolve those first.
	if unit, ok := buDetailSheets[normName]; ok {
		return RecognitionResult{
			SheetName:    sheetName,
			SheetType:    SheetBUDetail,
			Confidence:   1,
			BusinessUnit: unit,
		}
	}
	if company, ok := pnlSheets[normName]; ok {
		return RecognitionResult{
			SheetName:  sheetName,
			SheetType:  SheetPnL,
			Confidence: 1,
			Company:    company,
		}
	}
	if strings.Contains(normName, "summary of business units") {
		return RecognitionResult{SheetName: sheetName, SheetType: SheetBUSummary, Confidence: 1}
	}

	labels := collectLabels(rows)

	if result := r.recognizeGrossMargin(sheetName, normName, labels); result.Confidence >= 0.5 {
		return result
	}
	if result := r.recognizePlacements(sheetName, labels); result.Confidence >= 0.5 {
		return result
	}
	if result := r.recognizeEmployment(sheetName, labels); result.Confidence >= 0.5 {
		return result
	}

	return RecognitionResult{SheetName: sheetName, SheetType: SheetUnknown}
}

// recognizeEmployment placement report sheet 1: per-company employment types
func (r *SheetRecognizer) recognizeEmployment(sheetName string, labels map[string]bool) RecognitionResult {
	matched := 0
	for _, spec := range EmploymentLabels {
		if labels[NormalizeLabel(spec.Label)] {
			matched++
		}
	}
	confidence := float64(matched) / float64(len(EmploymentLabels))
	if strings.Contains(NormalizeLabel(sheetName), "employment") {
		confidence += 0.2
	}
	if confidence >= 0.5 {
		return RecognitionResult{SheetName: sheetName, SheetType: SheetEmployment, Confidence: confidence}
	}
	return RecognitionResult{SheetName: sheetName, SheetType: SheetUnknown, Confidence: confidence}
}

// recognizePlacements placement report sheet 2: billables + placement metrics
func (r *SheetRecognizer) recognizePlacements(sheetName string, labels map[string]bool) RecognitionResult {
	keyLabels := []string{"New Placements", "Terminations", "Net Placements", "Total billables"}
	matched := 0
	for _, l := range keyLabels {
		if labels[NormalizeLabel(l)] {
			matched++
		}
	}
	confidence := float64(matched) / float64(len(keyLabels))
	norm := NormalizeLabel(sheetName)
	if strings.Contains(norm, "placement") || strings.Contains(norm, "consolidated") {
		confidence += 0.2
	}
	if confidence >= 0.5 {
		return RecognitionResult{SheetName: sheetName, SheetType: SheetPlacements, Confidence: confidence}
	}
	return RecognitionResult{SheetName: sheetName, SheetType: SheetUnknown, Confidence: confidence}
}

// recognizeGrossMargin placement report sheet 3: per-company margins, 2024 vs 2025
func (r *SheetRecognizer) recognizeGrossMargin(sheetName, normName string, labels map[string]bool) RecognitionResult {
	// Sheet name is the strongest signal; the row set varies per export.
	nameBoost := 0.0
	if strings.Contains(normName, "gross") || strings.Contains(normName, "margin") {
		nameBoost = 0.6
	}

	// Company rows overlap with the employment sheet, so they only count
	// when the 2024/2025 comparison columns are present too.
	matched := 0
	if labels["2024"] && labels["2025"] {
		for _, company := range MarginCompanies {
			if labels[NormalizeLabel(company)] {
				matched++
			}
		}
	}
	confidence := float64(matched)/float64(len(MarginCompanies)) + nameBoost

	if confidence >= 0.5 {
		return RecognitionResult{SheetName: sheetName, SheetType: SheetGrossMargin, Confidence: confidence}
	}
	return RecognitionResult{SheetName: sheetName, SheetType: SheetUnknown, Confidence: confidence}
}

// RecognizeStatement scores one sheet of a standalone statement upload
// against its expected label set. Statement files carry an explicit type
// discriminator, so only the matching label set is scored.
func (r *SheetRecognizer) RecognizeStatement(sheetName string, rows [][]string, specs []LabelSpec, sheetType SheetType) RecognitionResult {
	// Substring matching, as statement rows often prefix the expected
	// label ("Total Assets" for "Assets").
	matched := 0
	for _, spec := range specs {
		if i, _ := FindRowContaining(rows, spec.Label, 4); i >= 0 {
			matched++
		}
	}
	confidence := float64(matched) / float64(len(specs))
	if confidence >= 0.3 {
		return RecognitionResult{SheetName: sheetName, SheetType: sheetType, Confidence: confidence}
	}
	return RecognitionResult{SheetName: sheetName, SheetType: SheetUnknown, Confidence: confidence}
}

// collectLabels gathers every normalized non-empty cell of the sheet.
// Label columns drift between revisions, so all columns are considered.
func collectLabels(rows [][]string) map[string]bool {
	labels := make(map[string]bool)
	for _, row := range rows {
		for _, cell := range row {
			if n := NormalizeLabel(cell); n != "" {
				labels[n] = true
			}
		}
	}
	return labels
}
