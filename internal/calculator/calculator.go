package calculator

import (
	"github.com/praneethkukunuru/recruitment-dashboard/internal/formula"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/model"
)

// Calculator evaluates the KPI formula set over extracted base values.
type Calculator struct{}

// NewCalculator creates a calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate evaluates every formula in the set. A formula that fails to
// parse, references an unknown variable or divides by zero yields a zero
// result flagged as errored; the remaining KPIs still compute.
func (c *Calculator) Calculate(vars formula.Resolver, formulas model.FormulaSpec) map[string]model.KPIResult {
	results := make(map[string]model.KPIResult, len(formulas))
	for key, expr := range formulas {
		label, format := key, model.FormatCurrency
		if def, ok := formula.Definition(key); ok {
			label, format = def.Label, def.Format
		}

		value, err := formula.Evaluate(expr, vars)
		results[key] = model.KPIResult{
			Value:  value,
			Label:  label,
			Format: format,
			Error:  err != nil,
		}
	}
	return results
}

// Process runs the full pipeline for one extraction: KPI evaluation plus the
// chart set for the report type.
func (c *Calculator) Process(result *model.ExtractionResult, formulas model.FormulaSpec) *model.ProcessResult {
	return &model.ProcessResult{
		KPIs:   c.Calculate(result.BaseValues, formulas),
		Charts: c.Charts(result),
	}
}
