// summary.go renders the human-readable report from a canonical result.
//
// This is the one place in the pipeline that deliberately swallows errors:
// the caller always gets something renderable, even for a result shape we
// never anticipated. Everything upstream stays fail-fast.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// Outcome is the result of summary generation: either a rendered report or
// an error description. It never propagates a failure.
type Outcome struct {
	Text   string // The report, or an error description when Failed is true
	Failed bool
}

// Summarize derives the multi-section markdown report from a canonical
// result. Missing sections fall back to placeholders; an unexpected shape
// is caught and turned into an error string instead of propagating.
func Summarize(r *Result) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Outcome{
				Text:   fmt.Sprintf("Error generating summary: %v", rec),
				Failed: true,
			}
		}
	}()

	product := section(r, "product")
	elec := section(r, "electrical_specs")
	mech := section(r, "mechanical_specs")
	temp := section(r, "temperature_specs")
	warranty := section(r, "warranty")

	manufacturer := stringOr(product, "manufacturer", "Unknown")
	series := stringOr(product, "series", "Solar Module")
	models := strings.Join(stringSlice(product["model_types"]), ", ")

	wattage := childMap(product["wattage_range"])
	opRange := childMap(temp["operating_range_c"])

	// Max efficiency across variants, skipping nulls.
	maxEfficiency := "N/A"
	if eff, ok := maxVariantEfficiency(elec["power_variants"]); ok {
		maxEfficiency = formatNumber(eff)
	}

	text := fmt.Sprintf(`
## Product Overview
**%s %s**
*Models*: %s
*Power Range*: %sW - %sW

## Key Specifications
- **Efficiency**: Up to %s%%
- **Max System Voltage**: %sV
- **Dimensions**: %smm x %smm
- **Weight**: %skg
- **Cell Type**: %s

## Performance & Warranty
- **Operating Temp**: %s°C to %s°C
- **Temperature Coefficient (Pmax)**: %s%%/°C
- **Warranty**: %s Years (%s%% degradation/year)
`,
		manufacturer, series,
		models,
		display(wattage["min"]), display(wattage["max"]),
		maxEfficiency,
		display(elec["max_system_voltage_v"]),
		display(mech["length_mm"]), display(mech["width_mm"]),
		display(mech["weight_kg"]),
		display(mech["cell_type"]),
		display(opRange["min"]), display(opRange["max"]),
		display(temp["temp_coefficient_pmax_pct_per_c"]),
		display(warranty["years"]), display(warranty["degradation_rate_pct"]),
	)

	return Outcome{Text: text}
}

// section returns a top-level object from the result, or an empty map when
// the key is absent, null, or not an object. Indexing an empty map yields
// nil, which display renders as "None" — absent values never panic.
func section(r *Result, key string) map[string]any {
	v, _ := r.Get(key)
	return childMap(v)
}

// childMap safely narrows a value to an object.
func childMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// stringOr returns the string at key, or fallback when the key is absent,
// null, or not a string.
func stringOr(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// stringSlice narrows a JSON array to its string elements.
func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// maxVariantEfficiency returns the maximum non-null efficiency_pct across
// power variants, and whether any was present.
func maxVariantEfficiency(variants any) (float64, bool) {
	items, ok := variants.([]any)
	if !ok {
		return 0, false
	}

	var max float64
	found := false
	for _, item := range items {
		variant, ok := item.(map[string]any)
		if !ok {
			continue
		}
		eff, ok := variant["efficiency_pct"].(float64)
		if !ok {
			continue
		}
		if !found || eff > max {
			max = eff
			found = true
		}
	}
	return max, found
}

// display renders a pass-through field. Absent and null values render as the
// literal "None" — the report applies no substitution for these, it simply
// stringifies what is there.
func display(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return t
	case float64:
		return formatNumber(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// formatNumber renders a JSON number without a trailing ".0" for integral
// values: 1500 not 1500.0, but 21.2 stays 21.2.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
