// prompt.go builds the fixed extraction prompt.
//
// This is a prompt-engineering contract, not a parser: the rule list below is
// what guarantees the model output matches what the normalizer expects
// (null for missing values, unit-stripped numbers, fixed key set). Change the
// rules and the downstream normalization assumptions break.
package extraction

import "fmt"

// jsonSchema is the target output schema embedded verbatim in every prompt.
const jsonSchema = `
{
  "product": {
    "manufacturer": "string",
    "series": "string",
    "model_types": ["string"],
    "wattage_range": { "min": number, "max": number }
  },
  "electrical_specs": {
    "power_variants": [
      {
        "nominal_power_w": number,
        "vmax_v": number,
        "imax_a": number,
        "voc_v": number,
        "isc_a": number,
        "efficiency_pct": number
      }
    ],
    "max_system_voltage_v": number,
    "max_series_fuse_a": number
  },
  "mechanical_specs": {
    "length_mm": number,
    "width_mm": number,
    "weight_kg": number,
    "frame_material": "string",
    "cell_type": "string"
  },
  "temperature_specs": {
    "operating_range_c": { "min": number, "max": number },
    "temp_coefficient_pmax_pct_per_c": number,
    "noct_c": number
  },
  "warranty": {
    "years": number,
    "degradation_rate_pct": number
  },
  "certifications": ["string"]
}
`

// promptTemplate wraps the datasheet text and schema with the extraction rules.
const promptTemplate = `You are an expert data extraction assistant. Extract technical specifications from the datasheet text and output EXACTLY one JSON object that matches the schema.

<datasheet_text>
%s
</datasheet_text>

Rules (must follow):
1) Output ONLY valid JSON (no markdown, no commentary).
2) Use EXACTLY these top-level keys and nesting:
   product, electrical_specs, mechanical_specs, temperature_specs, warranty, certifications
3) Do NOT invent values. If a value is not explicitly present, use null.
4) All numeric fields must be numbers (no units, no percent sign). Examples:
   - "34 kg" -> 34
   - "0.3%%" -> 0.3
   - "1,500 V" -> 1500
   - "-0.32 %%/°C" -> -0.32
5) model_types must include only identifiers explicitly found (do not infer).
6) certifications: include exact strings as written, including versions/years if present.
7) electrical_specs.power_variants: include one object for EACH power class/column/variant in the datasheet. Each object must include all 6 fields; if a field for that variant is missing, set it to null.
8) wattage_range.min/max must be derived from the power_variants nominal_power_w values when possible; otherwise null.

Schema (types + keys must match exactly):
%s`

// BuildPrompt embeds the extracted datasheet text into the instruction template.
func BuildPrompt(datasheetText string) string {
	return fmt.Sprintf(promptTemplate, datasheetText, jsonSchema)
}
