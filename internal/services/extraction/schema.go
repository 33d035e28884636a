// schema.go validates model output against a JSON Schema, advisory only.
//
// The prompt is the real contract; this check exists so operators can see in
// the logs when a model drifts from it (wrong types, fabricated keys) without
// failing the request — the normalizer tolerates nonconforming output.
package extraction

import (
	"log"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema mirrors the prompt schema with every leaf nullable, since the
// model is instructed to emit null for anything not present in the text.
const resultSchema = `{
  "type": "object",
  "properties": {
    "product": {
      "type": ["object", "null"],
      "properties": {
        "manufacturer": {"type": ["string", "null"]},
        "series": {"type": ["string", "null"]},
        "model_types": {"type": ["array", "null"], "items": {"type": "string"}},
        "wattage_range": {
          "type": ["object", "null"],
          "properties": {
            "min": {"type": ["number", "null"]},
            "max": {"type": ["number", "null"]}
          }
        }
      }
    },
    "electrical_specs": {
      "type": ["object", "null"],
      "properties": {
        "power_variants": {
          "type": ["array", "null"],
          "items": {
            "type": "object",
            "properties": {
              "nominal_power_w": {"type": ["number", "null"]},
              "vmax_v": {"type": ["number", "null"]},
              "imax_a": {"type": ["number", "null"]},
              "voc_v": {"type": ["number", "null"]},
              "isc_a": {"type": ["number", "null"]},
              "efficiency_pct": {"type": ["number", "null"]}
            }
          }
        },
        "max_system_voltage_v": {"type": ["number", "null"]},
        "max_series_fuse_a": {"type": ["number", "null"]}
      }
    },
    "mechanical_specs": {
      "type": ["object", "null"],
      "properties": {
        "length_mm": {"type": ["number", "null"]},
        "width_mm": {"type": ["number", "null"]},
        "weight_kg": {"type": ["number", "null"]},
        "frame_material": {"type": ["string", "null"]},
        "cell_type": {"type": ["string", "null"]}
      }
    },
    "temperature_specs": {
      "type": ["object", "null"],
      "properties": {
        "operating_range_c": {
          "type": ["object", "null"],
          "properties": {
            "min": {"type": ["number", "null"]},
            "max": {"type": ["number", "null"]}
          }
        },
        "temp_coefficient_pmax_pct_per_c": {"type": ["number", "null"]},
        "noct_c": {"type": ["number", "null"]}
      }
    },
    "warranty": {
      "type": ["object", "null"],
      "properties": {
        "years": {"type": ["number", "null"]},
        "degradation_rate_pct": {"type": ["number", "null"]}
      }
    },
    "certifications": {"type": ["array", "null"], "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

var compiledSchema = jsonschema.MustCompileString("extraction-result.json", resultSchema)

// warnSchemaViolations logs a warning when the parsed completion does not
// match the expected shape. Never returns an error.
func warnSchemaViolations(result map[string]any) {
	if err := compiledSchema.Validate(result); err != nil {
		log.Printf("⚠️  Model output deviates from schema (continuing anyway): %v", err)
	}
}
