package extraction

import "testing"

func TestResultSchema_AcceptsConformingOutput(t *testing.T) {
	doc := map[string]any{
		"product": map[string]any{
			"manufacturer":  "LONGi",
			"series":        nil,
			"model_types":   []any{"LR5-72HPH-550M"},
			"wattage_range": map[string]any{"min": 540.0, "max": nil},
		},
		"electrical_specs": map[string]any{
			"power_variants": []any{
				map[string]any{
					"nominal_power_w": 550.0,
					"vmax_v":          nil,
					"imax_a":          nil,
					"voc_v":           49.8,
					"isc_a":           nil,
					"efficiency_pct":  21.5,
				},
			},
			"max_system_voltage_v": 1500.0,
			"max_series_fuse_a":    nil,
		},
		"certifications": []any{"IEC 61215:2016"},
	}

	if err := compiledSchema.Validate(doc); err != nil {
		t.Errorf("Validate() rejected conforming output: %v", err)
	}
}

func TestResultSchema_FlagsShapeDrift(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{
			name: "section with wrong type",
			doc:  map[string]any{"warranty": "25 years"},
		},
		{
			name: "numeric field as string with units",
			doc: map[string]any{
				"mechanical_specs": map[string]any{"weight_kg": "34 kg"},
			},
		},
		{
			name: "fabricated top-level key",
			doc:  map[string]any{"notes": "extra commentary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := compiledSchema.Validate(tt.doc); err == nil {
				t.Error("Validate() accepted drifting output, want violation")
			}
		})
	}
}

func TestWarnSchemaViolations_NeverPanics(t *testing.T) {
	warnSchemaViolations(map[string]any{"warranty": "not an object"})
	warnSchemaViolations(map[string]any{})
	warnSchemaViolations(nil)
}
