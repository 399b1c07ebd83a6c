package yaml

import (
	"strings"
	"testing"
)

func TestJSONToYAML(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
		// partial matches
		expectedYAMLFragments []string
	}{
		{
			name: "Manifest header",
			json: `{"name": "my-bundle", "version": "0.0.1", "svc": ["postgresql"]}`,
			expectedYAMLFragments: []string{
				"name: my-bundle",
				"version:",
				"svc:",
				"- postgresql",
			},
		},
		{
			name: "Micro frontend with claims",
			json: `{"microfrontends": [{"name": "mfe1", "apiClaims": [{"name": "ms1-api", "type": "internal"}]}]}`,
			expectedYAMLFragments: []string{
				"microfrontends:",
				"- name: mfe1",
				"apiClaims:",
				"- name: ms1-api",
				"type: internal",
			},
		},
		{
			name:    "Truncated document",
			json:    `{"name": "my-bundle",`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yamlBytes, err := JSONToYAML([]byte(tt.json))
			if (err != nil) != tt.wantErr {
				t.Errorf("JSONToYAML() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			yamlStr := string(yamlBytes)
			for _, fragment := range tt.expectedYAMLFragments {
				if !strings.Contains(yamlStr, fragment) {
					t.Errorf("YAML output missing expected fragment %q in:\n%s", fragment, yamlStr)
				}
			}
		})
	}
}

func TestJSONToYAMLKeepsKeyOrder(t *testing.T) {
	yamlBytes, err := JSONToYAML([]byte(`{"version": "0.0.1", "name": "my-bundle", "microservices": []}`))
	if err != nil {
		t.Fatalf("JSONToYAML() error = %v", err)
	}

	out := string(yamlBytes)
	version := strings.Index(out, "version:")
	name := strings.Index(out, "name:")
	microservices := strings.Index(out, "microservices:")
	if version < 0 || name < 0 || microservices < 0 {
		t.Fatalf("missing keys in:\n%s", out)
	}
	if !(version < name && name < microservices) {
		t.Errorf("keys reordered:\n%s", out)
	}
}

func TestMarshalYAML(t *testing.T) {
	type component struct {
		Name  string `json:"name"`
		Stack string `json:"stack,omitempty"`
	}

	yamlBytes, err := MarshalYAML(component{Name: "mfe1"})
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	out := string(yamlBytes)
	if !strings.Contains(out, "name: mfe1") {
		t.Errorf("missing name in:\n%s", out)
	}
	if strings.Contains(out, "stack") {
		t.Errorf("omitempty field was emitted:\n%s", out)
	}
}
