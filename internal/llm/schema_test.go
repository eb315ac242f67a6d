package llm

import (
	"encoding/json"
	"strings"
	"testing"
)

func titleSchema() *Schema {
	return Object(map[string]*Schema{
		"titles": ArrayOf(Object(map[string]*Schema{
			"title":     String("A catchy title."),
			"reasoning": String("Why it works."),
		}, "title", "reasoning"), "A list of titles."),
	}, "titles")
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "valid", doc: `{"titles":[{"title":"a","reasoning":"b"}]}`},
		{name: "empty list", doc: `{"titles":[]}`},
		{name: "missing top field", doc: `{}`, wantErr: `missing required field "titles"`},
		{name: "items not objects", doc: `{"titles":["a"]}`, wantErr: "$.titles[0]: expected object"},
		{name: "missing item field", doc: `{"titles":[{"title":"a"}]}`, wantErr: `missing required field "reasoning"`},
		{name: "wrong leaf type", doc: `{"titles":[{"title":1,"reasoning":"b"}]}`, wantErr: "$.titles[0].title: expected string, got integer"},
		{name: "array instead of object", doc: `[]`, wantErr: "$: expected object, got array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc any
			if err := json.Unmarshal([]byte(tt.doc), &doc); err != nil {
				t.Fatalf("bad fixture: %v", err)
			}
			err := titleSchema().Validate(doc)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSchemaValidateInteger(t *testing.T) {
	s := Integer("")
	if err := s.Validate(float64(4)); err != nil {
		t.Errorf("Validate(4) error = %v", err)
	}
	if err := s.Validate(4.5); err == nil {
		t.Error("Validate(4.5) should fail for INTEGER")
	}

	tests := []struct {
		num     json.Number
		wantErr bool
	}{
		{num: "12"},
		{num: "-3"},
		{num: "3.0", wantErr: true},
		{num: "1e3", wantErr: true},
		{num: "2.5", wantErr: true},
	}
	for _, tt := range tests {
		err := s.Validate(tt.num)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(json.Number(%q)) error = %v, wantErr %v", tt.num, err, tt.wantErr)
		}
	}
	if err := (&Schema{Type: TypeNumber}).Validate(json.Number("3.0")); err != nil {
		t.Errorf("NUMBER Validate(3.0) error = %v", err)
	}
}

func TestSchemaGeminiEncoding(t *testing.T) {
	data, err := json.Marshal(Integer("The total number of words."))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"type":"INTEGER","description":"The total number of words."}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestSchemaJSONSchema(t *testing.T) {
	js := titleSchema().JSONSchema()
	if js["type"] != "object" {
		t.Errorf("type = %v, want object", js["type"])
	}
	titles := js["properties"].(map[string]any)["titles"].(map[string]any)
	if titles["type"] != "array" {
		t.Errorf("titles.type = %v, want array", titles["type"])
	}
	item := titles["items"].(map[string]any)
	if item["type"] != "object" {
		t.Errorf("items.type = %v, want object", item["type"])
	}
}
