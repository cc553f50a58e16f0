package roster

import (
	"reflect"
	"testing"
)

func TestParseTechniques(t *testing.T) {
	tests := []struct {
		input string
		want  []Technique
	}{
		{"", []Technique{}},
		{"2D digitale, 3D", []Technique{DigitalTwoDimensional, ThreeDimensional}},
		{"3D, 2D digitale", []Technique{DigitalTwoDimensional, ThreeDimensional}},
		{"Animation 2D traditionnelle (papier, table lumineuse...)", []Technique{TraditionalTwoDimensional}},
		{"Animation banc-titre (sable), Stop-motion (marionnette, décor)", []Technique{Rostrum, StopMotion}},
		{"Libre en fonction du mood de mon groupe", []Technique{Free}},
		{"stop-motion, libre, 3d", []Technique{}},
		{
			"2D digitale;2D traditionnel;3D;banc-titre;Stop-motion;Libre",
			[]Technique{DigitalTwoDimensional, TraditionalTwoDimensional, ThreeDimensional, Rostrum, StopMotion, Free},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseTechniques(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseTechniques(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLocation(t *testing.T) {
	if loc, err := ParseLocation("Présentiel"); err != nil || loc != OnSite {
		t.Fatalf("Présentiel -> %v, %v", loc, err)
	}
	if loc, err := ParseLocation("En ligne"); err != nil || loc != Remote {
		t.Fatalf("En ligne -> %v, %v", loc, err)
	}
	for _, bad := range []string{"", "en ligne", "Presentiel", "Remote"} {
		if _, err := ParseLocation(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestEnumValuesMatchOutputContract(t *testing.T) {
	if OnSite != 0 || Remote != 1 {
		t.Fatalf("location values changed: %d %d", OnSite, Remote)
	}
	if DigitalTwoDimensional != 0 || Free != 5 {
		t.Fatalf("technique values changed: %d %d", DigitalTwoDimensional, Free)
	}
	if len(techniqueKeywords) != 6 {
		t.Fatalf("expected six keywords, got %d", len(techniqueKeywords))
	}
	for i, entry := range techniqueKeywords {
		if int(entry.technique) != i {
			t.Fatalf("keyword %q out of declaration order", entry.keyword)
		}
	}
}
