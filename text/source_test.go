package text

import (
	"testing"

	"github.com/go-text/typesetting/language"
)

var _ Measurer = (*Source)(nil)

func TestNewSource_BadData(t *testing.T) {
	if _, err := NewSource(nil); err == nil {
		t.Error("empty data should fail")
	}
	if _, err := NewSource([]byte("definitely not a font")); err == nil {
		t.Error("garbage data should fail")
	}
}

func TestNewSourceFromFile_Missing(t *testing.T) {
	if _, err := NewSourceFromFile("testdata/no-such-font.ttf"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestDetectScript(t *testing.T) {
	tests := []struct {
		text string
		want language.Script
	}{
		{"hello", language.LookupScript('h')},
		{"  leading spaces", language.LookupScript('l')},
		{"\tпривет", language.LookupScript('п')},
		{"   ", language.Latin},
		{"", language.Latin},
	}
	for _, tt := range tests {
		if got := detectScript([]rune(tt.text)); got != tt.want {
			t.Errorf("detectScript(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFixedConversions(t *testing.T) {
	if got := fixedToFloat(floatToFixed(16)); got != 16 {
		t.Errorf("roundtrip 16 = %v", got)
	}
	if got := fixedToFloat(floatToFixed(12.5)); got != 12.5 {
		t.Errorf("roundtrip 12.5 = %v", got)
	}
	if floatToFixed(1) != 64 {
		t.Errorf("floatToFixed(1) = %d, want 64", floatToFixed(1))
	}
}
