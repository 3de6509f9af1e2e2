package prompt

import (
	"strings"
	"testing"
)

func TestBuildRequest_ContainsTargetName(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{TargetRussian, "Russian"},
		{TargetEnglish, "English"},
	}

	for _, tt := range tests {
		req := BuildRequest("Salom", tt.target, ToneNatural)
		if !strings.Contains(req.SystemInstruction, tt.want) {
			t.Errorf("System instruction for %v missing %q: %s", tt.target, tt.want, req.SystemInstruction)
		}
	}
}

func TestBuildRequest_ToneDirectiveNotRawToken(t *testing.T) {
	tones := []Tone{ToneNatural, ToneFormal, ToneSlang}

	for _, tone := range tones {
		req := BuildRequest("Salom dunyo", TargetRussian, tone)

		if !strings.Contains(req.SystemInstruction, tone.Directive()) {
			t.Errorf("Instruction for tone %v missing directive %q", tone, tone.Directive())
		}

		// The enum token itself must never leak into the prompt
		for _, raw := range []string{"NATURAL", "FORMAL", "SLANG", "ToneNatural", "ToneFormal", "ToneSlang"} {
			if strings.Contains(req.SystemInstruction, raw) {
				t.Errorf("Instruction for tone %v contains raw token %q", tone, raw)
			}
		}
	}
}

func TestBuildRequest_OutputConstraint(t *testing.T) {
	req := BuildRequest("Salom", TargetEnglish, ToneFormal)

	if !strings.Contains(req.SystemInstruction, "ONLY the translated text") {
		t.Error("Instruction missing output-format constraint")
	}
}

func TestBuildRequest_Fields(t *testing.T) {
	req := BuildRequest("Qalaysan?", TargetEnglish, ToneSlang)

	if req.SourceText != "Qalaysan?" {
		t.Errorf("SourceText = %q, want 'Qalaysan?'", req.SourceText)
	}
	if req.Target != TargetEnglish {
		t.Errorf("Target = %v, want TargetEnglish", req.Target)
	}
	if req.Tone != ToneSlang {
		t.Errorf("Tone = %v, want ToneSlang", req.Tone)
	}
	if req.Temperature != Temperature {
		t.Errorf("Temperature = %v, want %v", req.Temperature, Temperature)
	}
}

func TestBuildRequest_Pure(t *testing.T) {
	a := BuildRequest("Rahmat", TargetRussian, ToneFormal)
	b := BuildRequest("Rahmat", TargetRussian, ToneFormal)

	if a != b {
		t.Error("BuildRequest is not deterministic for identical inputs")
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input   string
		want    Target
		wantErr bool
	}{
		{"ru", TargetRussian, false},
		{"Russian", TargetRussian, false},
		{"en", TargetEnglish, false},
		{"ENGLISH", TargetEnglish, false},
		{" en ", TargetEnglish, false},
		{"de", TargetRussian, true},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTarget(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTarget(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		input   string
		want    Tone
		wantErr bool
	}{
		{"natural", ToneNatural, false},
		{"", ToneNatural, false},
		{"Formal", ToneFormal, false},
		{"slang", ToneSlang, false},
		{"angry", ToneNatural, true},
	}

	for _, tt := range tests {
		got, err := ParseTone(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTone(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTargetCode(t *testing.T) {
	if TargetRussian.Code() != "RU" {
		t.Errorf("TargetRussian.Code() = %q, want RU", TargetRussian.Code())
	}
	if TargetEnglish.Code() != "EN" {
		t.Errorf("TargetEnglish.Code() = %q, want EN", TargetEnglish.Code())
	}
}
