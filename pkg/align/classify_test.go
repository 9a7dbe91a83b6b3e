package align

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want ValueKind
	}{
		{"1", KindNumeric},
		{"100", KindNumeric},
		{"-42", KindNumeric},
		{"+7", KindNumeric},
		{"3.14", KindNumeric},
		{".5", KindNumeric},
		{"1.", KindNumeric},
		{"NULL", KindNull},
		{"null", KindNull},
		{"Null", KindNull},
		{"'api'", KindString},
		{"''", KindString},
		{"'it''s'", KindString},
		{"'2022-05-20 10:00:00'", KindString},
		{"NOW()", KindOther},
		{"CURRENT_TIMESTAMP", KindOther},
		{"1e10", KindOther},
		{"0x1F", KindOther},
		{"1.2.3", KindOther},
		{"TRUE", KindOther},
		{"'unclosed", KindOther},
		{"", KindOther},
		{"-", KindOther},
		{"DEFAULT", KindOther},
	}

	for _, tt := range tests {
		if got := Classify(tt.raw); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestValueKindString(t *testing.T) {
	if KindNumeric.String() != "NUMERIC" {
		t.Errorf("KindNumeric.String() = %q", KindNumeric.String())
	}
	if KindNull.String() != "NULL" {
		t.Errorf("KindNull.String() = %q", KindNull.String())
	}
}
