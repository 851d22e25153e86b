package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"00000", "9.8 GiB"},
		{"1", "12 KiB"},
	}
	out := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"00000  9.8 GiB",
		"1       12 KiB",
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("row %d: got %q, want %q", i, out[i], want[i])
		}
	}
}

func TestFormatDefaultsToLeftAlignment(t *testing.T) {
	rows := [][]string{
		{"a", "bb"},
		{"ccc", "d"},
	}
	out := Format(rows, nil)
	if out[0] != "a    bb" || out[1] != "ccc  d " {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFormatEmpty(t *testing.T) {
	if out := Format(nil, nil); out != nil {
		t.Fatalf("expected nil, got %v", out)
	}
}
