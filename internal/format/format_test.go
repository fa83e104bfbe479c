package format

import (
	"strings"
	"testing"
)

func TestTableASCII(t *testing.T) {
	tbl := NewTable(ASCII)
	tbl.Header("Name", "Score")
	tbl.Row("Group", "0.512")
	tbl.Row("Ring", "0.498")
	out := tbl.String()

	for _, want := range []string{"Name", "Score", "Group", "0.498"} {
		if !strings.Contains(out, want) {
			t.Errorf("ASCII table missing %q:\n%s", want, out)
		}
	}
}

func TestTableMarkdown(t *testing.T) {
	tbl := NewTable(Markdown)
	tbl.Header("ID", "Status")
	tbl.Row("disc_0001", "PASS")
	out := tbl.String()

	if !strings.Contains(out, "|") {
		t.Errorf("Markdown table has no pipes:\n%s", out)
	}
	if !strings.Contains(out, "disc_0001") {
		t.Errorf("Markdown table missing row:\n%s", out)
	}
}

func TestScoreAndDelta(t *testing.T) {
	if got := Score(0.5); got != "0.500" {
		t.Errorf("Score = %q", got)
	}
	if got := Delta(0); got != "0.000" {
		t.Errorf("Delta(0) = %q", got)
	}
	if got := Delta(0.25); got != "+0.250" {
		t.Errorf("Delta(0.25) = %q", got)
	}
	if got := Delta(-0.1); got != "-0.100" {
		t.Errorf("Delta(-0.1) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("a very long structure name", 10); got != "a very ..." {
		t.Errorf("Truncate = %q", got)
	}
}
