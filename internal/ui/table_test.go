package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTableRender(t *testing.T) {
	table := NewTable("File", "Format", "Size")
	table.AddRow("photo.jpg", ".jpg", "1.2 MB")
	table.AddRow("scan.tiff", ".tiff", "8.0 MB")

	out := table.String()

	for _, want := range []string{"File", "Format", "photo.jpg", "scan.tiff", "8.0 MB"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// Rows render in insertion order
	if strings.Index(out, "photo.jpg") > strings.Index(out, "scan.tiff") {
		t.Error("rows should keep insertion order")
	}
}

func TestTableShortRow(t *testing.T) {
	table := NewTable("A", "B")
	table.AddRow("only-one")

	var buf bytes.Buffer
	table.Render(&buf) // must not panic on a short row

	if !strings.Contains(buf.String(), "only-one") {
		t.Error("short row should still render")
	}
}

func TestSummaryBox(t *testing.T) {
	sb := NewSummaryBox()
	sb.SetCounts(10, 2)
	sb.SetDuration(65 * time.Second)
	sb.SetOutputDir("/work/output")

	var buf bytes.Buffer
	sb.Render(&buf)
	out := buf.String()

	for _, want := range []string{"Processed: 10", "Failed:    2", "/work/output"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryBox_NoFailures(t *testing.T) {
	sb := NewSummaryBox()
	sb.SetCounts(3, 0)

	var buf bytes.Buffer
	sb.Render(&buf)

	if strings.Contains(buf.String(), "Failed") {
		t.Error("summary should omit the failed line when nothing failed")
	}
}
