package diag

import (
	"strings"
	"testing"

	"github.com/brackenforge/slidec/internal/source"
)

func TestWriteFormatsFileAndLine(t *testing.T) {
	files := source.NewFiles()
	id := files.Add("deck.sld", "slide a:\n  foo;\n")
	sink := NewSink(files)
	sink.ReportInvalidTopLevelStatement("foo", source.Location{File: id, Start: 11, Length: 3})

	var b strings.Builder
	if err := sink.Write(&b); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); !strings.HasPrefix(got, "[deck.sld:2] ") {
		t.Errorf("Write() = %q, want prefix [deck.sld:2] ", got)
	}
}

func TestIsEmpty(t *testing.T) {
	files := source.NewFiles()
	sink := NewSink(files)
	if !sink.IsEmpty() {
		t.Fatal("fresh sink should be empty")
	}
	sink.Report(source.Location{}, "boom")
	if sink.IsEmpty() {
		t.Fatal("sink with a diagnostic should not be empty")
	}
}
