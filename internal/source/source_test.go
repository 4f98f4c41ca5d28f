package source

import "testing"

func TestLineNumber(t *testing.T) {
	fs := NewFiles()
	id := fs.Add("a.sld", "slide a:\n  let x = 1;\n  let y = 2;\n")

	cases := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{8, 1},
		{9, 2},
		{22, 3},
		{23, 3},
	}
	for _, c := range cases {
		if got := fs.LineNumber(id, c.offset); got != c.want {
			t.Errorf("LineNumber(%d) = %d, want %d", c.offset, got, c.want)
		}
	}
}

func TestCombine(t *testing.T) {
	id := FileId(0)
	a := Location{File: id, Start: 3, Length: 2}
	b := Location{File: id, Start: 10, Length: 4}
	got := Combine(a, b)
	want := Location{File: id, Start: 3, Length: 11}
	if got != want {
		t.Errorf("Combine = %+v, want %+v", got, want)
	}
}

func TestSlice(t *testing.T) {
	fs := NewFiles()
	id := fs.Add("a.sld", "hello world")
	got := fs.Slice(Location{File: id, Start: 6, Length: 5})
	if got != "world" {
		t.Errorf("Slice = %q, want %q", got, "world")
	}
}
