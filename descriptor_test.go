package sequencer

import (
	"errors"
	"testing"
)

func TestTemplate(t *testing.T) {
	cases := []struct {
		name string
		desc Descriptor
		want string
	}{
		{"hash", Descriptor{"/a.", ".exr", DialectNukeHash, 4}, "/a.####.exr"},
		{"hash wide", Descriptor{"/a.", ".exr", DialectNukeHash, 6}, "/a.######.exr"},
		{"percent", Descriptor{"/a.", ".exr", DialectNukePercent, 4}, "/a.%04d.exr"},
		{"percent unpadded", Descriptor{"/a.", ".exr", DialectNukePercent, 0}, "/a.%d.exr"},
		{"maya", Descriptor{"/a.", ".tif", DialectMayaAngle, 0}, "/a.<f>.tif"},
		{"maya padded", Descriptor{"/a.", ".tif", DialectMayaAngle, 3}, "/a.<f3>.tif"},
		{"houdini", Descriptor{"/a.", ".exr", DialectHoudiniDollar, 0}, "/a.$F.exr"},
		{"houdini padded", Descriptor{"/a.", ".exr", DialectHoudiniDollar, 4}, "/a.$F4.exr"},
		{"glob", Descriptor{"/a.", ".dpx", DialectGlob, 0}, "/a.*.dpx"},
		{"mari", Descriptor{"/a.", ".tif", DialectUDIMMari, 4}, "/a.<UDIM>.tif"},
		{"zbrush", Descriptor{"/a", ".tif", DialectUDIMZbrush, 4}, "/a_u#_v#.tif"},
		{"mudbox", Descriptor{"/a", ".tif", DialectUDIMMudbox, 4}, "/a_u#_v#.tif"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.desc.Template(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWithPadding(t *testing.T) {
	src := Descriptor{Prefix: "/a.", Suffix: ".exr", Dialect: DialectNukeHash, Padding: 4}

	got, err := src.WithPadding(6)
	if err != nil {
		t.Fatalf("WithPadding: %v", err)
	}
	if got.Padding != 6 {
		t.Errorf("padding: got %d, want 6", got.Padding)
	}
	if src.Padding != 4 {
		t.Errorf("source mutated: padding %d", src.Padding)
	}

	cases := []struct {
		name  string
		desc  Descriptor
		width int
	}{
		{"negative width", src, -1},
		{"hash unpadded", src, 0},
		{"udim off its fixed width", Descriptor{"/a.", ".tif", DialectUDIMMari, 4}, 5},
		{"zbrush off its fixed width", Descriptor{"/a", ".tif", DialectUDIMZbrush, 4}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.desc.WithPadding(tc.width); !errors.Is(err, ErrUnsupportedPadding) {
				t.Errorf("got %v, want %v", err, ErrUnsupportedPadding)
			}
		})
	}
}

func TestDialectString(t *testing.T) {
	cases := []struct {
		dialect Dialect
		want    string
	}{
		{DialectAuto, "auto"},
		{DialectUDIMMari, "udim-mari"},
		{DialectUDIMZbrush, "udim-zbrush"},
		{DialectUDIMMudbox, "udim-mudbox"},
		{DialectMayaAngle, "maya-angle"},
		{DialectNukeHash, "nuke-hash"},
		{DialectNukePercent, "nuke-percent"},
		{DialectHoudiniDollar, "houdini-dollar"},
		{DialectGlob, "glob"},
		{Dialect(99), "dialect(99)"},
	}

	for _, tc := range cases {
		if got := tc.dialect.String(); got != tc.want {
			t.Errorf("Dialect(%d).String() = %q, want %q", int(tc.dialect), got, tc.want)
		}
	}
}

func TestDialectsOrder(t *testing.T) {
	order := Dialects()
	if len(order) != len(dialectTable) {
		t.Fatalf("Dialects() returned %d entries, table has %d", len(order), len(dialectTable))
	}

	pos := make(map[Dialect]int, len(order))
	for i, d := range order {
		if _, ok := pos[d]; ok {
			t.Fatalf("dialect %v listed twice", d)
		}
		pos[d] = i
	}

	// UDIM conventions must outrank every generic frame notation, and the
	// permissive glob must come last.
	for _, udim := range []Dialect{DialectUDIMMari, DialectUDIMZbrush, DialectUDIMMudbox} {
		for _, frame := range []Dialect{DialectMayaAngle, DialectNukeHash, DialectNukePercent, DialectHoudiniDollar} {
			if pos[udim] > pos[frame] {
				t.Errorf("%v ranked below %v", udim, frame)
			}
		}
	}
	if order[len(order)-1] != DialectGlob {
		t.Errorf("glob is not last: %v", order)
	}
}
