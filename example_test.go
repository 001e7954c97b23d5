package sequencer_test

import (
	"fmt"

	"github.com/ColinKennedy/sequencer"
)

func ExampleParse() {
	desc, _ := sequencer.Parse("/some/thing.1001.tif", sequencer.DialectAuto)
	fmt.Println(desc.Dialect)
	fmt.Println(desc.Template())
	// Output:
	// udim-mari
	// /some/thing.<UDIM>.tif
}

func ExampleConvert() {
	desc, _ := sequencer.Parse("/some/thing.1001.tif", sequencer.DialectUDIMMari)
	zbrush, _ := sequencer.Convert(desc, sequencer.DialectUDIMZbrush)

	paths, _ := sequencer.Expand(zbrush, []sequencer.Index{sequencer.Tile{U: 0, V: 0}})
	fmt.Println(paths[0])
	// Output:
	// /some/thing_u0_v0.tif
}

func ExampleExpandRange() {
	desc := sequencer.Descriptor{
		Prefix:  "/shot/beauty.",
		Suffix:  ".exr",
		Dialect: sequencer.DialectNukeHash,
		Padding: 4,
	}

	seq, _ := sequencer.ExpandRange(desc, sequencer.Range{Start: 1, End: 5, Step: 2})
	for path := range seq {
		fmt.Println(path)
	}
	// Output:
	// /shot/beauty.0001.exr
	// /shot/beauty.0003.exr
	// /shot/beauty.0005.exr
}

func ExampleCollapse() {
	paths := []string{"/a.0001.tif", "/a.0003.tif", "/a.0005.tif"}

	rs, _, _ := sequencer.Collapse(paths, sequencer.DialectNukeHash)
	fmt.Println(rs)

	missing := sequencer.MissingIndices(rs, sequencer.Range{Start: 1, End: 5})
	fmt.Println(sequencer.FormatIndices(missing))
	// Output:
	// /a.####.tif [1-5x2]
	// 2, 4
}
