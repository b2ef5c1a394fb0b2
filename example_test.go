package pdftree_test

import (
	"fmt"

	"github.com/lvillar/pdftree"
	"github.com/lvillar/pdftree/block"
	"github.com/lvillar/pdftree/inspect"
	"github.com/lvillar/pdftree/tree"
)

func ExampleGenerate() {
	t := tree.New().
		SetTitle("Invoice").
		AddElement(block.NewText(block.TextOptions{
			Text:   "Total: 42.00 EUR",
			Layout: block.Layout{X: 0, Y: 0, Width: 200, Height: 20},
		}))

	data, err := pdftree.Generate(t)
	if err != nil {
		fmt.Println(err)
		return
	}
	doc, err := inspect.Parse(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	page, _ := doc.Page(1)
	runs, _ := page.TextRuns()
	fmt.Println(doc.Metadata()["Title"])
	fmt.Printf("%s at (%.0f, %.2f)\n", runs[0].Text, runs[0].X, runs[0].Y)
	// Output:
	// Invoice
	// Total: 42.00 EUR at (36, 793.89)
}

func ExampleGenerateFromJSON() {
	_, err := pdftree.GenerateFromJSON([]byte(`{"elements": [{"type": "video"}]}`))
	fmt.Println(err)
	// Output:
	// pdftree.GenerateFromJSON: pdftree: cannot decode tree: tree: element 0: block: unsupported block type: "video"
}
