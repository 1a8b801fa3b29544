package page

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont     = "Times New Roman"
	docxFontSize = 13
	docxHeadSize = 16
)

// WriteDigest writes a docx version of the highlight cards, one heading and
// summary per card, for people who want the highlights off the web page.
func WriteDigest(title string, cards []Card, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, docxHeadSize)
	doc.AddParagraph("")

	for _, card := range cards {
		heading := fmt.Sprintf("%d. %s", card.Index, card.Timestamp)
		if card.Keyword != "" && card.Keyword != "general" {
			heading += " - " + card.Keyword
		}
		addStyledRun(doc.AddParagraph(""), heading, true, docxFontSize+1)
		addStyledRun(doc.AddParagraph(""), card.Summary, false, docxFontSize)
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
