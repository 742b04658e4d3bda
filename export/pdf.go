package export

import (
	"fmt"
	"io"
	"voice-relay/domain"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders histories and transcripts with the core PDF fonts.
// Text is transcoded to cp1252, so scripts outside Latin-1 print as placeholders.
type PDFExporter struct {
	languages domain.LanguageRegistry
}

func NewPDFExporter(languages domain.LanguageRegistry) PDFExporter {
	return PDFExporter{languages: languages}
}

func (e PDFExporter) History(w io.Writer, entries []domain.HistoryEntry) error {
	pdf, tr := newDocument("Translation history")
	for i, entry := range entries {
		heading(pdf, tr, fmt.Sprintf("%d. %s -> %s  (%s, %s)", i+1,
			e.label(entry.DetectedLanguage), e.label(entry.TargetLanguage),
			entry.Sentiment.Polarity, entry.At.Format("2006-01-02 15:04:05")))
		paragraph(pdf, tr, "Input: "+entry.Input)
		paragraph(pdf, tr, "Translated: "+entry.Translated)
		pdf.Ln(4)
	}
	return pdf.Output(w)
}

func (e PDFExporter) Transcript(w io.Writer, entries []domain.TranscriptEntry) error {
	pdf, tr := newDocument("Conversation transcript")
	for _, entry := range entries {
		heading(pdf, tr, fmt.Sprintf("%s  %s -> %s", entry.At.Format("15:04:05"),
			e.label(entry.SourceLanguage), e.label(entry.TargetLanguage)))
		paragraph(pdf, tr, fmt.Sprintf("Speaker %s said: %s", entry.Speaker, entry.Spoken))
		paragraph(pdf, tr, "Translation: "+entry.Translated)
		pdf.Ln(4)
	}
	return pdf.Output(w)
}

func (e PDFExporter) label(code domain.LanguageCode) string {
	if name := e.languages.NameOf(code); name != "" {
		return name
	}
	return string(code)
}

func newDocument(title string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(40, 14, title)
	pdf.Ln(16)
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func heading(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.MultiCell(0, 6, tr(text), "", "", false)
}

func paragraph(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(text), "", "", false)
}
