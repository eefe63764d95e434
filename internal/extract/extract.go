package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Reason classifies why an extraction degraded to sentinel text. The zero
// value means the text was extracted cleanly.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonUnsupported Reason = "unsupported_format"
	ReasonReadError   Reason = "read_error"
	ReasonEmpty       Reason = "empty_content"
)

// Sentinel strings shown to the user when extraction cannot produce real
// content. Extraction never hard-fails: it degrades to one of these.
const (
	SentinelUnsupported = "Unsupported file format. Please upload .pdf, .docx, or .txt files."
	SentinelReadError   = "Error reading file. Please paste your resume text manually."
	sentinelEmptyPDF    = "Could not extract text from PDF"
	sentinelEmptyDOCX   = "Could not extract text from DOCX"
)

// Result is the outcome of one extraction. Text is always non-empty for
// non-txt formats: degraded outcomes carry user-readable sentinel text and a
// machine-readable reason so callers can log without failing the request.
type Result struct {
	Text   string
	Reason Reason
}

// Degraded reports whether the result carries sentinel text instead of
// extracted content.
func (r Result) Degraded() bool {
	return r.Reason != ReasonNone
}

// Extract pulls plain text from raw file bytes based on the declared
// extension. It is a pure function of its inputs and never returns an error:
// parser failures collapse into sentinel results.
// Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
func Extract(data []byte, ext string) Result {
	switch strings.ToLower(strings.TrimSpace(ext)) {
	case "pdf":
		return extractPDF(data)
	case "docx":
		return extractDOCX(data)
	case "txt":
		return Result{Text: string(data)}
	default:
		return Result{Text: SentinelUnsupported, Reason: ReasonUnsupported}
	}
}

func extractPDF(data []byte) (res Result) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{Text: SentinelReadError, Reason: ReasonReadError}
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return Result{Text: SentinelReadError, Reason: ReasonReadError}
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return Result{Text: SentinelReadError, Reason: ReasonReadError}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Result{Text: SentinelReadError, Reason: ReasonReadError}
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return Result{Text: sentinelEmptyPDF, Reason: ReasonEmpty}
	}
	return Result{Text: text}
}

func extractDOCX(data []byte) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{Text: SentinelReadError, Reason: ReasonReadError}
		}
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{Text: SentinelReadError, Reason: ReasonReadError}
	}
	defer doc.Close()

	text := strings.TrimSpace(stripDocxXML(doc.Editable().GetContent()))
	if text == "" {
		return Result{Text: sentinelEmptyDOCX, Reason: ReasonEmpty}
	}
	return Result{Text: text}
}

// stripDocxXML reduces the word/document.xml payload to its character data,
// inserting newlines at paragraph and line-break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String()
}
