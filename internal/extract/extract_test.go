package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestExtractTxtPassesBytesThrough(t *testing.T) {
	content := "Jane Doe\nSoftware Engineer\n"
	res := Extract([]byte(content), "txt")
	if res.Degraded() {
		t.Fatalf("expected clean result, got reason %q", res.Reason)
	}
	if res.Text != content {
		t.Fatalf("expected %q, got %q", content, res.Text)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	for _, ext := range []string{"png", "exe", "", "doc"} {
		res := Extract([]byte("whatever"), ext)
		if res.Reason != ReasonUnsupported {
			t.Fatalf("ext %q: expected reason %q, got %q", ext, ReasonUnsupported, res.Reason)
		}
		if res.Text != SentinelUnsupported {
			t.Fatalf("ext %q: expected exact sentinel, got %q", ext, res.Text)
		}
	}
}

func TestExtractExtensionIsCaseInsensitive(t *testing.T) {
	res := Extract([]byte("hello"), "TXT")
	if res.Degraded() || res.Text != "hello" {
		t.Fatalf("expected clean txt result, got %+v", res)
	}
}

func TestExtractDocx(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Engineer</w:t></w:r></w:p>`)
	res := Extract(data, "docx")
	if res.Degraded() {
		t.Fatalf("expected clean result, got reason %q (text %q)", res.Reason, res.Text)
	}
	if !strings.Contains(res.Text, "Jane Doe") || !strings.Contains(res.Text, "Engineer") {
		t.Fatalf("expected document content, got %q", res.Text)
	}
}

func TestExtractDocxEmptyContent(t *testing.T) {
	data := buildDocx(t, `<w:p></w:p>`)
	res := Extract(data, "docx")
	if res.Reason != ReasonEmpty {
		t.Fatalf("expected reason %q, got %q (text %q)", ReasonEmpty, res.Reason, res.Text)
	}
	if res.Text == "" {
		t.Fatal("degraded result must carry sentinel text")
	}
}

func TestExtractCorruptDocxDegrades(t *testing.T) {
	res := Extract([]byte("not a zip archive"), "docx")
	if res.Reason != ReasonReadError {
		t.Fatalf("expected reason %q, got %q", ReasonReadError, res.Reason)
	}
	if res.Text != SentinelReadError {
		t.Fatalf("expected read-error sentinel, got %q", res.Text)
	}
}

func TestExtractCorruptPDFDegrades(t *testing.T) {
	res := Extract([]byte("%PDF-1.4 truncated garbage"), "pdf")
	if res.Reason != ReasonReadError {
		t.Fatalf("expected reason %q, got %q", ReasonReadError, res.Reason)
	}
	if res.Text != SentinelReadError {
		t.Fatalf("expected read-error sentinel, got %q", res.Text)
	}
}

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`</Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
			`<w:body>` + body + `</w:body></w:document>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
