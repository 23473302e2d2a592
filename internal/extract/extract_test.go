package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// buildDocx assembles the minimal OOXML package the docx reader accepts, with
// one <w:t> run per paragraph.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		if err := xmlEscape(&body, p); err != nil {
			t.Fatal(err)
		}
		body.WriteString(`</w:t></w:r></w:p>`)
	}

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
			`<w:body>` + body.String() + `</w:body></w:document>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func xmlEscape(b *strings.Builder, s string) error {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	_, err := r.WriteString(b, s)
	return err
}

func TestTextDocx(t *testing.T) {
	data := buildDocx(t, "Jane Doe", "Senior Gopher with 10 years of experience.")

	text, err := Text(data, "docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") {
		t.Fatalf("extracted text missing name: %q", text)
	}
	if !strings.Contains(text, "Senior Gopher") {
		t.Fatalf("extracted text missing body: %q", text)
	}
	// Paragraph boundaries become newlines.
	if !strings.Contains(text, "Jane Doe\n") {
		t.Fatalf("expected newline after first paragraph, got %q", text)
	}
}

func TestTextDocxExtensionCaseInsensitive(t *testing.T) {
	data := buildDocx(t, "content")
	if _, err := Text(data, "DOCX"); err != nil {
		t.Fatalf("uppercase extension rejected: %v", err)
	}
	if _, err := Text(data, " docx "); err != nil {
		t.Fatalf("padded extension rejected: %v", err)
	}
}

func TestTextUnsupportedType(t *testing.T) {
	_, err := Text([]byte("plain"), "txt")
	var unsupported *UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if unsupported.Ext != "txt" {
		t.Fatalf("expected ext %q, got %q", "txt", unsupported.Ext)
	}
}

func TestTextEmptyDocx(t *testing.T) {
	data := buildDocx(t, "   ")
	if _, err := Text(data, "docx"); !errors.Is(err, ErrEmptyExtraction) {
		t.Fatalf("expected ErrEmptyExtraction, got %v", err)
	}
}

// buildPDF assembles a one-page PDF with a single text object, computing the
// xref offsets as it goes.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	content := "BT /F1 12 Tf 72 720 Td (" + text + ") Tj ET"
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for i, obj := range objects {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefPos)
	return buf.Bytes()
}

func TestTextPDF(t *testing.T) {
	data := buildPDF(t, "Jane Doe, Senior Gopher")

	text, err := Text(data, "pdf")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") {
		t.Fatalf("extracted text missing name: %q", text)
	}
}

func TestTextPDFExtensionCaseInsensitive(t *testing.T) {
	data := buildPDF(t, "content")
	if _, err := Text(data, "PDF"); err != nil {
		t.Fatalf("uppercase extension rejected: %v", err)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	if _, err := Text([]byte("not a pdf"), "pdf"); err == nil {
		t.Fatal("expected error for corrupt pdf data")
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body>` +
		`<w:p><w:r><w:t>line one</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>before</w:t><w:br/><w:t>after</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := stripDocxXML(raw)
	want := "line one\nbefore\nafter"
	if got != want {
		t.Fatalf("stripDocxXML = %q, want %q", got, want)
	}
}
