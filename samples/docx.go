package samples

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
)

// A .docx file is a zip archive of XML parts.  WriteMinimalDoc emits the three parts Word requires to
// open a document: the content-type map, the package relationships, and the document body itself.
// Styling is left to the consuming application's defaults.

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentXMLFormat = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>%s</w:t></w:r></w:p>
<w:p><w:r><w:t>%s</w:t></w:r></w:p>
</w:body>
</w:document>`

// WriteMinimalDoc writes a minimal Word document with a title heading and a single body paragraph.
func WriteMinimalDoc(path, heading, body string) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", fmt.Sprintf(documentXMLFormat, escapeXML(heading), escapeXML(body))},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create document part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("write document part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize document: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer, which bytes.Buffer is not
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
