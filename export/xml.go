package export

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/unitkit/unitkit/harness"
)

const (
	xmlDocumentOpen  = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<test-results>\n"
	xmlDocumentClose = "</test-results>\n"
)

// XMLExporter renders records as an XML document:
//
//	<?xml version="1.0" encoding="utf-8"?>
//	<test-results>
//		<test-case>
//			<test result="passed" duration="0.000123" name="test name"/>
//		</test-case>
//	</test-results>
//
// The prologue and the root opening tag are written at construction; each
// ExportResults call frames one <test-case> batch; Close writes the root
// closing tag. Any number of batches may be written through one exporter and
// the document stays well-formed as long as Close is called exactly once at
// the end.
type XMLExporter struct {
	w      io.Writer
	opts   Options
	closed bool
}

func NewXMLExporter(w io.Writer, opts Options) (*XMLExporter, error) {
	if _, err := io.WriteString(w, xmlDocumentOpen); err != nil {
		return nil, err
	}
	return &XMLExporter{w: w, opts: opts}, nil
}

func (e *XMLExporter) ExportResults(records []harness.Record) error {
	if e.closed {
		return errors.New("export: XML document is already closed")
	}
	if _, err := io.WriteString(e.w, "\t<test-case>\n"); err != nil {
		return err
	}
	for _, rec := range records {
		if err := e.exportResult(rec); err != nil {
			return err
		}
	}
	_, err := io.WriteString(e.w, "\t</test-case>\n")
	return err
}

func (e *XMLExporter) exportResult(rec harness.Record) error {
	result := "failed"
	if rec.Passed {
		result = "passed"
	}

	if _, err := fmt.Fprintf(e.w, "\t\t<test result=\"%s\"", result); err != nil {
		return err
	}
	if e.opts.Durations {
		if _, err := fmt.Fprintf(e.w, " duration=\"%s\"", formatSeconds(rec.Duration)); err != nil {
			return err
		}
	}

	name, err := escapeAttr(rec.Name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.w, " name=\"%s\"/>\n", name)
	return err
}

// Close writes the root closing tag. It does not close the underlying writer.
// Additional Close calls do nothing.
func (e *XMLExporter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	_, err := io.WriteString(e.w, xmlDocumentClose)
	return err
}

// escapeAttr escapes characters that are meaningful to XML so arbitrary test
// names cannot break the document.
func escapeAttr(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
