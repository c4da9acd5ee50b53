package export

import (
	"bufio"
	"os"
)

// TextFileExporter is a TextExporter that owns its file sink. The file is
// created (truncating any existing file) at construction and must be released
// with Close, which flushes buffered output before closing.
type TextFileExporter struct {
	*TextExporter
	f   *os.File
	buf *bufio.Writer
}

func NewTextFileExporter(path string, opts Options) (*TextFileExporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	return &TextFileExporter{
		TextExporter: NewTextExporter(buf, opts),
		f:            f,
		buf:          buf,
	}, nil
}

func (e *TextFileExporter) Close() error {
	err := e.buf.Flush()
	if cerr := e.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// XMLFileExporter is an XMLExporter that owns its file sink. Close completes
// the XML document, flushes, and closes the file.
type XMLFileExporter struct {
	*XMLExporter
	f   *os.File
	buf *bufio.Writer
}

func NewXMLFileExporter(path string, opts Options) (*XMLFileExporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	x, err := NewXMLExporter(buf, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &XMLFileExporter{XMLExporter: x, f: f, buf: buf}, nil
}

func (e *XMLFileExporter) Close() error {
	err := e.XMLExporter.Close()
	if ferr := e.buf.Flush(); err == nil {
		err = ferr
	}
	if cerr := e.f.Close(); err == nil {
		err = cerr
	}
	return err
}
