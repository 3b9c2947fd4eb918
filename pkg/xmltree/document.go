package xmltree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

const (
	indentSpaces = 2
	declaration  = `version="1.0" encoding="UTF-8"`
)

// Document is a parsed XML file with exactly one root element.
type Document struct {
	*etree.Document
}

// ParseError is returned when the input is not a well-formed XML document, or when it
// lacks an element its consumer requires.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xml parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Err: fmt.Errorf(format, args...)}
}

// Parse reads a whole XML document. Input declared in a non UTF-8 encoding is converted
// while reading. It fails on syntax errors, mismatched tags, missing or multiple root
// elements, and text outside the root element.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, err
	}

	return &Document{Document: doc}, nil
}

func checkTopLevel(doc *etree.Document) error {
	var root *etree.Element
	for _, token := range doc.Child {
		switch tok := token.(type) {
		case *etree.Element:
			if root != nil {
				return parseErrorf("unexpected second root element <%s>", tok.FullTag())
			}
			root = tok
		case *etree.CharData:
			if !tok.IsWhitespace() {
				return parseErrorf("unexpected text outside of the root element")
			}
		}
	}

	if root == nil {
		return parseErrorf("document has no root element")
	}
	return nil
}

// Encode writes a UTF-8 XML declaration followed by the document indented with two
// spaces. Whitespace-only text is replaced by the indentation, so the document is
// modified in place.
func (d *Document) Encode(w io.Writer) error {
	d.setDeclaration()
	d.Indent(indentSpaces)

	_, err := d.WriteTo(w)
	return err
}

// Bytes returns the encoded document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// setDeclaration replaces the XML declaration of the source, since the output is always
// written as UTF-8.
func (d *Document) setDeclaration() {
	var declarations []etree.Token
	for _, token := range d.Child {
		if inst, ok := token.(*etree.ProcInst); ok && inst.Target == "xml" {
			declarations = append(declarations, inst)
		}
	}
	for _, token := range declarations {
		d.RemoveChild(token)
	}

	d.InsertChildAt(0, etree.NewProcInst("xml", declaration))
}
