package coverage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/radiofrance/xmlreport/pkg/fsutil"
	"github.com/radiofrance/xmlreport/pkg/xmltree"
	"github.com/spf13/afero"
)

const (
	sourcesElement  = "sources"
	packagesElement = "packages"
	packageElement  = "package"
	classesElement  = "classes"
	classElement    = "class"
	filenameAttr    = "filename"
	nameAttr        = "name"
)

// ErrInvalidReport is wrapped by every error caused by a well-formed XML document that
// does not have the layout of a coverage report.
var ErrInvalidReport = errors.New("invalid coverage report")

// Report is a coverage document, as produced by Cobertura compatible tools.
type Report struct {
	doc      *xmltree.Document
	sources  *etree.Element
	packages *etree.Element
}

type Package struct {
	element *etree.Element
	classes *etree.Element
}

type Class struct {
	element *etree.Element
}

// Load reads and validates the coverage report stored at path.
func Load(fs afero.Fs, path string) (*Report, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage report %s: %w", path, err)
	}

	report, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse coverage report %s: %w", path, err)
	}

	return report, nil
}

// Parse decodes a coverage report and checks that the <sources> and <packages> elements
// are present, and that every package has a <classes> element whose classes all carry a
// filename attribute.
func Parse(data []byte) (*Report, error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, err
	}

	report := &Report{
		doc:      doc,
		sources:  doc.Root().SelectElement(sourcesElement),
		packages: doc.Root().SelectElement(packagesElement),
	}

	if report.sources == nil {
		return nil, invalidReportf("missing <%s> element", sourcesElement)
	}
	if report.packages == nil {
		return nil, invalidReportf("missing <%s> element", packagesElement)
	}

	for _, pkg := range report.packages.SelectElements(packageElement) {
		classes := pkg.SelectElement(classesElement)
		if classes == nil {
			name := pkg.SelectAttrValue(nameAttr, "")
			return nil, invalidReportf("package %q has no <%s> element", name, classesElement)
		}
		for _, class := range classes.SelectElements(classElement) {
			if class.SelectAttr(filenameAttr) == nil {
				name := class.SelectAttrValue(nameAttr, "")
				return nil, invalidReportf("class %q has no %s attribute", name, filenameAttr)
			}
		}
	}

	return report, nil
}

func invalidReportf(format string, args ...any) error {
	return &xmltree.ParseError{Err: fmt.Errorf("%w: %s", ErrInvalidReport, fmt.Sprintf(format, args...))}
}

// Sources returns the source directories, in document order. Entries without text are
// skipped.
func (r *Report) Sources() []string {
	var sources []string
	for _, source := range r.sources.ChildElements() {
		dir := strings.TrimSpace(source.Text())
		if dir == "" {
			continue
		}
		sources = append(sources, dir)
	}
	return sources
}

func (r *Report) Packages() []Package {
	var packages []Package
	for _, element := range r.packages.SelectElements(packageElement) {
		packages = append(packages, Package{
			element: element,
			classes: element.SelectElement(classesElement),
		})
	}
	return packages
}

// Bytes encodes the report, indented.
func (r *Report) Bytes() ([]byte, error) {
	return r.doc.Bytes()
}

// Save encodes the report and replaces the file at path with it.
func (r *Report) Save(fs afero.Fs, path string) error {
	data, err := r.Bytes()
	if err != nil {
		return fmt.Errorf("failed to encode coverage report: %w", err)
	}

	if err := fsutil.WriteFileAtomic(fs, path, data); err != nil {
		return fmt.Errorf("failed to write coverage report: %w", err)
	}
	return nil
}

func (p Package) Name() string {
	return p.element.SelectAttrValue(nameAttr, "")
}

func (p Package) Classes() []Class {
	var classes []Class
	for _, element := range p.classes.SelectElements(classElement) {
		classes = append(classes, Class{element: element})
	}
	return classes
}

// FilterClasses removes the classes for which keep returns false, and returns them.
// Elements of <classes> other than <class> are left in place.
func (p Package) FilterClasses(keep func(Class) bool) []Class {
	removed := xmltree.FilterChildren(p.classes, func(element *etree.Element) bool {
		if element.Tag != classElement {
			return true
		}
		return keep(Class{element: element})
	})

	classes := make([]Class, 0, len(removed))
	for _, element := range removed {
		classes = append(classes, Class{element: element})
	}
	return classes
}

func (c Class) Name() string {
	return c.element.SelectAttrValue(nameAttr, "")
}

func (c Class) Filename() string {
	return c.element.SelectAttrValue(filenameAttr, "")
}

func (c Class) SetFilename(filename string) {
	c.element.CreateAttr(filenameAttr, filename)
}
