package junit

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/radiofrance/xmlreport/internal/logger"
	"github.com/radiofrance/xmlreport/pkg/fsutil"
	"github.com/radiofrance/xmlreport/pkg/xmltree"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const (
	testCaseElement  = "testcase"
	systemOutElement = "system-out"
	classNameAttr    = "classname"
	nameAttr         = "name"
)

type Opts struct {
	ScreenshotsDir     string   `mapstructure:"screenshots_dir"`
	ScreenshotPatterns []string `mapstructure:"screenshot_pattern"`
	Jobs               int      `mapstructure:"jobs"`
	Summary            bool     `mapstructure:"summary"`
}

// Stats describes the changes made to one report.
type Stats struct {
	File        string
	TestCases   int
	Renamed     int
	Attachments int
	Summary     Summary
}

// Rewriter shortens test case class names and attaches screenshots to test cases.
type Rewriter struct {
	fs          afero.Fs
	screenshots *Screenshots
}

func NewRewriter(fs afero.Fs, screenshots *Screenshots) *Rewriter {
	return &Rewriter{fs: fs, screenshots: screenshots}
}

// ShortClassName keeps the part of a fully qualified class name after its last dot.
func ShortClassName(className string) string {
	return className[strings.LastIndex(className, ".")+1:]
}

// AttachmentLine formats a screenshot reference the way CI servers expect it in
// <system-out>.
func AttachmentLine(path string) string {
	return "[[ATTACHMENT|" + path + "]]"
}

// RewriteDocument updates every <testcase> of the document, at any depth.
func (r *Rewriter) RewriteDocument(doc *xmltree.Document) Stats {
	stats := Stats{}

	xmltree.Walk(doc.Root(), func(element *etree.Element) {
		if element.Tag != testCaseElement {
			return
		}
		stats.TestCases++

		if className := element.SelectAttr(classNameAttr); className != nil {
			short := ShortClassName(className.Value)
			if short != className.Value {
				className.Value = short
				stats.Renamed++
			}
		}

		name := element.SelectAttrValue(nameAttr, "")
		stats.Attachments += attach(element, r.screenshots.Matching(name))
	})

	return stats
}

// attach appends an attachment line per path to the test case output, skipping paths
// that are already attached. It returns the number of lines added.
func attach(testCase *etree.Element, paths []string) int {
	if len(paths) == 0 {
		return 0
	}

	systemOut := testCase.SelectElement(systemOutElement)
	if systemOut == nil {
		systemOut = testCase.CreateElement(systemOutElement)
	}

	text := systemOut.Text()
	added := 0
	for _, path := range paths {
		line := AttachmentLine(path)
		if strings.Contains(text, line) {
			continue
		}
		if text != "" && !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		text += line + "\n"
		added++
	}

	if added > 0 {
		systemOut.SetText(text)
	}
	return added
}

// Rewrite updates the JUnit report stored at path in place.
func (r *Rewriter) Rewrite(path string) (Stats, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read JUnit report %s: %w", path, err)
	}

	doc, err := xmltree.Parse(data)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to parse JUnit report %s: %w", path, err)
	}

	stats := r.RewriteDocument(doc)
	stats.File = path

	output, err := doc.Bytes()
	if err != nil {
		return stats, fmt.Errorf("failed to encode JUnit report %s: %w", path, err)
	}

	stats.Summary, err = Summarize(output)
	if err != nil {
		return stats, fmt.Errorf("failed to summarize JUnit report %s: %w", path, err)
	}

	if err := fsutil.WriteFileAtomic(r.fs, path, output); err != nil {
		return stats, fmt.Errorf("failed to write JUnit report: %w", err)
	}

	logger.Infof("Rewrote %s: %d test cases, %d class names shortened, %d screenshots attached",
		path, stats.TestCases, stats.Renamed, stats.Attachments)
	return stats, nil
}

// RewriteAll rewrites every report, with at most jobs reports processed at the same time.
// Stats are returned in the order of paths. The first error cancels the reports that were
// not started yet.
func (r *Rewriter) RewriteAll(ctx context.Context, paths []string, jobs int) ([]Stats, error) {
	if jobs < 1 {
		jobs = 1
	}

	results := make([]Stats, len(paths))

	errG, ctx := errgroup.WithContext(ctx)
	errG.SetLimit(jobs)
	for i, path := range paths {
		errG.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			stats, err := r.Rewrite(path)
			if err != nil {
				return err
			}

			results[i] = stats
			return nil
		})
	}

	if err := errG.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
