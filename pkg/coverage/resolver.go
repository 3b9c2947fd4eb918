package coverage

import (
	"fmt"

	"github.com/radiofrance/xmlreport/internal/logger"
	"github.com/radiofrance/xmlreport/pkg/fsutil"
	"github.com/radiofrance/xmlreport/pkg/strutil"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Opts struct {
	Summary    bool   `mapstructure:"summary"`
	ReportFile string `mapstructure:"report_file"`
}

// Resolution records the path a class filename was rewritten to.
type Resolution struct {
	Package  string `yaml:"package,omitempty"`
	Original string `yaml:"original"`
	Path     string `yaml:"path"`
}

// Result lists what happened to every class of a report, in document order.
type Result struct {
	Resolved []Resolution `yaml:"resolved"`
	Dropped  []string     `yaml:"dropped"`
}

// Resolver rewrites relative class filenames to paths that exist under one of the
// report's source directories.
type Resolver struct {
	fs afero.Fs
}

func NewResolver(fs afero.Fs) *Resolver {
	return &Resolver{fs: fs}
}

// Lookup returns root + "/" + filename for the first source root under which that path
// exists. Later roots are not checked once a match is found.
func (r *Resolver) Lookup(sources []string, filename string) (string, bool) {
	for _, root := range sources {
		candidate := candidatePath(root, filename)
		if fsutil.Exists(r.fs, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ResolveReport rewrites the filename of every class of the report. Classes that cannot
// be found under any source root are removed from their package, and a warning is logged
// for each of them.
func (r *Resolver) ResolveReport(report *Report) Result {
	result := Result{}
	sources := strutil.DedupeStrSlice(report.Sources())
	logger.Debugf("Resolving classes against %d source directories: %v", len(sources), sources)

	for _, pkg := range report.Packages() {
		pkg.FilterClasses(func(class Class) bool {
			filename := class.Filename()

			path, found := r.Lookup(sources, filename)
			if !found {
				logger.Warnf("Could not find %s in any source directory, removing it from the report", filename)
				result.Dropped = append(result.Dropped, filename)
				return false
			}

			class.SetFilename(path)
			result.Resolved = append(result.Resolved, Resolution{
				Package:  pkg.Name(),
				Original: filename,
				Path:     path,
			})
			return true
		})
	}

	return result
}

// candidatePath joins root and filename with a single "/". The filename is not cleaned,
// so "../" segments are resolved by the filesystem.
func candidatePath(root, filename string) string {
	root = strutil.TrimTrailingSlashes(root)
	if root == "/" {
		return root + filename
	}
	return root + "/" + filename
}

// Resolve rewrites the coverage report stored at documentPath in place. The file is left
// untouched when it cannot be read or is not a valid coverage report.
func (r *Resolver) Resolve(documentPath string) (Result, error) {
	report, err := Load(r.fs, documentPath)
	if err != nil {
		return Result{}, err
	}

	result := r.ResolveReport(report)

	if err := report.Save(r.fs, documentPath); err != nil {
		return result, err
	}

	logger.Infof("Resolved %d classes in %s, dropped %d", len(result.Resolved), documentPath, len(result.Dropped))
	return result, nil
}

// WriteResultFile stores the result as YAML at path.
func WriteResultFile(fs afero.Fs, path string, result Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal resolution result: %w", err)
	}

	if err := fsutil.WriteFileAtomic(fs, path, data); err != nil {
		return fmt.Errorf("failed to write resolution result: %w", err)
	}
	return nil
}
