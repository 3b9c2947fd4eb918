// Package coverage rewrites the class filenames of a Cobertura style coverage report.
//
// Coverage tools record class filenames relative to one of the report's <sources>
// directories. CI dashboards need the real path of the file, so every class filename is
// replaced by the first "<source>/<filename>" path that exists on disk, trying sources in
// document order. Classes that exist under no source are removed from the report.
//
// The rewrite is not idempotent: once filenames are absolute, joining them again with a
// source directory gives a path that does not exist, so running the resolver twice on the
// same file removes every class.
package coverage
