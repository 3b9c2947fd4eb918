// Package xmltree loads XML reports with etree and writes them back indented.
//
// Element and attribute names are kept exactly as written in the source document
// (including namespace prefixes), along with the DOCTYPE, comments and processing
// instructions, so a report goes through a load/save cycle without namespace rewriting.
package xmltree
