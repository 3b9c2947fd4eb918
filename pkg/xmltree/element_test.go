package xmltree_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/radiofrance/xmlreport/pkg/xmltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterChildren(t *testing.T) {
	t.Parallel()

	doc, err := xmltree.Parse([]byte(`<classes><class n="1"/><other/><!-- c --><class n="2"/><class n="3"/></classes>`))
	require.NoError(t, err)

	root := doc.Root()
	var seen []string
	removed := xmltree.FilterChildren(root, func(child *etree.Element) bool {
		n := child.SelectAttrValue("n", "")
		seen = append(seen, child.Tag+n)
		// Siblings are still attached while keep runs.
		assert.Len(t, root.ChildElements(), 4)
		return n != "2" && n != "3"
	})

	assert.Equal(t, []string{"class1", "other", "class2", "class3"}, seen)
	require.Len(t, removed, 2)
	assert.Nil(t, removed[0].Parent())
	assert.Nil(t, removed[1].Parent())

	children := root.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, "other", children[1].Tag)
	assert.Len(t, root.SelectElements("class"), 1)

	output, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<classes>
  <class n="1"/>
  <other/>
  <!-- c -->
</classes>
`, string(output))
}

func TestWalk(t *testing.T) {
	t.Parallel()

	doc, err := xmltree.Parse([]byte(`<a><b><c/></b><d/></a>`))
	require.NoError(t, err)

	var names []string
	xmltree.Walk(doc.Root(), func(element *etree.Element) {
		names = append(names, element.Tag)
	})

	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
}
