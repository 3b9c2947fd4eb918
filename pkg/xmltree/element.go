package xmltree

import "github.com/beevik/etree"

// FilterChildren removes the child elements of parent for which keep returns false, and
// returns them. Every child is checked before the first one is removed, so keep may
// safely inspect siblings. Text, comments and the other child tokens are left in place.
func FilterChildren(parent *etree.Element, keep func(*etree.Element) bool) []*etree.Element {
	var removed []*etree.Element
	for _, child := range parent.ChildElements() {
		if !keep(child) {
			removed = append(removed, child)
		}
	}

	for _, child := range removed {
		parent.RemoveChild(child)
	}
	return removed
}

// Walk visits element and all of its descendants, depth first, in document order.
func Walk(element *etree.Element, visitor func(*etree.Element)) {
	visitor(element)
	for _, child := range element.ChildElements() {
		Walk(child, visitor)
	}
}
