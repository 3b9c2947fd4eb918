// Package junit rewrites JUnit XML test reports before they are published by CI.
//
// Test case class names are shortened to their simple name, and screenshots taken by UI
// tests are referenced from the <system-out> of the test case they belong to, using the
// "[[ATTACHMENT|path]]" convention understood by CI servers. A screenshot belongs to a
// test case when its file name contains the test case name.
package junit
