// Package printer renders a value.Value back to the S-expression text
// the reader would produce it from (§4.3). It is the mirror image of
// pkg/reader and, like it, knows nothing about evaluation.
package printer
