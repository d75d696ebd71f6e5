// Package widgets picks the input widget for each descriptor field when the
// document does not name one.
package widgets
