// Package render defines the Renderer contract shared by the HTML, prompt and
// live terminal front ends, plus the pieces they have in common: the
// registry, themes, hidden fields and validation error mapping.
package render
