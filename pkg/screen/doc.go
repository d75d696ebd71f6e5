// Package screen combines a form.Model with the field descriptor and a
// Localizer into a render-ready View. Renderers read Views and push edits
// back through Screen; they never touch the model state directly.
package screen
