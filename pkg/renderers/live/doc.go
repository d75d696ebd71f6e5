// Package live runs the profile screen as a full-screen terminal program
// built on bubbletea. Keyboard focus cycles through the fields and the submit
// button; every edit goes straight to the form model and the view is
// refreshed from model change notifications.
package live
