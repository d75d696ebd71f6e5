// Package form holds the profile form state, its derived values and the
// submission snapshot. A Model is the single source of truth for one screen:
// bindings (terminal prompts, the live terminal screen, HTML handlers) write
// through the setters and read State, Derived and Result back. Display strings
// for the submission summary are resolved through an injected Localizer so the
// model carries no locale logic of its own.
//
// A Model is not safe for concurrent use; each screen owns exactly one.
package form
