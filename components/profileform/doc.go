// Package profileform serves the profile screen over net/http.
//
// GET and HEAD render the screen in the negotiated locale. POST accepts the
// urlencoded form posted by the page, restores the state carried in the
// hidden snapshot field, validates the payload against the descriptor schema,
// applies it and submits. The response is always the re-rendered page; the
// status code reports how the submission went.
package profileform
