package descriptor

import (
	"context"
	_ "embed"
	"sync"
)

// DefaultOperationID names the bundled submit operation.
const DefaultOperationID = "submitProfile"

//go:embed openapi/profile.yaml
var embeddedDocument []byte

var (
	defaultOnce       sync.Once
	defaultDescriptor *Descriptor
	defaultErr        error
)

// EmbeddedDocument returns a copy of the bundled OpenAPI document.
func EmbeddedDocument() []byte {
	return append([]byte(nil), embeddedDocument...)
}

// Default parses the bundled document once and shares the descriptor.
func Default(ctx context.Context) (*Descriptor, error) {
	defaultOnce.Do(func() {
		if ctx == nil {
			ctx = context.Background()
		}
		defaultDescriptor, defaultErr = Load(ctx, embeddedDocument, DefaultOperationID)
	})
	return defaultDescriptor, defaultErr
}

// MustDefault panics when the bundled document fails to load.
func MustDefault() *Descriptor {
	d, err := Default(context.Background())
	if err != nil {
		panic(err)
	}
	return d
}
