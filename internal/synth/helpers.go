package synth

import (
	"mock-generator/primitive"
)

// Generated helper names.
const (
	HelperPtr    = "mockPtr"
	HelperSeeded = "mockSeeded"
	HelperURL    = primitive.HelperURL
)

// Helper is a generic function emitted once per generated file.
type Helper struct {
	Name    string
	Imports []string
	Source  string
}

var helpers = map[string]Helper{
	HelperPtr: {
		Name: HelperPtr,
		Source: `func mockPtr[T any](v T) *T {
	return &v
}`,
	},
	HelperSeeded: {
		Name: HelperSeeded,
		Source: `func mockSeeded[T any](v T) <-chan T {
	ch := make(chan T, 1)
	ch <- v

	return ch
}`,
	},
	HelperURL: {
		Name:    HelperURL,
		Imports: []string{"net/url"},
		Source: `func mockURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}

	return u
}`,
	},
}

// LookupHelper returns the definition of a generated helper.
func LookupHelper(name string) (Helper, bool) {
	h, ok := helpers[name]

	return h, ok
}
