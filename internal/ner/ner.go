package ner

import "context"

// LabelPerson marks a span the recognizer considers a human name.
const LabelPerson = "PERSON"

// Entity is a labeled span of text found by a recognizer.
type Entity struct {
	Text  string
	Label string
}

// Recognizer finds named entities in a text span. Implementations must be safe
// for concurrent use.
type Recognizer interface {
	Recognize(ctx context.Context, span string) ([]Entity, error)
}
