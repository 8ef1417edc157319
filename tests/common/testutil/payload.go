//go:build unit || e2e

// Package testutil builds loosely typed request bodies so tests can send
// payloads that the typed DTOs cannot express.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a JSON object before it is sent.
type Mutation func(m map[string]any)

// Payload converts v to its JSON object form and applies muts in order.
func Payload(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mut := range muts {
		if mut != nil {
			mut(m)
		}
	}
	return m
}

// Set overwrites key with value, which may be of a type the DTO would reject.
func Set(key string, value any) Mutation {
	return func(m map[string]any) {
		m[key] = value
	}
}

// Omit removes keys entirely.
func Omit(keys ...string) Mutation {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
