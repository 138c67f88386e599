// Package faq answers product questions from a static question/answer file.
package faq

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry is one question/answer pair.
type Entry struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type file struct {
	FAQ []Entry `json:"faq"`
}

// FAQ matches user questions against the loaded entries.
type FAQ struct {
	entries  []Entry
	fallback string
}

// Load reads a {"faq": [{q, a}]} JSON file. A missing file yields an empty
// FAQ that always answers with fallback.
func Load(path, fallback string) (*FAQ, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &FAQ{fallback: fallback}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("faq: read %q: %w", path, err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("faq: parse %q: %w", path, err)
	}
	return &FAQ{entries: f.FAQ, fallback: fallback}, nil
}

// New builds an FAQ over in-memory entries.
func New(entries []Entry, fallback string) *FAQ {
	return &FAQ{entries: entries, fallback: fallback}
}

// Answer returns the answer of the first entry any of whose question words
// occurs in the user's question, or the fallback pitch. Crude keyword
// matching, same precision gap as the catalog resolver: first match wins.
// Words shorter than three characters are skipped — "I" and "is" match
// nearly every utterance.
func (f *FAQ) Answer(question string) string {
	q := strings.ToLower(question)
	for _, entry := range f.entries {
		for _, word := range strings.Fields(strings.ToLower(entry.Q)) {
			if len(word) < 3 {
				continue
			}
			if strings.Contains(q, word) {
				return entry.A
			}
		}
	}
	return f.fallback
}
