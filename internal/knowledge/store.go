// Package knowledge holds the fixed marketing corpus used to ground
// answers. The Store is built once at startup and is read-only afterwards,
// so it is safe for concurrent use without locking.
package knowledge

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var embeddedCorpus []byte

// DocumentCount is the size of the embedded corpus.
const DocumentCount = 8

type Document struct {
	Content string `yaml:"content"`
	Source  string `yaml:"source"`
}

// Category associates documents and questions through trigger substrings.
type Category struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
}

type corpus struct {
	Documents  []Document `yaml:"documents"`
	Categories []Category `yaml:"categories"`
}

type Store struct {
	docs       []Document
	lowered    []string
	categories []Category
}

// Load parses the embedded corpus.
func Load() (*Store, error) {
	return Parse(embeddedCorpus)
}

func Parse(data []byte) (*Store, error) {
	var c corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse knowledge corpus: %w", err)
	}
	if len(c.Documents) == 0 {
		return nil, fmt.Errorf("knowledge corpus has no documents")
	}
	for i, d := range c.Documents {
		if strings.TrimSpace(d.Content) == "" || strings.TrimSpace(d.Source) == "" {
			return nil, fmt.Errorf("knowledge document %d: content and source are required", i)
		}
	}
	for _, cat := range c.Categories {
		if len(cat.Triggers) == 0 {
			return nil, fmt.Errorf("knowledge category %q has no triggers", cat.Name)
		}
	}

	s := &Store{
		docs:       c.Documents,
		lowered:    make([]string, len(c.Documents)),
		categories: c.Categories,
	}
	for i, d := range c.Documents {
		s.lowered[i] = strings.ToLower(d.Content)
	}
	return s, nil
}

// Documents returns a copy of the corpus in store order.
func (s *Store) Documents() []Document {
	out := make([]Document, len(s.docs))
	copy(out, s.docs)
	return out
}

func (s *Store) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Match returns up to limit documents relevant to question, in store
// order. A document is relevant when some category has a trigger in the
// question and a trigger in the document. limit <= 0 means no cap.
func (s *Store) Match(question string, limit int) []Document {
	q := strings.ToLower(question)

	var active []Category
	for _, cat := range s.categories {
		if containsAny(q, cat.Triggers) {
			active = append(active, cat)
		}
	}
	if len(active) == 0 {
		return nil
	}

	var out []Document
	for i, doc := range s.docs {
		for _, cat := range active {
			if containsAny(s.lowered[i], cat.Triggers) {
				out = append(out, doc)
				break
			}
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func containsAny(text string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
