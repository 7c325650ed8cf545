package parser

import "strings"

// Result maps section keys to their section versions. Keys keep the order in
// which they first appeared; versions keep file order.
type Result struct {
	keys     []string
	sections map[string][]*Section
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{sections: make(map[string][]*Section)}
}

// Add appends a section version under its key.
func (r *Result) Add(s *Section) {
	if _, ok := r.sections[s.Key]; !ok {
		r.keys = append(r.keys, s.Key)
	}
	r.sections[s.Key] = append(r.sections[s.Key], s)
}

// Keys returns the section keys in first-appearance order.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Sections returns every version recorded under key, in file order.
func (r *Result) Sections(key string) []*Section {
	return r.sections[key]
}

// Len returns the number of distinct keys.
func (r *Result) Len() int {
	return len(r.keys)
}

// Header returns the versions of the implicit header section.
func (r *Result) Header() []*Section {
	return r.sections[HeaderKey]
}

// Without returns a copy of the result with key removed.
func (r *Result) Without(key string) *Result {
	out := NewResult()
	for _, k := range r.keys {
		if k == key {
			continue
		}
		for _, s := range r.sections[k] {
			out.Add(s)
		}
	}
	return out
}

// InFileOrder returns all section versions sorted by line number.
func (r *Result) InFileOrder() []*Section {
	var all []*Section
	for _, k := range r.keys {
		all = append(all, r.sections[k]...)
	}
	sortByLine(all)
	return all
}

// Text concatenates every section in file order, which reproduces the
// parsed input.
func (r *Result) Text() string {
	var b strings.Builder
	for _, s := range r.InFileOrder() {
		for _, l := range s.Lines {
			b.WriteString(l)
		}
	}
	return b.String()
}
