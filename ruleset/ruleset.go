// Package ruleset loads and saves rule sets in their interchange shape: a
// mapping from domain name to an ordered list of rule records, each holding
// a premise and conclusion in formula text. JSON and YAML encodings are
// supported.
package ruleset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/propkit/propkit/inference"
	"github.com/propkit/propkit/logic"
)

// A Record is the serialized form of one rule. Premise and Conclusion are
// formula texts; Text is the free-form description.
type Record struct {
	ID         string `json:"id" yaml:"id" validate:"required"`
	Premise    string `json:"premise" yaml:"premise" validate:"required"`
	Conclusion string `json:"conclusion" yaml:"conclusion" validate:"required"`
	Text       string `json:"text" yaml:"text"`
}

// A Document maps each domain name to its ordered rule records.
type Document map[string][]Record

var validate = validator.New()

// DecodeJSON reads a JSON rule-set document.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode rule set: %w", err)
	}
	return doc, nil
}

// DecodeYAML reads a YAML rule-set document.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode rule set: %w", err)
	}
	return doc, nil
}

// LoadFile reads a rule-set document from path, choosing the encoding by
// file extension (.json, .yaml or .yml).
func LoadFile(path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported rule set format %q", filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open rule set %q: %w", path, err)
	}
	defer f.Close()
	if ext == ".json" {
		return DecodeJSON(f)
	}
	return DecodeYAML(f)
}

// CompileRecord validates a record and parses its formulas into a Rule. A
// missing required field or unparseable formula fails the record.
func CompileRecord(rec Record) (inference.Rule, error) {
	if err := validate.Struct(rec); err != nil {
		return inference.Rule{}, fmt.Errorf("invalid rule record %q: %w", rec.ID, err)
	}
	return inference.NewRule(rec.ID, rec.Premise, rec.Conclusion, rec.Text)
}

// Domain compiles the records of the named domain. A malformed record
// fails the whole load; no partial rule lists are returned. A domain absent
// from the document yields an empty rule list.
func Domain(doc Document, domain string) ([]inference.Rule, error) {
	records := doc[domain]
	rules := make([]inference.Rule, 0, len(records))
	for i, rec := range records {
		rule, err := CompileRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("domain %q, record %d: %w", domain, i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Records converts rules back to their interchange form using the
// canonical formula printer, so a loaded domain exports to records that
// load back to the same rules.
func Records(rules []inference.Rule) []Record {
	records := make([]Record, len(rules))
	for i, r := range rules {
		records[i] = Record{
			ID:         r.ID,
			Premise:    r.Premise.String(),
			Conclusion: r.Conclusion.String(),
			Text:       r.Description,
		}
	}
	return records
}

// Export wraps the rules of one domain as a document.
func Export(domain string, rules []inference.Rule) Document {
	return Document{domain: Records(rules)}
}

// EncodeJSON writes the document as indented JSON.
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode rule set: %w", err)
	}
	return nil
}

// Atoms returns the sorted union of all premise and conclusion atoms of
// the given rules.
func Atoms(rules []inference.Rule) []string {
	set := make(map[string]struct{})
	for _, r := range rules {
		for name := range logic.AtomSet(r.Premise) {
			set[name] = struct{}{}
		}
		for name := range logic.AtomSet(r.Conclusion) {
			set[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
