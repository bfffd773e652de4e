package metadata

import (
	"fmt"

	"github.com/openrent/sui-rental-gateway/internal/domain"
)

// Source identifies one display-metadata source in precedence order
type Source string

const (
	// SourceDisplay is the platform Display-standard metadata of the asset object
	SourceDisplay Source = "display"
	// SourceFields is the raw Move struct fields of the asset object
	SourceFields Source = "fields"
	// SourceDefaults is the fixed fallback values
	SourceDefaults Source = "defaults"
)

// DefaultPrecedence matches the deployed contract behavior: platform display
// metadata wins over raw fields, fixed defaults fill the rest
var DefaultPrecedence = []Source{SourceDisplay, SourceFields, SourceDefaults}

// ParsePrecedence validates a configured precedence list
func ParsePrecedence(names []string) ([]Source, error) {
	if len(names) == 0 {
		return DefaultPrecedence, nil
	}

	seen := make(map[Source]bool, len(names))
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		s := Source(name)
		if s != SourceDisplay && s != SourceFields && s != SourceDefaults {
			return nil, fmt.Errorf("unknown display metadata source %q", name)
		}
		if seen[s] {
			return nil, fmt.Errorf("duplicate display metadata source %q", name)
		}
		seen[s] = true
		sources = append(sources, s)
	}
	return sources, nil
}

// Attributes holds the reconciled display attributes of an asset
type Attributes struct {
	Name        string
	Description string
	URL         string
}

// Reconcile merges display metadata, raw Move fields and fixed defaults in
// the given precedence order. Each attribute takes the first non-empty value
// its sources offer; sources absent from the order never contribute.
func Reconcile(precedence []Source, display map[string]string, fields map[string]interface{}) Attributes {
	var attrs Attributes
	for _, source := range precedence {
		candidate := extract(source, display, fields)
		if attrs.Name == "" {
			attrs.Name = candidate.Name
		}
		if attrs.Description == "" {
			attrs.Description = candidate.Description
		}
		if attrs.URL == "" {
			attrs.URL = candidate.URL
		}
	}
	return attrs
}

// extract pulls attribute candidates out of one source
func extract(source Source, display map[string]string, fields map[string]interface{}) Attributes {
	switch source {
	case SourceDisplay:
		return Attributes{
			Name:        display["name"],
			Description: display["description"],
			URL:         firstNonEmpty(display["image_url"], display["url"]),
		}
	case SourceFields:
		return Attributes{
			Name:        stringField(fields, "name"),
			Description: stringField(fields, "description"),
			URL:         firstNonEmpty(stringField(fields, "url"), stringField(fields, "image_url")),
		}
	case SourceDefaults:
		return Attributes{
			Name:        domain.DEFAULT_ASSET_NAME,
			Description: domain.DEFAULT_ASSET_DESCRIPTION,
			URL:         "",
		}
	}
	return Attributes{}
}

// stringField reads a string-typed Move field, tolerating absence
func stringField(fields map[string]interface{}, key string) string {
	if fields == nil {
		return ""
	}
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
