package domain

import "strings"

// PageModel is the content model used for every routed page.
const PageModel = "page"

// DefaultPageTitle is used whenever no title can be resolved from content.
const DefaultPageTitle = "Builder.io Page"

// ContentRecord is a single entry returned by the content API.
type ContentRecord struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Data ContentData `json:"data"`
}

// ContentData holds the fields of a content entry. Title and Description
// are optional; nil means the editor left them unset.
type ContentData struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         string  `json:"url,omitempty"`
	Blocks      []Block `json:"blocks,omitempty"`
}

// Block is a node of the visual editor's component tree.
type Block struct {
	ID        string     `json:"id,omitempty"`
	Component *Component `json:"component,omitempty"`
	Children  []Block    `json:"children,omitempty"`
}

// Component names a registered component and its editor options.
type Component struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options,omitempty"`
}

// PageMetadata is the <head> information for a rendered page.
type PageMetadata struct {
	Title       string
	Description *string
}

// DefaultPageMetadata returns the metadata used when content is unavailable.
func DefaultPageMetadata() PageMetadata {
	return PageMetadata{Title: DefaultPageTitle}
}

// LookupKey joins path segments into the URL path used to query content.
// An empty segment list yields "/".
func LookupKey(segments []string) string {
	return "/" + strings.Join(segments, "/")
}

// MetadataFromRecord derives page metadata from a content record, falling
// back to the default title when none is set.
func MetadataFromRecord(record *ContentRecord) PageMetadata {
	meta := DefaultPageMetadata()
	if record == nil {
		return meta
	}
	if t := record.Data.Title; t != nil && *t != "" {
		meta.Title = *t
	}
	if d := record.Data.Description; d != nil && *d != "" {
		desc := *d
		meta.Description = &desc
	}
	return meta
}
