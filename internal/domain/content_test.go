package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{name: "nil segments", segments: nil, want: "/"},
		{name: "empty segments", segments: []string{}, want: "/"},
		{name: "single segment", segments: []string{"about"}, want: "/about"},
		{name: "nested segments", segments: []string{"blog", "2024", "hello"}, want: "/blog/2024/hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupKey(tt.segments))
		})
	}
}

func TestMetadataFromRecord(t *testing.T) {
	tests := []struct {
		name   string
		record *ContentRecord
		want   PageMetadata
	}{
		{
			name:   "nil record",
			record: nil,
			want:   PageMetadata{Title: "Builder.io Page"},
		},
		{
			name:   "title and description",
			record: &ContentRecord{Data: ContentData{Title: strPtr("T"), Description: strPtr("D")}},
			want:   PageMetadata{Title: "T", Description: strPtr("D")},
		},
		{
			name:   "missing title",
			record: &ContentRecord{Data: ContentData{Description: strPtr("D")}},
			want:   PageMetadata{Title: "Builder.io Page", Description: strPtr("D")},
		},
		{
			name:   "empty strings fall back",
			record: &ContentRecord{Data: ContentData{Title: strPtr(""), Description: strPtr("")}},
			want:   PageMetadata{Title: "Builder.io Page"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MetadataFromRecord(tt.record))
		})
	}
}
