package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRelationType(t *testing.T) {
	tests := []struct {
		in      string
		want    RelationType
		wantErr bool
	}{
		{in: "section", want: RelationSection},
		{in: "article", want: RelationArticle},
		{in: "Section", wantErr: true},
		{in: "ARTICLE", wantErr: true},
		{in: "", wantErr: true},
		{in: "sections", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRelationType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLastModified(t *testing.T) {
	older := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	tests := []struct {
		name    string
		section time.Time
		item    time.Time
		want    time.Time
	}{
		{name: "item newer", section: older, item: newer, want: newer},
		{name: "section newer", section: newer, item: older, want: newer},
		{name: "equal", section: older, item: older, want: older},
		{name: "no item", section: older, want: older},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastModified(Section{ModifiedAt: tt.section}, SectionItem{ModifiedAt: tt.item})
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
