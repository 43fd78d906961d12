package domain

import (
	"encoding/json"
	"time"
)

// Section is a wiki-like topic entry.
type Section struct {
	ID         int64     `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Logo       string    `json:"logo" yaml:"logo"`
	CreatedAt  time.Time `json:"createdAt" yaml:"created_at"`
	ModifiedAt time.Time `json:"modifiedAt" yaml:"modified_at"`
}

// SectionItem carries the free-form extension document of a section.
type SectionItem struct {
	SectionID  int64           `json:"sectionId"`
	ItemInfo   json.RawMessage `json:"itemInfo"`
	ModifiedAt time.Time       `json:"modifiedAt"`
}

// LastModified returns the later of the section and item modification times.
func LastModified(section Section, item SectionItem) time.Time {
	if section.ModifiedAt.After(item.ModifiedAt) {
		return section.ModifiedAt
	}
	return item.ModifiedAt
}

// SectionAlias indexes a section under the first letter(s) of its phonetic name.
type SectionAlias struct {
	SectionID int64  `yaml:"section_id"`
	StartWith string `yaml:"start_with"`
}
