package domain

import "fmt"

// MaxRelatedEdges caps how many relation edges are surfaced per (source, type).
const MaxRelatedEdges = 5

type RelationType string

const (
	RelationSection RelationType = "section"
	RelationArticle RelationType = "article"
)

// ParseRelationType accepts only the exact lowercase names.
func ParseRelationType(s string) (RelationType, error) {
	switch RelationType(s) {
	case RelationSection, RelationArticle:
		return RelationType(s), nil
	default:
		return "", fmt.Errorf("unsupported relation type %q", s)
	}
}

// RelationEdge is a precomputed, ranked link from a section to a related
// section or article. Lower Degree means closer.
type RelationEdge struct {
	SourceSectionID int64        `json:"sourceSectionId" yaml:"source_section_id"`
	TargetID        int64        `json:"targetId" yaml:"target_id"`
	TargetType      RelationType `json:"targetType" yaml:"target_type"`
	Degree          float64      `json:"relationDegree" yaml:"relation_degree"`
}
