package storage

import "errors"

// ErrNotFound is returned by single-record lookups when no row matches.
var ErrNotFound = errors.New("record not found")

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// Stores bundles every store the aggregation services read from.
type Stores struct {
	Articles      ArticleStore
	ArticleSearch ArticleSearcher
	ArticleCounts CountStore
	Sections      SectionStore
	SectionSearch SectionSearcher
	SectionCounts CountStore
	Relations     RelationStore
	Comments      CommentStore
	Users         UserStore
	Channels      ChannelStore
	Keywords      KeywordStore
}
