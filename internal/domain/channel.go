package domain

// LatestChannelID is the reserved channel that lists the newest articles
// across all channels instead of a membership set.
const LatestChannelID int64 = 1

type Channel struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type ChannelMember struct {
	ChannelID int64 `yaml:"channel_id"`
	ArticleID int64 `yaml:"article_id"`
}
