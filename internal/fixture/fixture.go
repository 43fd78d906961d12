package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"gopkg.in/yaml.v3"
)

// Set is a complete portal dataset loaded from a single YAML document.
type Set struct {
	Articles  []domain.Article       `yaml:"articles"`
	Sections  []domain.Section       `yaml:"sections"`
	Items     []Item                 `yaml:"section_items"`
	Aliases   []domain.SectionAlias  `yaml:"section_aliases"`
	Relations []domain.RelationEdge  `yaml:"atlas"`
	Channels  []domain.Channel       `yaml:"channels"`
	Members   []domain.ChannelMember `yaml:"channel_members"`
	Users     []domain.User          `yaml:"users"`
	Comments  []domain.Comment       `yaml:"comments"`
}

// Item keeps item_info as a YAML mapping so fixtures stay readable.
type Item struct {
	SectionID  int64          `yaml:"section_id"`
	ItemInfo   map[string]any `yaml:"item_info"`
	ModifiedAt time.Time      `yaml:"modified_at"`
}

func (i Item) ToDomain() (domain.SectionItem, error) {
	info := i.ItemInfo
	if info == nil {
		info = map[string]any{}
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return domain.SectionItem{}, fmt.Errorf("section %d item_info: %w", i.SectionID, err)
	}
	return domain.SectionItem{SectionID: i.SectionID, ItemInfo: raw, ModifiedAt: i.ModifiedAt}, nil
}

func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// validate rejects references that would break joins at read time.
func (s *Set) validate() error {
	articles := make(map[int64]struct{}, len(s.Articles))
	for _, a := range s.Articles {
		articles[a.ID] = struct{}{}
	}
	sections := make(map[int64]struct{}, len(s.Sections))
	for _, sec := range s.Sections {
		sections[sec.ID] = struct{}{}
	}
	users := make(map[int64]struct{}, len(s.Users))
	for _, u := range s.Users {
		users[u.ID] = struct{}{}
	}

	for _, it := range s.Items {
		if _, ok := sections[it.SectionID]; !ok {
			return fmt.Errorf("section_items: unknown section %d", it.SectionID)
		}
	}
	for _, a := range s.Aliases {
		if _, ok := sections[a.SectionID]; !ok {
			return fmt.Errorf("section_aliases: unknown section %d", a.SectionID)
		}
	}
	for _, e := range s.Relations {
		if _, ok := sections[e.SourceSectionID]; !ok {
			return fmt.Errorf("atlas: unknown source section %d", e.SourceSectionID)
		}
		if _, err := domain.ParseRelationType(string(e.TargetType)); err != nil {
			return fmt.Errorf("atlas: %w", err)
		}
	}
	for _, m := range s.Members {
		if _, ok := articles[m.ArticleID]; !ok {
			return fmt.Errorf("channel_members: unknown article %d", m.ArticleID)
		}
	}
	for _, c := range s.Comments {
		if _, ok := articles[c.ArticleID]; !ok {
			return fmt.Errorf("comments: unknown article %d", c.ArticleID)
		}
		if _, ok := users[c.UserID]; !ok {
			return fmt.Errorf("comments: unknown user %d", c.UserID)
		}
	}
	return nil
}
