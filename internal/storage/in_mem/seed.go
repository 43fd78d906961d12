package in_mem

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/news-portal/internal/fixture"
)

// Seed loads a fixture set into the backend. Counters are left absent so
// they are materialized on first read.
func (b *Backend) Seed(ctx context.Context, set *fixture.Set) error {
	if err := b.Articles.SaveBulk(ctx, set.Articles); err != nil {
		return err
	}
	for _, s := range set.Sections {
		b.Sections.SaveSection(s)
	}
	for _, it := range set.Items {
		item, err := it.ToDomain()
		if err != nil {
			return err
		}
		b.Sections.SaveItem(item)
	}
	for _, a := range set.Aliases {
		b.Sections.SaveAlias(a)
	}
	b.Relations.Save(set.Relations...)
	for _, c := range set.Channels {
		b.Channels.SaveChannel(c)
	}
	for _, m := range set.Members {
		b.Channels.AddMember(m.ChannelID, m.ArticleID)
	}
	b.Users.Save(set.Users...)
	for _, c := range set.Comments {
		if _, err := b.Comments.Add(ctx, c); err != nil {
			return err
		}
	}

	slog.Info("Seeded in-memory storage",
		"articles", len(set.Articles),
		"sections", len(set.Sections),
		"channels", len(set.Channels),
	)
	return nil
}
