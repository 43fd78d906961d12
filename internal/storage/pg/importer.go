package pg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/fixture"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Importer bulk loads a fixture set with COPY inside one transaction.
type Importer struct {
	db *pgxpool.Pool
}

func NewImporter(pool *ConnectionPool) *Importer {
	return &Importer{db: pool.conn}
}

type copySource struct {
	table   string
	columns []string
	rows    [][]any
}

func (i *Importer) Import(ctx context.Context, set *fixture.Set) error {
	sources, err := buildCopySources(set, time.Now())
	if err != nil {
		return err
	}

	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, src := range sources {
		if len(src.rows) == 0 {
			continue
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{src.table}, src.columns, pgx.CopyFromRows(src.rows))
		if err != nil {
			return fmt.Errorf("failed to copy into %s: %w", src.table, err)
		}
		slog.Info("Imported rows", "table", src.table, "rows", n)
	}

	// Comments are copied with explicit ids; move the sequence past them.
	if _, err := tx.Exec(ctx, `SELECT setval(pg_get_serial_sequence('comments', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM comments`); err != nil {
		return fmt.Errorf("failed to reset comment sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

func buildCopySources(set *fixture.Set, now time.Time) ([]copySource, error) {
	orNow := func(t time.Time) time.Time {
		if t.IsZero() {
			return now
		}
		return t
	}

	articles := copySource{table: "articles", columns: []string{"id", "title", "source", "content", "keywords", "thumbnail", "created_at"}}
	for _, a := range set.Articles {
		articles.rows = append(articles.rows, []any{a.ID, a.Title, a.Source, a.Content, a.Keywords, a.Thumbnail, orNow(a.CreatedAt)})
	}

	sections := copySource{table: "sections", columns: []string{"id", "name", "logo", "created_at", "modified_at"}}
	for _, s := range set.Sections {
		sections.rows = append(sections.rows, []any{s.ID, s.Name, s.Logo, orNow(s.CreatedAt), orNow(s.ModifiedAt)})
	}

	items := copySource{table: "section_items", columns: []string{"section_id", "item_info", "modified_at"}}
	for _, it := range set.Items {
		item, err := it.ToDomain()
		if err != nil {
			return nil, err
		}
		items.rows = append(items.rows, []any{item.SectionID, []byte(item.ItemInfo), orNow(item.ModifiedAt)})
	}

	aliases := copySource{table: "section_aliases", columns: []string{"section_id", "start_with"}}
	for _, a := range set.Aliases {
		aliases.rows = append(aliases.rows, []any{a.SectionID, a.StartWith})
	}

	atlas := copySource{table: "atlas", columns: []string{"section_id", "relation_id", "relation_type", "relation_degree"}}
	for _, e := range set.Relations {
		atlas.rows = append(atlas.rows, []any{e.SourceSectionID, e.TargetID, string(e.TargetType), e.Degree})
	}

	channels := copySource{table: "channels", columns: []string{"id", "name"}}
	for _, c := range set.Channels {
		channels.rows = append(channels.rows, []any{c.ID, c.Name})
	}

	members := copySource{table: "article_channels", columns: []string{"channel_id", "article_id"}}
	for _, m := range set.Members {
		members.rows = append(members.rows, []any{m.ChannelID, m.ArticleID})
	}

	users := copySource{table: "users", columns: []string{"id", "nickname", "avatar"}}
	for _, u := range set.Users {
		users.rows = append(users.rows, []any{u.ID, u.Nickname, u.Avatar})
	}

	comments := copySource{table: "comments", columns: []string{"id", "article_id", "user_id", "content", "like_count", "dislike_count", "created_at"}}
	for _, c := range set.Comments {
		comments.rows = append(comments.rows, []any{c.ID, c.ArticleID, c.UserID, c.Content, c.LikeCount, c.DislikeCount, orNow(c.CreatedAt)})
	}

	// Parents first so foreign keys hold.
	return []copySource{articles, sections, items, aliases, atlas, channels, members, users, comments}, nil
}
