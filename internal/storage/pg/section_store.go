package pg

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"github.com/DjordjeVuckovic/news-portal/pkg/stringsutil"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var sectionColumns = []string{"id", "name", "logo", "created_at", "modified_at"}

type SectionStore struct {
	db *pgxpool.Pool
}

func NewSectionStore(pool *ConnectionPool) *SectionStore {
	return &SectionStore{db: pool.conn}
}

func (s *SectionStore) GetByID(ctx context.Context, id int64) (domain.Section, error) {
	b := psql.Select(sectionColumns...).From("sections").Where(sq.Eq{"id": id})
	return queryOne(ctx, s.db, b, scanSection)
}

func (s *SectionStore) ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Section, error) {
	result := make(map[int64]domain.Section, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	b := psql.Select(sectionColumns...).From("sections").Where(sq.Eq{"id": ids})
	sections, err := queryAll(ctx, s.db, b, scanSection)
	if err != nil {
		return nil, err
	}
	for _, sec := range sections {
		result[sec.ID] = sec
	}
	return result, nil
}

func (s *SectionStore) ListAll(ctx context.Context, page pagination.OffsetRequest) ([]domain.Section, int64, error) {
	total, err := countOf(ctx, s.db, "sections", nil)
	if err != nil || total == 0 {
		return nil, total, err
	}

	b := paged(psql.Select(sectionColumns...).From("sections").OrderBy("id"), page)
	sections, err := queryAll(ctx, s.db, b, scanSection)
	return sections, total, err
}

func (s *SectionStore) GetItem(ctx context.Context, sectionID int64) (domain.SectionItem, error) {
	b := psql.Select("section_id", "COALESCE(item_info, '{}'::jsonb)", "modified_at").
		From("section_items").
		Where(sq.Eq{"section_id": sectionID})

	return queryOne(ctx, s.db, b, func(row pgx.CollectableRow) (domain.SectionItem, error) {
		var item domain.SectionItem
		var info []byte
		err := row.Scan(&item.SectionID, &info, &item.ModifiedAt)
		item.ItemInfo = info
		return item, err
	})
}

func (s *SectionStore) ListIDsByPrefix(ctx context.Context, prefix string, page pagination.OffsetRequest) ([]int64, int64, error) {
	where := sq.Eq{"upper(start_with)": strings.ToUpper(prefix)}

	total, err := countOf(ctx, s.db, "section_aliases", where)
	if err != nil || total == 0 {
		return nil, total, err
	}

	b := paged(psql.Select("section_id").From("section_aliases").Where(where).OrderBy("section_id"), page)
	ids, err := queryAll(ctx, s.db, b, pgx.RowTo[int64])
	return ids, total, err
}

// SearchSections matches the keyword characters in order within the name.
func (s *SectionStore) SearchSections(ctx context.Context, keyword string, page pagination.OffsetRequest) ([]domain.Section, int64, error) {
	slog.Info("Executing pg section keyword search", "keyword", keyword, "page", page.Page, "size", page.Size)

	where := sq.ILike{"name": stringsutil.FuzzyPattern(keyword)}

	total, err := countOf(ctx, s.db, "sections", where)
	if err != nil || total == 0 {
		return nil, total, err
	}

	b := paged(psql.Select(sectionColumns...).From("sections").Where(where).OrderBy("id"), page)
	sections, err := queryAll(ctx, s.db, b, scanSection)
	return sections, total, err
}

func scanSection(row pgx.CollectableRow) (domain.Section, error) {
	var sec domain.Section
	err := row.Scan(&sec.ID, &sec.Name, &sec.Logo, &sec.CreatedAt, &sec.ModifiedAt)
	return sec, err
}
