package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/es"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/pg"
)

const (
	defaultArticleIndex = "articles"
	defaultSectionIndex = "sections"
)

type StorageConfig struct {
	storage.Type
	// Search selects the keyword search backend. Empty means the primary store.
	Search      storage.Type
	Pg          *pg.PoolConfig
	Es          *es.ClientConfig
	FixturePath string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Error("STORAGE_TYPE environment variable is not set")
		return nil, fmt.Errorf("STORAGE_TYPE environment variable is not set")
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	searchType := (storage.Type)(os.Getenv("SEARCH_TYPE"))
	if searchType == storageType || searchType == storage.PG {
		searchType = ""
	}
	if searchType != "" && searchType != storage.ES {
		slog.Error("Invalid SEARCH_TYPE environment variable value", "value", searchType)
		return nil, fmt.Errorf("invalid SEARCH_TYPE environment variable value: %s, expected %s or %s", searchType, storageType, storage.ES)
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS: %w", err)
			}
			pgCfg.MaxConns = int32(n)
		}
	}

	var esCfg *es.ClientConfig
	if searchType == storage.ES {
		var err error
		esCfg, err = LoadEsEnv()
		if err != nil {
			return nil, err
		}
	}

	return &StorageConfig{
		Type:        storageType,
		Search:      searchType,
		Pg:          pgCfg,
		Es:          esCfg,
		FixturePath: os.Getenv("FIXTURE_PATH"),
	}, nil
}

func LoadEsEnv() (*es.ClientConfig, error) {
	esCfg := &es.ClientConfig{
		Addresses:    splitNonEmpty(os.Getenv("ES_ADDRESSES")),
		Username:     os.Getenv("ES_USERNAME"),
		Password:     os.Getenv("ES_PASSWORD"),
		ArticleIndex: envOr("ES_ARTICLE_INDEX", defaultArticleIndex),
		SectionIndex: envOr("ES_SECTION_INDEX", defaultSectionIndex),
	}
	if len(esCfg.Addresses) == 0 {
		slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses)
		return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
	}
	return esCfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
