package pg

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/DjordjeVuckovic/news-portal/internal/fixture"
	pkgtesting "github.com/DjordjeVuckovic/news-portal/pkg/testing"
)

var (
	testCtx  context.Context
	testPool *ConnectionPool
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "portal_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		_ = pg.Terminate(testCtx)
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = pg.Terminate(testCtx)
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
}

func resetTables(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, `TRUNCATE TABLE articles, article_counts, sections, section_items,
		section_aliases, section_counts, atlas, channels, article_channels, users, comments, keywords CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

func seed(t *testing.T) {
	t.Helper()
	resetTables(t)

	set, err := fixture.Load("../../../db/fixtures/portal.yaml")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}
	if err := NewImporter(testPool).Import(testCtx, set); err != nil {
		t.Fatalf("failed to import fixture: %v", err)
	}
}
