package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	"github.com/chainsafe/token-gateway/pkg/config"
	"github.com/chainsafe/token-gateway/pkg/pgutil"
)

type testDao struct {
	bun.BaseModel `bun:"table:test_entries"`
	ID            int64  `bun:",pk,autoincrement"`
	Op            string `bun:",notnull,type:varchar(64)"`
	Ref           string `bun:",notnull,type:varchar(66)"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg, nil)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestCreateAndDropSchema(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "test_entries")

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "test_entries")

	if err := DropTables(ctx, db, &testDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &testDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &testDao{}, "op"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	if err := CreateModelUniqueIndexes(ctx, db, &testDao{}, "ref"); err != nil {
		t.Fatalf("CreateModelUniqueIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_test_entries_op")
	pgutil.AssertIndexExists(t, db, "idx_test_entries_ref")

	if _, err := db.NewInsert().Model(&testDao{Op: "deposit", Ref: "0x01"}).Exec(ctx); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := db.NewInsert().Model(&testDao{Op: "deposit", Ref: "0x01"}).Exec(ctx); err == nil {
		t.Error("expected duplicate ref insert to fail")
	}
	pgutil.AssertRowCount(t, db, "test_entries", 1)

	if err := DropModelIndexes(ctx, db, &testDao{}, "op", "ref"); err != nil {
		t.Fatalf("DropModelIndexes() failed: %v", err)
	}

	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	if err := db.NewRaw(query, "idx_test_entries_ref").Scan(ctx, &exists); err != nil {
		t.Fatalf("failed to check index: %v", err)
	}
	if exists {
		t.Error("idx_test_entries_ref should be dropped")
	}
}
