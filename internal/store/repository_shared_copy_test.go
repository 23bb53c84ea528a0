package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

func newTestSharedCopyRepo(t *testing.T, dialect Dialect) (SharedCopyRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return NewSharedCopyRepository(newDB(conn, dialect, logger.Nop())), mock
}

func TestSharedCopyRepository_Upsert(t *testing.T) {
	repo, mock := newTestSharedCopyRepo(t, DialectPostgres)

	pushedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO shared_copies \(connection_id,contact_id,uid,etag,href,address_book,pushed_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) ON CONFLICT \(connection_id, contact_id\) DO UPDATE`).
		WithArgs("conn-1", "c1", "c1", `"e1"`, "/ro/c1.vcf", "shared", pushedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), models.SharedCopy{
		ConnectionID: "conn-1",
		ContactID:    "c1",
		UID:          "c1",
		ETag:         `"e1"`,
		Href:         "/ro/c1.vcf",
		AddressBook:  "shared",
		PushedAt:     pushedAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSharedCopyRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestSharedCopyRepo(t, DialectSQLite)

		mock.ExpectQuery("SELECT (.+) FROM shared_copies WHERE").
			WillReturnRows(sqlmock.NewRows(sharedCopyColumns).
				AddRow("conn-1", "c1", "c1", `"e1"`, "/h", "default", time.Now()))

		c, err := repo.Get(context.Background(), "conn-1", "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c == nil || c.Href != "/h" {
			t.Fatalf("unexpected shared copy %+v", c)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestSharedCopyRepo(t, DialectSQLite)

		mock.ExpectQuery("SELECT (.+) FROM shared_copies WHERE").
			WillReturnRows(sqlmock.NewRows(sharedCopyColumns))

		c, err := repo.Get(context.Background(), "conn-1", "c1")
		if err != nil || c != nil {
			t.Fatalf("expected nil, nil; got %+v, %v", c, err)
		}
	})
}

func TestSharedCopyRepository_List(t *testing.T) {
	repo, mock := newTestSharedCopyRepo(t, DialectSQLite)

	mock.ExpectQuery("SELECT (.+) FROM shared_copies WHERE connection_id = \\? ORDER BY contact_id").
		WithArgs("conn-1").
		WillReturnRows(sqlmock.NewRows(sharedCopyColumns).
			AddRow("conn-1", "c1", "c1", "", "/a", "default", time.Now()).
			AddRow("conn-1", "c2", "c2", "", "/b", "default", time.Now()))

	copies, err := repo.List(context.Background(), "conn-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(copies) != 2 || copies[1].ContactID != "c2" {
		t.Fatalf("unexpected copies %+v", copies)
	}
}

func TestSharedCopyRepository_Delete_Error(t *testing.T) {
	repo, mock := newTestSharedCopyRepo(t, DialectSQLite)

	mock.ExpectExec("DELETE FROM shared_copies").WillReturnError(errors.New("locked"))

	if err := repo.Delete(context.Background(), "conn-1", "c1"); err == nil {
		t.Fatal("expected error")
	}
}
