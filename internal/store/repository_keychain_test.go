package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/crypto"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

type memoryKeyChain struct {
	salt, fingerprint []byte
	saves             int
	loadErr           error
}

func (m *memoryKeyChain) Load(context.Context) ([]byte, []byte, bool, error) {
	if m.loadErr != nil {
		return nil, nil, false, m.loadErr
	}
	return m.salt, m.fingerprint, m.salt != nil, nil
}

func (m *memoryKeyChain) Save(_ context.Context, salt, fingerprint []byte) error {
	m.salt, m.fingerprint = salt, fingerprint
	m.saves++
	return nil
}

func TestUnlockKey(t *testing.T) {
	ctx := context.Background()
	keychain := crypto.NewKeyChainService()
	repo := &memoryKeyChain{}

	first, err := UnlockKey(ctx, repo, keychain, "correct horse")
	if err != nil {
		t.Fatalf("first unlock: %v", err)
	}
	if repo.saves != 1 {
		t.Fatalf("expected keychain to be saved once, got %d", repo.saves)
	}

	second, err := UnlockKey(ctx, repo, keychain, "correct horse")
	if err != nil {
		t.Fatalf("second unlock: %v", err)
	}
	if string(first) != string(second) {
		t.Error("expected the same key for the same passphrase")
	}
	if repo.saves != 1 {
		t.Errorf("expected no further saves, got %d", repo.saves)
	}

	_, err = UnlockKey(ctx, repo, keychain, "battery staple")
	if !errors.Is(err, ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestUnlockKey_LoadError(t *testing.T) {
	repo := &memoryKeyChain{loadErr: errors.New("no table")}

	_, err := UnlockKey(context.Background(), repo, crypto.NewKeyChainService(), "p")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestKeyChainRepository_Load(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer conn.Close()

	repo := NewKeyChainRepository(newDB(conn, DialectSQLite, logger.Nop()))

	mock.ExpectQuery("SELECT salt, fingerprint FROM keychain WHERE id = \\?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "fingerprint"}))

	_, _, found, err := repo.Load(context.Background())
	if err != nil || found {
		t.Fatalf("expected not found without error, got found=%v err=%v", found, err)
	}

	mock.ExpectQuery("SELECT salt, fingerprint FROM keychain").
		WillReturnRows(sqlmock.NewRows([]string{"salt", "fingerprint"}).AddRow("c2FsdA==", "ZnA="))

	salt, fp, found, err := repo.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("expected found without error, got found=%v err=%v", found, err)
	}
	if string(salt) != "salt" || string(fp) != "fp" {
		t.Errorf("unexpected values %q %q", salt, fp)
	}
}
