package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
	"github.com/mmynk/settleup/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newScope(t *testing.T, store *SQLiteStore) *models.Scope {
	t.Helper()
	scope := &models.Scope{
		Name:     "Lisbon trip",
		Kind:     models.ScopeEvent,
		Currency: "EUR",
		Members: []models.Member{
			{ID: "alice", DisplayName: "Alice", UserID: "user-alice"},
			{ID: "bob", DisplayName: "Bob"},
		},
	}
	if err := store.CreateScope(context.Background(), scope); err != nil {
		t.Fatalf("CreateScope failed: %v", err)
	}
	return scope
}

func TestSQLiteStore_Scopes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateScope generates ID and timestamp", func(t *testing.T) {
		scope := newScope(t, store)
		if scope.ID == "" {
			t.Error("Expected scope ID to be generated")
		}
		if scope.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetScope retrieves roster in join order", func(t *testing.T) {
		original := newScope(t, store)
		if err := store.AddMembers(ctx, original.ID, []models.Member{{ID: "carol", DisplayName: "Carol"}}); err != nil {
			t.Fatalf("AddMembers failed: %v", err)
		}

		got, err := store.GetScope(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetScope failed: %v", err)
		}
		if got.Name != "Lisbon trip" || got.Kind != models.ScopeEvent || got.Currency != "EUR" {
			t.Errorf("got scope %+v", got)
		}
		want := []string{"alice", "bob", "carol"}
		if len(got.Members) != len(want) {
			t.Fatalf("got %d members, want %d", len(got.Members), len(want))
		}
		for i, id := range want {
			if got.Members[i].ID != id {
				t.Errorf("member %d = %s, want %s", i, got.Members[i].ID, id)
			}
		}
		if got.Members[0].UserID != "user-alice" {
			t.Errorf("UserID = %q, want user-alice", got.Members[0].UserID)
		}
	})

	t.Run("AddMembers rejects duplicates", func(t *testing.T) {
		scope := newScope(t, store)
		err := store.AddMembers(ctx, scope.ID, []models.Member{{ID: "bob", DisplayName: "Bob again"}})
		if err == nil {
			t.Fatal("Expected error adding an existing member")
		}
	})

	t.Run("GetScope returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetScope(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := store.AddMembers(ctx, "missing", nil); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("AddMembers: expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStore_ListScopes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &models.Scope{Name: "Flat", Kind: models.ScopeGroup, CreatedAt: 100,
		Members: []models.Member{{ID: "a", DisplayName: "A", UserID: "u1"}}}
	second := &models.Scope{Name: "Trip", Kind: models.ScopeEvent, CreatedAt: 200,
		Members: []models.Member{{ID: "b", DisplayName: "B", UserID: "u2"}}}
	third := &models.Scope{Name: "Office", Kind: models.ScopeGroup, CreatedAt: 300,
		Members: []models.Member{{ID: "a", DisplayName: "A", UserID: "u1"}, {ID: "b", DisplayName: "B", UserID: "u2"}}}
	for _, s := range []*models.Scope{third, first, second} {
		if err := store.CreateScope(ctx, s); err != nil {
			t.Fatalf("CreateScope failed: %v", err)
		}
	}

	all, err := store.ListScopes(ctx, "")
	if err != nil {
		t.Fatalf("ListScopes failed: %v", err)
	}
	if len(all) != 3 || all[0].Name != "Flat" || all[2].Name != "Office" {
		t.Errorf("ListScopes(all) = %v", names(all))
	}

	mine, err := store.ListScopes(ctx, "u1")
	if err != nil {
		t.Fatalf("ListScopes failed: %v", err)
	}
	if len(mine) != 2 || mine[0].Name != "Flat" || mine[1].Name != "Office" {
		t.Errorf("ListScopes(u1) = %v", names(mine))
	}
	if len(mine[1].Members) != 2 {
		t.Errorf("expected roster to be loaded, got %v", mine[1].Members)
	}
}

func names(scopes []*models.Scope) []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = s.Name
	}
	return out
}

func TestSQLiteStore_Ledger(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	scope := newScope(t, store)
	ts := time.Date(2024, 5, 1, 12, 30, 0, 123456789, time.UTC)

	txs := []models.Transaction{
		{ID: "tx-1", Kind: models.KindExpense, PayerID: "alice", Amount: 3001, Timestamp: ts,
			Shares: map[string]money.Money{"alice": 1501, "bob": 1500}, Description: "dinner", RecordedBy: "user-alice"},
		{ID: "tx-2", Kind: models.KindReminder, PayerID: "alice", TargetID: "bob", Amount: 1500, Timestamp: ts.Add(time.Hour)},
		{ID: "tx-3", Kind: models.KindSettlement, PayerID: "bob", ReceiverID: "alice", Amount: 1000, Timestamp: ts.Add(2 * time.Hour)},
	}

	l, err := ledger.New(scope.ID, scope.Members)
	if err != nil {
		t.Fatalf("ledger.New failed: %v", err)
	}
	for _, tx := range txs {
		if l, err = l.Append(tx); err != nil {
			t.Fatalf("Append %s failed: %v", tx.ID, err)
		}
		if err := store.AppendTransaction(ctx, scope.ID, tx); err != nil {
			t.Fatalf("AppendTransaction %s failed: %v", tx.ID, err)
		}
	}

	t.Run("LoadLedger round trips", func(t *testing.T) {
		loaded, err := store.LoadLedger(ctx, scope.ID)
		if err != nil {
			t.Fatalf("LoadLedger failed: %v", err)
		}
		if loaded.Len() != len(txs) {
			t.Fatalf("loaded %d transactions, want %d", loaded.Len(), len(txs))
		}
		for i, got := range loaded.All() {
			want := txs[i]
			if got.ID != want.ID || got.Kind != want.Kind || got.PayerID != want.PayerID ||
				got.Amount != want.Amount || got.ReceiverID != want.ReceiverID || got.TargetID != want.TargetID ||
				got.Description != want.Description || got.RecordedBy != want.RecordedBy {
				t.Errorf("transaction %d = %+v, want %+v", i, got, want)
			}
			if !got.Timestamp.Equal(want.Timestamp) {
				t.Errorf("transaction %d timestamp = %v, want %v", i, got.Timestamp, want.Timestamp)
			}
			if len(got.Shares) != len(want.Shares) {
				t.Errorf("transaction %d shares = %v, want %v", i, got.Shares, want.Shares)
			}
			for id, share := range want.Shares {
				if got.Shares[id] != share {
					t.Errorf("transaction %d share[%s] = %s, want %s", i, id, got.Shares[id], share)
				}
			}
		}

		want := calculator.ComputeBalances(l)
		got := calculator.ComputeBalances(loaded)
		for _, id := range want.IDs() {
			if got[id] != want[id] {
				t.Errorf("balance[%s] = %s, want %s", id, got[id], want[id])
			}
		}
	})

	t.Run("ListTransactions pages in ledger order", func(t *testing.T) {
		page, err := store.ListTransactions(ctx, scope.ID, 2, 1)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(page) != 2 || page[0].ID != "tx-2" || page[1].ID != "tx-3" {
			t.Errorf("page = %+v", page)
		}
	})

	t.Run("duplicate transaction ID is rejected", func(t *testing.T) {
		if err := store.AppendTransaction(ctx, scope.ID, txs[2]); err == nil {
			t.Error("Expected error storing a transaction twice")
		}
	})

	t.Run("unknown scope", func(t *testing.T) {
		if err := store.AppendTransaction(ctx, "missing", txs[0]); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("AppendTransaction: expected ErrNotFound, got %v", err)
		}
		if _, err := store.LoadLedger(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("LoadLedger: expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("alice@example.com", "Alice", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil || byEmail == nil || byEmail.ID != user.ID {
		t.Fatalf("GetUserByEmail = %+v, %v", byEmail, err)
	}
	byID, err := store.GetUserByID(ctx, user.ID)
	if err != nil || byID == nil || byID.Email != user.Email {
		t.Fatalf("GetUserByID = %+v, %v", byID, err)
	}

	missing, err := store.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil || missing != nil {
		t.Errorf("GetUserByEmail(missing) = %+v, %v, want nil, nil", missing, err)
	}

	dup := models.NewUser("alice@example.com", "Other Alice", "hash")
	if err := store.CreateUser(ctx, dup); !errors.Is(err, storage.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	users, err := store.GetUsersByIDs(ctx, []string{user.ID, "nope"})
	if err != nil {
		t.Fatalf("GetUsersByIDs failed: %v", err)
	}
	if len(users) != 1 || users[user.ID] == nil {
		t.Errorf("GetUsersByIDs = %v", users)
	}
}

func TestNew_ReopensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	scope := newScope(t, store)
	store.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopening failed: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.GetScope(context.Background(), scope.ID); err != nil {
		t.Errorf("scope lost after reopening: %v", err)
	}
}
