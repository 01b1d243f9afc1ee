package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/expense-tracker/internal/models"
	"github.com/baharkarakas/expense-tracker/internal/repository"
	"github.com/baharkarakas/expense-tracker/internal/repository/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleSnapshot() models.Snapshot {
	return models.Snapshot{
		Cash:   dec("1500"),
		Online: dec("-200"),
		Transactions: []models.Transaction{
			{Reason: "Salary", Amount: dec("500"), Method: models.MethodCash, Date: "3/14/2025, 3:04:05 PM"},
			{Reason: "R&D <books>", Amount: dec("-200"), Method: models.MethodOnline, Date: "3/14/2025, 3:05:00 PM"},
		},
	}
}

func TestSnapshotStore_SaveLayout(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	store := repository.NewSnapshotStore(kv)

	if err := store.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	want := map[string]string{
		"cash":   "1500",
		"online": "-200",
		"transactions": `[{"reason":"Salary","amount":500,"method":"Cash","date":"3/14/2025, 3:04:05 PM"},` +
			`{"reason":"R&D <books>","amount":-200,"method":"Online","date":"3/14/2025, 3:05:00 PM"}]`,
	}
	for k, v := range want {
		got, found, _ := kv.Get(ctx, k)
		if !found {
			t.Errorf("key %q missing", k)
			continue
		}
		if got != v {
			t.Errorf("key %q = %s, want %s", k, got, v)
		}
	}
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	store := repository.NewSnapshotStore(kv)
	if err := store.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	before := dump(t, kv)

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := store.Save(ctx, loaded); err != nil {
		t.Fatal(err)
	}

	after := dump(t, kv)
	for k := range before {
		if before[k] != after[k] {
			t.Errorf("key %q changed on save(load()): %q -> %q", k, before[k], after[k])
		}
	}

	if !loaded.Cash.Equal(dec("1500")) || !loaded.Online.Equal(dec("-200")) || len(loaded.Transactions) != 2 {
		t.Errorf("Load() = %+v", loaded)
	}
	if loaded.Transactions[1].Reason != "R&D <books>" {
		t.Errorf("reason = %q", loaded.Transactions[1].Reason)
	}
}

func TestSnapshotStore_LoadDefaults(t *testing.T) {
	testCases := []struct {
		name       string
		entries    map[string]string
		wantCash   string
		wantOnline string
		wantTxs    int
	}{
		{name: "empty store", entries: nil, wantCash: "0", wantOnline: "0"},
		{
			name:     "garbage numbers",
			entries:  map[string]string{"cash": "NaN", "online": "oops", "transactions": "[]"},
			wantCash: "0", wantOnline: "0",
		},
		{
			name:     "numeric prefix",
			entries:  map[string]string{"cash": "12.5abc", "online": " 3"},
			wantCash: "12.5", wantOnline: "3",
		},
		{
			name:     "broken list",
			entries:  map[string]string{"cash": "1", "transactions": "[{"},
			wantCash: "1", wantOnline: "0",
		},
		{
			name:     "null list",
			entries:  map[string]string{"transactions": "null"},
			wantCash: "0", wantOnline: "0",
		},
		{
			name:     "object instead of list",
			entries:  map[string]string{"transactions": `{"reason":"x"}`},
			wantCash: "0", wantOnline: "0",
		},
		{
			name:     "out of range values",
			entries:  map[string]string{"cash": "1e999999999", "online": "1e-999999999", "transactions": `[{"reason":"x","amount":1e999999999,"method":"Cash","date":"d"}]`},
			wantCash: "0", wantOnline: "0",
		},
		{
			name:     "list written by the browser app",
			entries:  map[string]string{"cash": "1500", "online": "-200", "transactions": `[{"reason":"Salary","amount":500,"method":"Cash","date":"3/14/2025, 3:04:05 PM"}]`},
			wantCash: "1500", wantOnline: "-200", wantTxs: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			kv := memory.NewKVStore()
			_ = kv.SetMany(ctx, tc.entries)

			snap, err := repository.NewSnapshotStore(kv).Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !snap.Cash.Equal(dec(tc.wantCash)) {
				t.Errorf("cash = %s, want %s", snap.Cash, tc.wantCash)
			}
			if !snap.Online.Equal(dec(tc.wantOnline)) {
				t.Errorf("online = %s, want %s", snap.Online, tc.wantOnline)
			}
			if len(snap.Transactions) != tc.wantTxs {
				t.Errorf("len(transactions) = %d, want %d", len(snap.Transactions), tc.wantTxs)
			}
			if snap.Transactions == nil {
				t.Error("transactions is nil, want empty list")
			}
		})
	}
}

func TestSnapshotStore_ClearWipesEverything(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	_ = kv.Set(ctx, "unrelated", "value")
	store := repository.NewSnapshotStore(kv)
	_ = store.Save(ctx, sampleSnapshot())

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if kv.Len() != 0 {
		t.Errorf("store has %d entries after Clear, want 0", kv.Len())
	}
}

type failingKV struct{ memory.KVStore }

var errDown = errors.New("store down")

func (*failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errDown }
func (*failingKV) SetMany(context.Context, map[string]string) error  { return errDown }

func TestSnapshotStore_Errors(t *testing.T) {
	ctx := context.Background()
	store := repository.NewSnapshotStore(&failingKV{})

	if _, err := store.Load(ctx); !errors.Is(err, errDown) {
		t.Errorf("Load() error = %v, want %v", err, errDown)
	}
	if err := store.Save(ctx, sampleSnapshot()); !errors.Is(err, errDown) {
		t.Errorf("Save() error = %v, want %v", err, errDown)
	}
}

func TestEncodeTransactions_Nil(t *testing.T) {
	got, err := repository.EncodeTransactions(nil)
	if err != nil || got != "[]" {
		t.Errorf("EncodeTransactions(nil) = %q, %v", got, err)
	}
}

func dump(t *testing.T, kv repository.KV) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, k := range []string{repository.KeyCash, repository.KeyOnline, repository.KeyTransactions} {
		v, _, err := kv.Get(context.Background(), k)
		if err != nil {
			t.Fatal(err)
		}
		out[k] = v
	}
	return out
}
