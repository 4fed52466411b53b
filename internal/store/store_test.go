package store

import (
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestStateRoundTrip(t *testing.T) {
	dir := t.TempDir()

	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := st.PutState("favorites", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("PutState() error = %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Simulate a fresh process over the same directory
	st2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer st2.Close()

	data, ok := st2.GetState("favorites")
	if !ok {
		t.Fatalf("GetState() after reopen: not found")
	}
	if string(data) != `[{"id":1}]` {
		t.Fatalf("GetState() = %s, want original payload", data)
	}
}

func TestGetStateMissingKey(t *testing.T) {
	st := newTestStore(t)

	if _, ok := st.GetState("nope"); ok {
		t.Fatalf("GetState() found a key that was never written")
	}
}

func TestMemoryOnlyMode(t *testing.T) {
	st, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}
	defer st.Close()

	if err := st.PutState("session", []byte(`{}`)); err != nil {
		t.Fatalf("PutState() error = %v", err)
	}
	if _, ok := st.GetState("session"); !ok {
		t.Fatalf("memory-only store lost its value")
	}
}

func TestAccountsAreNamespacedApartFromState(t *testing.T) {
	st := newTestStore(t)

	if err := st.PutAccount("ripley", []byte(`{"username":"ripley"}`)); err != nil {
		t.Fatalf("PutAccount() error = %v", err)
	}
	if _, ok := st.GetState("ripley"); ok {
		t.Fatalf("account payload leaked into the state bucket")
	}
	if _, ok := st.GetAccount("ripley"); !ok {
		t.Fatalf("GetAccount() lost the record")
	}
}
