package handle

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/accesskit-go/errors"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnHandleEvent(e Event) {
	o.events = append(o.events, e)
}

type dropCounter struct {
	drops int
}

func (d *dropCounter) Drop() {
	d.drops++
}

func kindOf(t *testing.T, err error) errors.Kind {
	t.Helper()
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("Expected *errors.Error, got %T (%v)", err, err)
	}
	return e.Kind
}

func TestTable_Basic(t *testing.T) {
	table := NewTable()

	h, err := table.Insert(1, "test")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if h == Null {
		t.Fatal("Expected non-null handle")
	}

	val, err := table.Get(h, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	if _, err := table.Get(h, 2); kindOf(t, err) != errors.KindTypeMismatch {
		t.Fatalf("Expected type mismatch, got %v", err)
	}

	if err := table.Release(h, 1); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Release")
	}
}

func TestTable_NullHandle(t *testing.T) {
	table := NewTable()

	if _, err := table.Get(Null, 1); kindOf(t, err) != errors.KindNilHandle {
		t.Fatalf("Expected nil handle error, got %v", err)
	}
	if err := table.Release(Null, 1); kindOf(t, err) != errors.KindNilHandle {
		t.Fatalf("Expected nil handle error, got %v", err)
	}
}

func TestTable_DoubleRelease(t *testing.T) {
	table := NewTable()
	h, _ := table.Insert(1, "x")

	if err := table.Release(h, 1); err != nil {
		t.Fatalf("First release failed: %v", err)
	}
	if err := table.Release(h, 1); kindOf(t, err) != errors.KindStaleHandle {
		t.Fatalf("Expected stale handle on second release, got %v", err)
	}
}

func TestTable_GenerationPreventsAliasing(t *testing.T) {
	table := NewTable()

	h1, _ := table.Insert(1, "first")
	if err := table.Release(h1, 1); err != nil {
		t.Fatal(err)
	}

	h2, _ := table.Insert(1, "second")
	if h1 == h2 {
		t.Fatal("Expected reused slot to yield a different handle")
	}
	idx1, _ := h1.index()
	idx2, _ := h2.index()
	if idx1 != idx2 {
		t.Fatalf("Expected slot reuse, got %d and %d", idx1, idx2)
	}

	if _, err := table.Get(h1, 1); kindOf(t, err) != errors.KindStaleHandle {
		t.Fatalf("Expected stale handle, got %v", err)
	}
	v, err := table.Get(h2, 1)
	if err != nil || v != "second" {
		t.Fatalf("Expected 'second', got %v (%v)", v, err)
	}
}

func TestTable_Take(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}
	h, _ := table.Insert(1, d)

	v, err := table.Take(h, 1)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if v != d {
		t.Fatal("Take returned wrong value")
	}
	if d.drops != 0 {
		t.Fatal("Take must not drop the value")
	}
	if _, err := table.Get(h, 1); err == nil {
		t.Fatal("Expected handle to be invalid after Take")
	}
}

func TestTable_ReleaseCallsDrop(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}
	h, _ := table.Insert(1, d)

	if err := table.Release(h, 1); err != nil {
		t.Fatal(err)
	}
	if d.drops != 1 {
		t.Fatalf("Expected 1 drop, got %d", d.drops)
	}
}

func TestTable_LendScope(t *testing.T) {
	table := NewTable()

	h, err := table.Lend(1, "borrowed", ModeShared)
	if err != nil {
		t.Fatal(err)
	}

	if err := table.Release(h, 1); kindOf(t, err) != errors.KindBorrowedRelease {
		t.Fatalf("Expected borrowed release error, got %v", err)
	}
	if _, err := table.Take(h, 1); kindOf(t, err) != errors.KindBorrowedRelease {
		t.Fatalf("Expected borrowed take error, got %v", err)
	}
	if _, err := table.GetMut(h, 1); kindOf(t, err) != errors.KindBorrowedRelease {
		t.Fatalf("Expected shared borrow to reject mutation, got %v", err)
	}
	if _, err := table.Get(h, 1); err != nil {
		t.Fatalf("Get on borrowed handle failed: %v", err)
	}

	if err := table.Return(h, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := table.Get(h, 1); kindOf(t, err) != errors.KindStaleHandle {
		t.Fatalf("Expected stale handle after lend scope, got %v", err)
	}
}

func TestTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	h, _ := table.Insert(1, "a")
	h2, _ := table.Insert(1, "b")
	_ = table.Release(h, 1)
	_, _ = table.Take(h2, 1)

	want := []EventType{EventCreated, EventCreated, EventReleased, EventTaken}
	if len(obs.events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(obs.events))
	}
	for i, ev := range obs.events {
		if ev.Type != want[i] {
			t.Errorf("event %d: got %v, want %v", i, ev.Type, want[i])
		}
	}

	table.Unsubscribe(obs)
	_, _ = table.Insert(1, "c")
	if len(obs.events) != len(want) {
		t.Fatal("Expected no events after Unsubscribe")
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable()
	d1 := &dropCounter{}
	d2 := &dropCounter{}
	_, _ = table.Insert(1, d1)
	_, _ = table.Lend(1, d2, ModeShared)

	if err := table.Close(); err != nil {
		t.Fatal(err)
	}
	if d1.drops != 1 {
		t.Fatal("Expected owned value to be dropped on Close")
	}
	if d2.drops != 0 {
		t.Fatal("Borrowed value must not be dropped on Close")
	}
	if _, err := table.Insert(1, "late"); err == nil {
		t.Fatal("Expected Insert after Close to fail")
	}
}

func TestTable_Each(t *testing.T) {
	table := NewTable()
	for i := 0; i < 5; i++ {
		_, _ = table.Insert(TypeID(i%2), i)
	}

	count := 0
	table.Each(func(h Handle, typeID TypeID, v any) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Fatalf("Expected early stop at 3, got %d", count)
	}
}
