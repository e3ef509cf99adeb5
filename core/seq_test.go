package core

import (
	"errors"
	"strconv"
	"testing"
)

func testSeq(t *testing.T, min int) Seq {
	t.Helper()
	return Seq{
		Parent: testRoot(t),
		URI:    testNS,
		Local:  "Image",
		Min:    min,
		Init: func(i int, n Node) {
			n.SetAttr("ID", "Image:"+strconv.Itoa(i))
		},
	}
}

func TestSeqStartsEmpty(t *testing.T) {
	s := testSeq(t, 0)
	if got := s.Len(); got != 0 {
		t.Fatalf("Len = %d, want 0", got)
	}
}

func TestSeqGrowRunsInit(t *testing.T) {
	s := testSeq(t, 0)
	if err := s.Resize(3); err != nil {
		t.Fatalf("Resize(3): %v", err)
	}
	if got := s.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	for i := 0; i < 3; i++ {
		n, err := s.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		want := "Image:" + strconv.Itoa(i)
		if got := n.AttrString("ID"); got != want {
			t.Errorf("At(%d).ID = %q, want %q", i, got, want)
		}
	}
}

func TestSeqShrinkPreservesHead(t *testing.T) {
	s := testSeq(t, 0)
	if err := s.Resize(3); err != nil {
		t.Fatalf("Resize(3): %v", err)
	}
	n, _ := s.At(0)
	n.SetAttr("Name", "keep me")

	if err := s.Resize(1); err != nil {
		t.Fatalf("Resize(1): %v", err)
	}
	if got := s.Len(); got != 1 {
		t.Fatalf("Len = %d, want 1", got)
	}
	n, _ = s.At(0)
	if got := n.AttrString("Name"); got != "keep me" {
		t.Errorf("surviving element lost its attribute: Name = %q", got)
	}
}

func TestSeqGrowAfterShrinkReinitializesTail(t *testing.T) {
	s := testSeq(t, 0)
	if err := s.Resize(2); err != nil {
		t.Fatal(err)
	}
	n, _ := s.At(1)
	n.SetAttr("Name", "doomed")
	if err := s.Resize(1); err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(2); err != nil {
		t.Fatal(err)
	}
	n, _ = s.At(1)
	if got := n.AttrString("Name"); got != "" {
		t.Errorf("re-grown element carries stale state: Name = %q", got)
	}
}

func TestSeqAtOutOfRange(t *testing.T) {
	s := testSeq(t, 0)
	if err := s.Resize(2); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 2, 100} {
		if _, err := s.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	// out-of-range reads never create elements
	if got := s.Len(); got != 2 {
		t.Errorf("Len = %d after failed reads, want 2", got)
	}
}

func TestSeqMinimumCount(t *testing.T) {
	s := testSeq(t, 1)
	if err := s.Resize(0); !errors.Is(err, ErrCountTooSmall) {
		t.Errorf("Resize(0) = %v, want ErrCountTooSmall", err)
	}
	if err := s.Resize(-3); !errors.Is(err, ErrCountTooSmall) {
		t.Errorf("Resize(-3) = %v, want ErrCountTooSmall", err)
	}
	if err := s.Resize(1); err != nil {
		t.Errorf("Resize(1): %v", err)
	}
}

func TestSeqIgnoresForeignChildren(t *testing.T) {
	s := testSeq(t, 0)
	s.Parent.CreateChild(testNS, "Instrument")
	if err := s.Resize(2); err != nil {
		t.Fatal(err)
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
	// the foreign sibling survives a RemoveAll
	s.RemoveAll()
	if got := s.Len(); got != 0 {
		t.Errorf("Len after RemoveAll = %d, want 0", got)
	}
	if got := len(s.Parent.Children(testNS, "Instrument")); got != 1 {
		t.Errorf("Instrument sibling count = %d, want 1", got)
	}
}
