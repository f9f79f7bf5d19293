package batch

import "testing"

func TestNewOK(t *testing.T) {
	r := NewOK("doc-1")
	if r.ID() != "doc-1" {
		t.Errorf("ID() = %q", r.ID())
	}
	if r.Status() != StatusOK || r.Failed() {
		t.Errorf("Status() = %q, want %q", r.Status(), StatusOK)
	}
	if r.Cause() != (Cause{}) {
		t.Errorf("Cause() = %+v, want zero", r.Cause())
	}
}

func TestNewFailure(t *testing.T) {
	r := NewFailure("doc-2", Cause{Type: "mapper_parsing_exception", Reason: "bad"})
	if r.ID() != "doc-2" {
		t.Errorf("ID() = %q", r.ID())
	}
	if !r.Failed() {
		t.Error("expected Failed()")
	}
	if r.Cause().Type != "mapper_parsing_exception" || r.Cause().Reason != "bad" {
		t.Errorf("Cause() = %+v", r.Cause())
	}
}

func TestNewFailure_UnknownID(t *testing.T) {
	if got := NewFailure("", Cause{}).ID(); got != UnknownID {
		t.Errorf("ID() = %q, want %q", got, UnknownID)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		NewOK("a"),
		NewFailure("b", Cause{Type: "x"}),
		NewOK("c"),
		NewFailure("", Cause{Type: "y"}),
	}
	s := Summarize(results)
	if s.Total != 4 || s.Successful != 2 || s.Failed != 2 {
		t.Fatalf("Summarize() = %+v", s)
	}
	if s.Successful+s.Failed != s.Total {
		t.Error("counts do not add up")
	}
	if s.Failures[0].ID() != "b" || s.Failures[1].ID() != UnknownID {
		t.Errorf("failures out of order: %v, %v", s.Failures[0].ID(), s.Failures[1].ID())
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Successful != 0 || s.Failed != 0 || len(s.Failures) != 0 {
		t.Errorf("Summarize(nil) = %+v", s)
	}
}
