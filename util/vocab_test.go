package util

import "testing"

func TestVocabAdd(t *testing.T) {
	v := NewVocab(4)
	id, isNew := v.Add("the")
	if id != 0 || !isNew {
		t.Error("First value should get id 0, got", id, isNew)
	}
	id, isNew = v.Add("dog")
	if id != 1 || !isNew {
		t.Error("Second value should get id 1, got", id, isNew)
	}
	id, isNew = v.Add("the")
	if id != 0 || isNew {
		t.Error("Re-added value should keep id 0, got", id, isNew)
	}
	if v.Len() != 2 {
		t.Error("Expected 2 values, got", v.Len())
	}
	if v.ValueOf(1) != "dog" {
		t.Error("Expected dog at id 1, got", v.ValueOf(1))
	}
	if _, exists := v.IndexOf("cat"); exists {
		t.Error("Unknown value should not resolve")
	}
}

func TestVocabFrozen(t *testing.T) {
	v := NewVocabFromTokens([]string{"a", "b", "a"})
	if v.Len() != 2 {
		t.Error("Duplicates should not allocate ids, got", v.Len())
	}
	v.Freeze()
	var recovered bool
	func() {
		defer func() { recovered = recover() != nil }()
		v.Add("c")
	}()
	if !recovered {
		t.Error("Adding to a frozen vocabulary should panic")
	}
}
