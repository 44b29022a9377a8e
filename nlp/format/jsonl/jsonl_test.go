package jsonl

import (
	"bytes"
	"strings"
	"testing"
)

const jsonlInput = `{"tokens": ["the", "dog", "barks"], "arcs": [[1, 0], [2, 1]]}

{"tokens": ["."]}
`

func TestRead(t *testing.T) {
	sentences, err := Read(strings.NewReader(jsonlInput), 0)
	if err != nil {
		t.Fatal("Read failed:", err)
	}
	if len(sentences) != 2 {
		t.Fatal("Expected 2 sentences, got", len(sentences))
	}
	if len(sentences[0].Tokens) != 3 || sentences[0].Tokens[1] != "dog" {
		t.Error("Got first tokens", sentences[0].Tokens)
	}
	if len(sentences[0].Arcs) != 2 || sentences[0].Arcs[0] != [2]int{1, 0} {
		t.Error("Got first arcs", sentences[0].Arcs)
	}
	if len(sentences[1].Arcs) != 0 {
		t.Error("Expected no arcs on second sentence, got", sentences[1].Arcs)
	}
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader(`{"tokens": [`), 0)
	if err == nil {
		t.Error("Expected an error for a malformed line")
	}
}

func TestArcSet(t *testing.T) {
	sentences, err := Read(strings.NewReader(jsonlInput), 1)
	if err != nil {
		t.Fatal("Read failed:", err)
	}
	arcs := sentences[0].ArcSet()
	if arcs.Size() != 2 {
		t.Fatal("Expected 2 arcs, got", arcs.Size())
	}
	if !arcs.HasArc(1, 0) || !arcs.HasArc(2, 1) {
		t.Error("Got arc set", arcs)
	}
	sent := sentences[0].Sentence()
	if sent.String() != "the dog barks" {
		t.Error("Got sentence", sent)
	}
}

func TestWriteRead(t *testing.T) {
	sentences, err := Read(strings.NewReader(jsonlInput), 0)
	if err != nil {
		t.Fatal("Read failed:", err)
	}
	out := FromParse(sentences[0].Tokens, sentences[0].ArcSet())
	var buf bytes.Buffer
	if err := Write(&buf, []Sentence{out, sentences[1]}); err != nil {
		t.Fatal("Write failed:", err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Error("Expected one line per sentence, got", lines)
	}
	back, err := Read(&buf, 0)
	if err != nil {
		t.Fatal("Reread failed:", err)
	}
	if len(back) != 2 || len(back[0].Arcs) != 2 || back[1].Tokens[0] != "." {
		t.Error("Got sentences back", back)
	}
}
