// Package jsonl reads and writes the parser's JSON lines interchange: one
// sentence object per line, arcs as [head, modifier] position pairs.
package jsonl

import (
	"bufio"
	"bytes"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	dep "github.com/habeanf/nap/nlp/parser/dependency/transition"
	nlp "github.com/habeanf/nap/nlp/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Sentence struct {
	Tokens []string `json:"tokens"`
	Arcs   [][2]int `json:"arcs,omitempty"`
}

func (s Sentence) Sentence() nlp.BasicSentence {
	return nlp.NewBasicSentence(s.Tokens)
}

// ArcSet converts the arc pairs to the parser's arc set type.
func (s Sentence) ArcSet() *dep.ArcSetSimple {
	arcs := dep.NewArcSetSimple(len(s.Arcs))
	for _, pair := range s.Arcs {
		arcs.Add(&dep.BasicDepArc{Head: pair[0], Modifier: pair[1]})
	}
	return arcs
}

// FromParse renders tokens and a parsed arc set as one output sentence.
func FromParse(tokens []string, arcs dep.ArcSet) Sentence {
	out := Sentence{Tokens: tokens, Arcs: make([][2]int, 0, arcs.Size())}
	for i := 0; i < arcs.Size(); i++ {
		arc := arcs.Index(i)
		out.Arcs = append(out.Arcs, [2]int{arc.GetHead(), arc.GetModifier()})
	}
	return out
}

// Read collects up to limit sentences; limit 0 reads everything. Empty
// lines are skipped.
func Read(reader io.Reader, limit int) ([]Sentence, error) {
	var sentences []Sentence
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var sent Sentence
		if err := json.Unmarshal(line, &sent); err != nil {
			return nil, errors.Wrapf(err, "decoding sentence %d", len(sentences))
		}
		sentences = append(sentences, sent)
		if limit > 0 && len(sentences) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading sentences")
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]Sentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()

	return Read(file, limit)
}

func Write(writer io.Writer, sentences []Sentence) error {
	encoder := json.NewEncoder(writer)
	for i := range sentences {
		if err := encoder.Encode(sentences[i]); err != nil {
			return errors.Wrapf(err, "encoding sentence %d", i)
		}
	}
	return nil
}

func WriteFile(filename string, sentences []Sentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	defer file.Close()

	return Write(file, sentences)
}
