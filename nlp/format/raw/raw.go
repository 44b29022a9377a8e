// Package raw reads and writes plain text sentences: one sentence per
// line, tokens separated by whitespace. Empty lines are skipped.
package raw

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	nlp "github.com/habeanf/nap/nlp/types"
)

// Read collects up to limit sentences; limit 0 reads everything.
func Read(reader io.Reader, limit int) ([]nlp.BasicSentence, error) {
	var sentences []nlp.BasicSentence
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sent := nlp.FromString(scanner.Text())
		if len(sent) == 0 {
			continue
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

func ReadFile(filename string, limit int) ([]nlp.BasicSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()

	return Read(file, limit)
}

func Write(writer io.Writer, sentences []nlp.BasicSentence) error {
	for i, sent := range sentences {
		if _, err := fmt.Fprintln(writer, sent.String()); err != nil {
			return errors.Wrapf(err, "writing sentence %d", i)
		}
	}
	return nil
}

func WriteFile(filename string, sentences []nlp.BasicSentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	defer file.Close()

	return Write(file, sentences)
}
