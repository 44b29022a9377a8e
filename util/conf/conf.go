// Package conf reads line-based list files: one value per line, blank
// lines and #-comment lines skipped. Vocabulary files use this format.
package conf

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type Conf struct {
	Values []string
}

func Read(reader io.Reader) (*Conf, error) {
	scanner := bufio.NewScanner(reader)
	values := make([]string, 0, 64)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading conf")
	}
	return &Conf{values}, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening conf file %s", filename)
	}
	defer file.Close()

	return Read(file)
}
