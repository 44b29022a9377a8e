package types

import (
	"reflect"
	"strings"

	"github.com/habeanf/nap/util"
)

type Token string

type Sentence interface {
	util.Equaler
	Tokens() []string
}

type BasicSentence []Token

var _ Sentence = BasicSentence{}

func NewBasicSentence(tokens []string) BasicSentence {
	retval := make(BasicSentence, len(tokens))
	for i, val := range tokens {
		retval[i] = Token(val)
	}
	return retval
}

// FromString splits a whitespace-separated line into a sentence.
func FromString(line string) BasicSentence {
	return NewBasicSentence(strings.Fields(line))
}

func (b BasicSentence) Tokens() []string {
	retval := make([]string, len(b))
	for i, val := range b {
		retval[i] = string(val)
	}
	return retval
}

func (b BasicSentence) Equal(otherEq util.Equaler) bool {
	asBasic, ok := otherEq.(BasicSentence)
	return ok && reflect.DeepEqual(b, asBasic)
}

func (b BasicSentence) String() string {
	return strings.Join(b.Tokens(), " ")
}
