// Package corpus reads the Sejong-style tagged corpus format used to
// train the tagger: one tab-separated eojeol per line, sentences
// separated by a blank line.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Token is one surface/tag pair extracted from a corpus line.
type Token struct {
	Surface string
	Tag     string
}

// Sentence is an ordered run of Tokens between two blank lines.
type Sentence []Token

// Read scans r line by line (as ericlingit-jieba-go's prefix-dictionary
// loader does), splitting on blank lines into Sentences. limit caps the
// number of raw lines consumed before stopping, matching the original
// tool's f.readlines()[:num_lines] slice: a limit landing mid-sentence
// still flushes whatever tokens were buffered for that sentence, the
// same way the trailing sentence after the last blank line is flushed.
// limit <= 0 reads the whole input.
func Read(r io.Reader, limit int) ([]Sentence, error) {
	scanner := bufio.NewScanner(r)

	var sentences []Sentence
	var current Sentence

	lines := 0
	for scanner.Scan() {
		if limit > 0 && lines >= limit {
			break
		}
		lines++

		line := scanner.Text()
		if line == "" {
			if len(current) > 0 {
				sentences = append(sentences, current)
				current = nil
			}
			continue
		}

		tokens, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", lines, err)
		}
		current = append(current, tokens...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	if len(current) > 0 {
		sentences = append(sentences, current)
	}
	return sentences, nil
}

// TagBigrams returns the adjacent tag pairs in s, joined "from_to", the
// same separator the trained model uses for its transition table keys.
// A sentence of fewer than two tokens has no bigrams.
func (s Sentence) TagBigrams() []string {
	if len(s) < 2 {
		return nil
	}
	bigrams := make([]string, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		bigrams = append(bigrams, s[i-1].Tag+"_"+s[i].Tag)
	}
	return bigrams
}

// parseLine splits "surface<TAB>morph1/TAG1 + morph2/TAG2 + ..." into its
// constituent Tokens.
func parseLine(line string) ([]Token, error) {
	tab := strings.IndexByte(line, '\t')
	if tab < 0 {
		return nil, ErrMalformedLine
	}

	pieces := strings.Split(line[tab+1:], " + ")
	tokens := make([]Token, 0, len(pieces))
	for _, p := range pieces {
		slash := strings.LastIndexByte(p, '/')
		if slash < 0 {
			return nil, ErrMalformedLine
		}
		tokens = append(tokens, Token{Surface: p[:slash], Tag: p[slash+1:]})
	}
	return tokens, nil
}
