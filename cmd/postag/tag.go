package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hangeul-nlp/postagger/decode"
	"github.com/hangeul-nlp/postagger/lemma"
	"github.com/hangeul-nlp/postagger/model"
)

func runTag(args []string) error {
	fs := flag.NewFlagSet("tag", flag.ExitOnError)
	jsonPath := fs.String("json_path", envOrDefault("POSTAG_JSON_PATH", "data/trained_corpus_type1.json"), "trained model artifact to load")
	text := fs.String("text", "", "sentence to tag")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *text == "" {
		return fmt.Errorf("--text is required")
	}

	f, err := os.Open(*jsonPath)
	if err != nil {
		return fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	store, err := model.Load(f)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	d := decode.NewDecoder(store, lemma.NewBridge(nil))
	morphs, err := d.Tag(*text)
	if err != nil {
		return fmt.Errorf("tag %q: %w", *text, err)
	}

	parts := make([]string, len(morphs))
	for i, m := range morphs {
		parts[i] = m.Surface + "/" + m.Tag
	}
	fmt.Println(strings.Join(parts, " "))
	return nil
}
