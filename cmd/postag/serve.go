package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/hangeul-nlp/postagger/decode"
	"github.com/hangeul-nlp/postagger/internal/server"
	"github.com/hangeul-nlp/postagger/lemma"
	"github.com/hangeul-nlp/postagger/model"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	jsonPath := fs.String("json_path", envOrDefault("POSTAG_JSON_PATH", "data/trained_corpus_type1.json"), "trained model artifact to load")
	addr := fs.String("addr", envOrDefault("POSTAG_ADDR", ":8080"), "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*jsonPath)
	if err != nil {
		return fmt.Errorf("open model: %w", err)
	}
	store, err := model.Load(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	d := decode.NewDecoder(store, lemma.NewBridge(nil))
	h := server.New(d)

	log.Printf("postag: listening on %s", *addr)
	return http.ListenAndServe(*addr, h)
}
