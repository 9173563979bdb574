package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/hangeul-nlp/postagger/corpus"
	"github.com/hangeul-nlp/postagger/model"
	"github.com/hangeul-nlp/postagger/train"
)

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	dataPath := fs.String("data_path", envOrDefault("POSTAG_DATA_PATH", "data/corpus_type1_all.txt"), "tagged corpus file to train from")
	numLines := fs.Int("num_lines", envOrDefaultInt("POSTAG_NUM_LINES", 0), "number of raw corpus lines to read; 0 reads the whole file")
	savePath := fs.String("save_path", envOrDefault("POSTAG_SAVE_PATH", "data/trained_corpus_type1.json"), "where to write the trained model artifact")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := os.Open(*dataPath)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	defer src.Close()

	sentences, err := corpus.Read(src, *numLines)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}

	p := mpb.New(mpb.WithWidth(80))
	bar := p.AddBar(int64(len(sentences)),
		mpb.PrependDecorators(
			decor.Name("counting sentences: "),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done!"),
		),
	)
	counts := train.CountProgress(sentences, func() { bar.Increment() })
	p.Wait()

	artifact, err := train.ToLogProb(counts)
	if err != nil {
		return fmt.Errorf("convert counts to log-probabilities: %w", err)
	}

	store, err := model.FromArtifact(&artifact)
	if err != nil {
		return fmt.Errorf("build model from artifact: %w", err)
	}

	dst, err := os.Create(*savePath)
	if err != nil {
		return fmt.Errorf("create %s: %w", *savePath, err)
	}
	defer dst.Close()

	if err := model.Save(dst, store); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}
