// Command postag trains, runs, and serves the part-of-speech tagger.
//
// Usage:
//
//	postag train --data_path <path> --num_lines <N> --save_path <path>
//	postag tag --json_path <model> --text <sentence>
//	postag serve --json_path <model> --addr <host:port>
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("postag: no .env file found, using flag defaults")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "train":
		err = runTrain(os.Args[2:])
	case "tag":
		err = runTag(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("postag: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: postag <train|tag|serve> [flags]")
}

// envOrDefault returns os.Getenv(key) when set, the flag's hardcoded
// literal otherwise. Subcommands call this to build their flag defaults
// so a loaded .env file can override them without requiring every flag
// to be passed on the command line.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envOrDefaultInt is envOrDefault for integer-valued flags; a malformed
// env value falls back to def rather than failing the process.
func envOrDefaultInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
