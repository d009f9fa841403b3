// Command dotgraph parses a DOT file, resolves its scope-inherited
// attributes, and prints the canonical rendering — optionally flattening
// subgraph structure first.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	dotgraph "github.com/ritamzico/dotgraph"
)

func main() {
	flattenFlag := flag.Bool("flatten", false, "discard subgraph structure before rendering")
	jsonFlag := flag.Bool("json", false, "emit the resolved graph as JSON instead of the canonical rendering")
	savePath := flag.String("save", "", "also write the resolved graph as JSON to this path")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: dotgraph [-flatten] [-json] [-save path] [file]")
		fmt.Fprintln(os.Stderr, "reads from stdin if file is omitted or '-'")
		flag.PrintDefaults()
	}
	flag.Parse()

	src, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	raw, err := dotgraph.Parse(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	resolved, err := dotgraph.Resolve(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *savePath != "" {
		if err := dotgraph.SaveJSON(resolved, *savePath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *jsonFlag {
		if err := dotgraph.WriteJSON(resolved, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if !*flattenFlag {
		fmt.Print(dotgraph.RenderResolved(resolved))
		return
	}

	flat := dotgraph.Flatten(resolved, dotgraph.WriterSink{W: os.Stderr})
	fmt.Print(dotgraph.RenderFlat(flat))
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), nil
}
