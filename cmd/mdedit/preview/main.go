package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-mdedit/cmd/mdedit/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		engine     = flag.String("engine", "pipeline", "Renderer engine (pipeline or goldmark)")
		logLevel   = flag.String("log-level", "info", "Minimum log severity")
		filePath   = flag.String("file", "", "Markdown file to preview (relative to the content root)")
		renderHTML = flag.Bool("render-html", true, "Render the markdown body into sanitized HTML")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  true,
		Engine:     *engine,
		LogLevel:   *logLevel,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	doc, err := module.Loader.LoadFile(ctx, *filePath)
	if err != nil {
		log.Fatalf("load markdown document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nChecksum: %x\n\n", doc.FilePath, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		meta, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", meta)
		}
	}

	if *renderHTML {
		result := module.Module.Render(string(doc.Body))
		fmt.Fprintf(os.Stdout, "Sanitized: %t\nRendered HTML:\n%s\n", result.Sanitized, result.HTML)
		return
	}

	fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
}
