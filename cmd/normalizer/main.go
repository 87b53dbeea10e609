// Package main provides the normalizer command-line tool for turning a saved
// top-headlines response into a deduplicated snapshot.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"headlines/internal/export"
	"headlines/internal/filter"
	"headlines/internal/logger"
	"headlines/internal/models"
	"headlines/internal/normalizer"
)

func main() {
	inputPath := flag.String("input", "", "Path to a saved top-headlines JSON response")
	outputPath := flag.String("output", "", "Path to output snapshot JSON file")
	lenient := flag.Bool("lenient", false, "Skip malformed articles instead of failing")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Println("Usage: normalizer -input <response.json> -output <news_data.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	content, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Error reading file: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s (%d bytes)\n", *inputPath, len(content))

	var payload models.HeadlinesResponse
	if err := json.Unmarshal(content, &payload); err != nil {
		log.Fatalf("Error parsing response: %v\n", err)
	}

	processor := normalizer.NewProcessor(!*lenient, logger.NewLogger("warn"))

	articles, err := processor.Process(payload.Articles)
	if err != nil {
		log.Fatalf("Error normalizing articles: %v\n", err)
	}

	unique := filter.Deduplicate(articles)
	fmt.Printf("📊 Normalized %d of %d records, %d unique titles\n", len(articles), len(payload.Articles), len(unique))

	if err := export.NewSnapshotStore(*outputPath).Save(unique); err != nil {
		log.Fatalf("Error writing snapshot: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}
