package main

import (
	"fmt"
	"log"
	"os"

	"belvedere-rss/pkg/config"
	"belvedere-rss/pkg/generator"
)

func main() {
	outputFile := "belvedere_news.xml"
	if len(os.Args) > 1 {
		outputFile = os.Args[1]
	}

	cfg, err := config.Load(os.Getenv("BELVEDERE_RSS_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gen, err := generator.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}

	if _, err := gen.Run(outputFile); err != nil {
		fmt.Println(err)
		fmt.Println("Failed to generate RSS feed.")
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("RSS feed successfully generated!")
	fmt.Printf("You can now use '%s' with any RSS reader.\n", outputFile)
}
