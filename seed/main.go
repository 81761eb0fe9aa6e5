// seed/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/sdr_trainer/seed/seeders"
	"github.com/lac-hong-legacy/sdr_trainer/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Parse command line flags
	var (
		seedType = flag.String("type", "all", "Records to reset: all, progress, missed, purge")
		driver   = flag.String("driver", "", "Store driver (overrides STORE_DRIVER env var)")
		list     = flag.Bool("list", false, "Print the catalog summary and exit")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *list {
		if err := printCatalog(); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		return
	}

	storeDriver := *driver
	if storeDriver == "" {
		storeDriver = os.Getenv("STORE_DRIVER")
	}

	store, err := services.OpenStore(storeDriver)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Shutdown()

	mainSeeder := seeders.NewMainSeeder(store)
	ctx := context.Background()

	switch *seedType {
	case "all":
		err = mainSeeder.SeedAll(ctx)
	case "progress":
		log.Println("Resetting progress only...")
		err = mainSeeder.SeedProgressOnly(ctx)
	case "missed":
		log.Println("Resetting review queue only...")
		err = mainSeeder.SeedMissedOnly(ctx)
	case "purge":
		log.Println("Deleting stored records...")
		err = mainSeeder.Purge(ctx)
	default:
		err = fmt.Errorf("unknown seed type %q, use 'all', 'progress', 'missed' or 'purge'", *seedType)
	}
	if err != nil {
		store.Shutdown()
		log.Fatalf("Failed to reset records: %v", err)
	}

	log.Println("Seeding operation completed successfully!")
}

func printCatalog() error {
	content, err := services.NewContentService(
		seeders.NewQuestionSeeder().GetQuestions(),
		seeders.NewBadgeSeeder().GetBadges(),
	)
	if err != nil {
		return err
	}

	summary := content.Summary()
	fmt.Printf("Questions: %d\nBadges: %d\n", summary.Questions, summary.Badges)
	printCounts("Per category", summary.PerCategory)
	printCounts("Per difficulty", summary.PerDifficulty)
	return nil
}

func printCounts(title string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println(title + ":")
	for _, k := range keys {
		fmt.Printf("  %-16s %d\n", k, counts[k])
	}
}

func showHelp() {
	log.Println(`
Learner state maintenance tool for the SDR quiz trainer

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Records to reset (default "all")
        Options: all, progress, missed, purge
  -driver string
        Store driver (overrides STORE_DRIVER environment variable)
  -list
        Print the question and badge catalog summary
  -help
        Show this help message

Examples:
  # Reset everything in the default sqlite store
  go run seed/main.go

  # Clear only the review queue in redis
  go run seed/main.go -type=missed -driver=redis

Environment Variables:
  STORE_DRIVER - sqlite (default), postgres, redis, minio, memory
  DB_DATABASE  - sqlite database path (default: sdr_trainer.db)
`)
}
