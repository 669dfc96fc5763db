package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"staylist/internal/seed"
	"staylist/pkg/config"
	"staylist/pkg/db"
)

const ServiceName = "staylist-seed"

func main() {
	var opts seed.Options

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample listings, bookings and reviews",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load(ServiceName)

			database, err := db.Open(cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := db.Migrate(database); err != nil {
				return fmt.Errorf("failed to migrate database schema: %w", err)
			}

			seeder := seed.NewSeeder(database, cfg.Log, nil)
			result, err := seeder.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Printf("Created %d listing(s), %d booking(s), %d review(s).\n",
				result.Listings, result.Bookings, result.Reviews)
			return nil
		},
	}

	rootCmd.Flags().IntVar(&opts.Listings, "listings", 12, "How many listings to create")
	rootCmd.Flags().IntVar(&opts.Bookings, "bookings", 0, "Total bookings to create across all listings")
	rootCmd.Flags().IntVar(&opts.Reviews, "reviews", 0, "Total reviews to create across all listings")
	rootCmd.Flags().BoolVar(&opts.Flush, "flush", false, "Delete existing bookings, reviews, then listings before seeding")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
