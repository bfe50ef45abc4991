package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseenriquez/lecturaviva/database/seeders"
	"github.com/joseenriquez/lecturaviva/pkg/database"
)

// lecturaviva seed: load the starter catalogue.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the libros collection with the starter catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Connect(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = database.Disconnect(ctx)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return seeders.Run(ctx, database.DB())
	},
}
