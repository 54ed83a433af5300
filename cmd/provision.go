package main

import (
	"context"
	"fmt"

	"watchlist/internal/models"
	"watchlist/internal/repository"

	"github.com/spf13/cobra"
)

// Sample entries installed by `watchlist forge`.
var sampleMovies = []models.Movie{
	{Title: "My Neighbor Totoro", Year: "1988"},
	{Title: "Dead Poets Society", Year: "1989"},
	{Title: "A Perfect World", Year: "1993"},
	{Title: "Leon", Year: "1994"},
	{Title: "Mahjong", Year: "1996"},
	{Title: "Swallowtail Butterfly", Year: "1996"},
	{Title: "King of Comedy", Year: "1999"},
	{Title: "Devils on the Doorstep", Year: "1999"},
	{Title: "WALL-E", Year: "2008"},
	{Title: "The Pork of Music", Year: "2012"},
}

var dropTables bool

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database schema",
	Long:  "Creates the users and movies tables. With --drop, existing tables are removed first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if dropTables {
			if err := repository.InitSchema(db, true); err != nil {
				return err
			}
		}
		fmt.Println("Initialized database.")
		return nil
	},
}

var (
	adminName     string
	adminUsername string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create or update the admin account",
	Long:  "Creates the site owner, or replaces its credentials if one already exists. Idempotent.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		svc := newService(db)
		id, err := svc.ProvisionOwner(context.Background(), adminName, adminUsername, adminPassword)
		if err != nil {
			return fmt.Errorf("provision admin: %w", err)
		}
		fmt.Printf("Admin user %q ready (id=%d).\nDone.\n", adminUsername, id)
		return nil
	},
}

var forgeCmd = &cobra.Command{
	Use:   "forge",
	Short: "Seed sample movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		movies := repository.NewMovieRepository(db)
		ctx := context.Background()
		for _, m := range sampleMovies {
			if _, err := movies.Insert(ctx, m.Title, m.Year); err != nil {
				return fmt.Errorf("seed %q: %w", m.Title, err)
			}
		}
		fmt.Println("Done.")
		return nil
	},
}

func init() {
	initdbCmd.Flags().BoolVar(&dropTables, "drop", false, "drop existing tables first")

	adminCmd.Flags().StringVar(&adminName, "name", "Admin", "display name")
	adminCmd.Flags().StringVar(&adminUsername, "username", "", "login name")
	adminCmd.Flags().StringVar(&adminPassword, "password", "", "password")
	_ = adminCmd.MarkFlagRequired("username")
	_ = adminCmd.MarkFlagRequired("password")
}
