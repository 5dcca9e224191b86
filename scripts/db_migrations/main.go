package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "db_migrations",
		Usage: "apply or inspect the finance-server schema",
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply every pending migration",
				Action: up,
			},
			{
				Name:   "version",
				Usage:  "print the applied schema version",
				Action: version,
			},
		},
		DefaultCommand: "up",
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func openDB() (*sql.DB, error) {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, fmt.Errorf("ProcessEnvironmentVariables: %w", err)
	}
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return db, nil
}

func up(_ *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	pre, post, err := storage.RunMigrations(db)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  pre,
		"postMigrationVersion": post,
	}).Info("Migration status")
	return nil
}

func version(c *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := storage.NewMigrator(db)
	if err != nil {
		return err
	}
	v, err := storage.Version(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, v)
	return err
}
