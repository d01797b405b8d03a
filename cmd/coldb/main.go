package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"

	"coldb/internal/cli"
	"coldb/internal/column"
	"coldb/internal/config"
	"coldb/internal/logger"
)

const seedTable = "people"

var (
	configPath     *string
	logLevel       *string
	shouldSeed     *bool
	seedNumRecords *int
)

// seedDatabaseWithTestRecords fills a demo table with records created by go-faker.
func seedDatabaseWithTestRecords(d *column.Database, records int) error {
	if err := d.CreateTable(seedTable); err != nil {
		return err
	}
	for _, c := range []string{"first_name", "last_name", "word"} {
		if err := d.AddColumn(seedTable, c, d.Limits().MaxColumnSize); err != nil {
			return err
		}
	}
	for i := 0; i < records; i++ {
		row := []any{faker.FirstName(), faker.LastName(), faker.Word()}
		if _, err := d.InsertRow(seedTable, row); err != nil {
			return err
		}
	}
	logger.Logger.WithFields(logrus.Fields{"table": seedTable, "records": records}).Info("seeded database")
	return nil
}

func main() {
	setupFlags()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Logger.Fatal(err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := logger.Setup(cfg.Log); err != nil {
		logger.Logger.Fatal(err)
	}

	limits := column.Limits{
		MaxNameLength: cfg.Limits.MaxNameLength,
		MaxColumnSize: cfg.Limits.MaxColumnSize,
	}
	d := column.NewDatabase(cfg.Database.Name, cfg.Database.BlockSize, limits)

	if *shouldSeed {
		if err := seedDatabaseWithTestRecords(d, *seedNumRecords); err != nil {
			logger.Logger.Fatal(err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, d)
	demo.Start()
}

func setupFlags() {
	configPath = flag.String("config", "", "Path to a TOML configuration file.")
	logLevel = flag.String("log-level", "", "Override the configured log level (debug, info, warn, error).")
	shouldSeed = flag.Bool("seed", false, "Seed the database with a \""+seedTable+"\" table of records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the database with upon startup.")
	flag.Usage = func() {
		fmt.Println("\ncoldb\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
