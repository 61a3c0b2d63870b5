package models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GenerateModels migrates the schema and emits typed query helpers for every
// model into ./generated. Run via GENERATE_MODELS=true; development only.
func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	g.ApplyBasic(
		User{},
		Article{},
		Tag{},
		ArticleTag{},
		Favorite{},
		Follow{},
		Comment{},
	)

	fmt.Println("Migrating models...")
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
		Logger:                 newLogger,
	})
	if err := migrateDB.AutoMigrate(
		&User{},
		&Article{},
		&Tag{},
		&ArticleTag{},
		&Favorite{},
		&Follow{},
		&Comment{},
	); err != nil {
		fmt.Printf("Error migrating models: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generating query helpers...")
	g.Execute()
	fmt.Println("Done.")
}

// AllModels lists every persisted model for migration.
func AllModels() []any {
	return []any{
		&User{},
		&Article{},
		&Tag{},
		&ArticleTag{},
		&Favorite{},
		&Follow{},
		&Comment{},
	}
}
