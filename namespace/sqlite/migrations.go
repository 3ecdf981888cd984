package sqlite

import "github.com/hayeah/goo"

// Migrations creates the CCDB directories and typeTables schema. Run them
// with goo.DBMigrator.Up before constructing a Store.
var Migrations = []goo.Migration{
	{
		Name: "create_directories_table",
		Up: `
			CREATE TABLE IF NOT EXISTS directories (
				id INTEGER PRIMARY KEY,
				name TEXT NOT NULL,
				parentId INTEGER NOT NULL DEFAULT 0,
				comment TEXT NOT NULL DEFAULT ''
			);
			CREATE INDEX IF NOT EXISTS directories_parent ON directories (parentId);
		`,
	},
	{
		Name: "create_type_tables_table",
		Up: `
			CREATE TABLE IF NOT EXISTS typeTables (
				id INTEGER PRIMARY KEY,
				name TEXT NOT NULL,
				directoryId INTEGER NOT NULL DEFAULT 0,
				nRows INTEGER NOT NULL DEFAULT 1,
				nColumns INTEGER NOT NULL DEFAULT 1,
				comments TEXT NOT NULL DEFAULT ''
			);
			CREATE INDEX IF NOT EXISTS type_tables_directory ON typeTables (directoryId);
		`,
	},
}
