package exporter

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rowingdude/analyzeMFT-sub000/MFT"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
	record_number   INTEGER,
	validity        TEXT,
	record_type     TEXT,
	sequence        INTEGER,
	parent_record   TEXT,
	filename        TEXT,
	si_creation     TEXT,
	si_modification TEXT,
	si_access       TEXT,
	si_entry        TEXT,
	fn_creation     TEXT,
	fn_modification TEXT,
	fn_access       TEXT,
	fn_entry        TEXT,
	object_id       TEXT,
	size            TEXT,
	timestamp_shift TEXT,
	subsecond_zero  TEXT,
	checksum        TEXT,
	notes           TEXT
);`

const sqliteInsert = `INSERT INTO records VALUES
(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (exp Exporter) exportSqlite(filename string, records MFT.Records) error {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return fmt.Errorf("opening sqlite output %s: %w", filename, err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(sqliteInsert)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for idx := range records {
		row := exp.buildRow(&records[idx])
		args := make([]interface{}, len(row))
		for i, value := range row {
			args[i] = value
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
