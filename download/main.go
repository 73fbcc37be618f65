package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/marisvali/tetro/world"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"COALESCE(end_moment, start_moment), " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM playthroughs")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.endMoment, &row.user,
			&row.releaseVersion, &row.simulationVersion, &row.inputVersion,
			&row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())
	slog.Info("fetched playthroughs", "count", len(dbRows))

	for i := range dbRows {
		filename := RecordingFilename(dbRows[i])
		Check(os.MkdirAll(dbRows[i].user, 0755))
		WriteFile(filename, dbRows[i].data)
		logRecording(filename, dbRows[i])
	}
}

// RecordingFilename is where a playthrough is saved, for example
// vali/20250131-142501.tetro-1-1. The extension carries the simulation and
// input versions so that it is obvious which build can replay the file.
func RecordingFilename(r dbRow) string {
	m := r.startMoment
	return fmt.Sprintf("%s/%d%02d%02d-%02d%02d%02d.tetro-%d-%d", r.user,
		m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		r.simulationVersion, r.inputVersion)
}

// logRecording reports what was saved. Recordings made by the current
// versions are also decoded, as a sanity check on the upload.
func logRecording(filename string, r dbRow) {
	attrs := []any{
		"file", filename,
		"id", r.id,
		"release", r.releaseVersion,
		"duration", r.endMoment.Sub(r.startMoment),
	}
	if r.inputVersion != world.InputVersion {
		slog.Info("saved old playthrough", attrs...)
		return
	}
	p, err := world.DeserializePlaythrough(r.data)
	if err != nil {
		slog.Warn("saved corrupt playthrough", append(attrs, "error", err)...)
		return
	}
	if p.Id != r.id {
		slog.Warn("saved playthrough with mismatched id",
			append(attrs, "fileId", p.Id)...)
		return
	}
	slog.Info("saved playthrough", append(attrs, "frames", len(p.History))...)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("TETRO_DBUSER"),
		Passwd:               os.Getenv("TETRO_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("TETRO_DBADDR"),
		DBName:               os.Getenv("TETRO_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	endMoment         time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
