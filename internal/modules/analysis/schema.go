package analysis

import "database/sql"

// SnapshotsSchema holds the most recent computation results for redisplay.
// Rows are write-once; the newest row per kind is the live snapshot.
const SnapshotsSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_kind_created ON snapshots(kind, created_at);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(SnapshotsSchema)
	return err
}
