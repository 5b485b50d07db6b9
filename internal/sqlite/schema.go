// Schema DDL for the run-history tables.
package sqlite

const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    rule TEXT NOT NULL,
    iterations INTEGER NOT NULL,
    shots INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createRunCounts = `CREATE TABLE IF NOT EXISTS run_counts (
    run_id TEXT NOT NULL,
    bitstring TEXT NOT NULL,
    count INTEGER NOT NULL,
    probability REAL NOT NULL,
    valid INTEGER NOT NULL,
    PRIMARY KEY (run_id, bitstring),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`
)

// schemaStatements lists the DDL executed on Attach, in order.
var schemaStatements = []string{
	createRuns,
	createRunCounts,
}
