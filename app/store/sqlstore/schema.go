package sqlstore

// Postgres DDL. Ids are 64-bit to match models. subtasks cascade with their task; tasks restrict collection deletion.
const (
	pgCreateCollections = `CREATE TABLE IF NOT EXISTS collections (
    collection_id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL CHECK (name <> '')
);`

	pgCreateTasks = `CREATE TABLE IF NOT EXISTS tasks (
    task_id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL CHECK (title <> ''),
    date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    collection_id BIGINT NOT NULL REFERENCES collections(collection_id) ON DELETE RESTRICT
);`

	pgCreateSubtasks = `CREATE TABLE IF NOT EXISTS subtasks (
    subtask_id BIGSERIAL PRIMARY KEY,
    task_id BIGINT NOT NULL REFERENCES tasks(task_id) ON DELETE CASCADE,
    title TEXT NOT NULL CHECK (title <> ''),
    date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed BOOLEAN NOT NULL DEFAULT FALSE
);`
)

// SQLite DDL. Dates are fixed-width UTC text so ORDER BY date sorts chronologically.
// Foreign keys are enforced only with PRAGMA foreign_keys=ON (set in the DSN).
const (
	sqliteCreateCollections = `CREATE TABLE IF NOT EXISTS collections (
    collection_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL CHECK (name <> '')
);`

	sqliteCreateTasks = `CREATE TABLE IF NOT EXISTS tasks (
    task_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL CHECK (title <> ''),
    date TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0 CHECK (completed IN (0, 1)),
    collection_id INTEGER NOT NULL REFERENCES collections(collection_id) ON DELETE RESTRICT
);`

	sqliteCreateSubtasks = `CREATE TABLE IF NOT EXISTS subtasks (
    subtask_id INTEGER PRIMARY KEY AUTOINCREMENT,
    task_id INTEGER NOT NULL REFERENCES tasks(task_id) ON DELETE CASCADE,
    title TEXT NOT NULL CHECK (title <> ''),
    date TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0 CHECK (completed IN (0, 1))
);`
)

// Index DDL shared by both dialects.
const (
	idxTasksDate       = `CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);`
	idxTasksCollection = `CREATE INDEX IF NOT EXISTS idx_tasks_collection ON tasks(collection_id);`
	idxSubtasksDate    = `CREATE INDEX IF NOT EXISTS idx_subtasks_date ON subtasks(date);`
	idxSubtasksTask    = `CREATE INDEX IF NOT EXISTS idx_subtasks_task ON subtasks(task_id);`
)

var indexDDL = []string{
	idxTasksDate,
	idxTasksCollection,
	idxSubtasksDate,
	idxSubtasksTask,
}

var pgSchemaDDL = []string{
	pgCreateCollections,
	pgCreateTasks,
	pgCreateSubtasks,
}

var sqliteSchemaDDL = []string{
	sqliteCreateCollections,
	sqliteCreateTasks,
	sqliteCreateSubtasks,
}
