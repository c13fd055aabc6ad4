package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id           INTEGER PRIMARY KEY,
    date         TEXT NOT NULL,
    description  TEXT NOT NULL,
    amount_cents INTEGER NOT NULL,
    category     TEXT
);

CREATE TABLE IF NOT EXISTS budgets (
    month        INTEGER PRIMARY KEY,
    amount_cents INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value INTEGER NOT NULL
);
`
