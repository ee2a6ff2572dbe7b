package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS subscriptions (
    name           TEXT PRIMARY KEY,
    amount         REAL NOT NULL,
    billing_cycle  TEXT NOT NULL,
    category       TEXT NOT NULL,
    next_payment   TEXT NOT NULL
);
`
