package db

// Schema bootstrap statements, executed in order at startup. The two dialects
// differ only in key generation and timestamp types.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		wallet_address TEXT NOT NULL UNIQUE,
		x_profile TEXT NOT NULL DEFAULT '',
		points INTEGER NOT NULL DEFAULT 0,
		last_boost_time TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		link TEXT NOT NULL,
		points INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS user_tasks (
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		task_id INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, task_id)
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		section TEXT NOT NULL,
		position INTEGER NOT NULL,
		contract_address TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		ticker TEXT NOT NULL DEFAULT '',
		boosts INTEGER NOT NULL DEFAULT 0,
		mcap TEXT NOT NULL DEFAULT '',
		liq TEXT NOT NULL DEFAULT '',
		vol TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		chain TEXT NOT NULL DEFAULT '',
		telegram_link TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_section_position ON listings (section, position)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		wallet_address TEXT NOT NULL UNIQUE,
		x_profile TEXT NOT NULL DEFAULT '',
		points BIGINT NOT NULL DEFAULT 0,
		last_boost_time TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		description TEXT NOT NULL,
		link TEXT NOT NULL,
		points BIGINT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS user_tasks (
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		task_id BIGINT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		completed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, task_id)
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		section TEXT NOT NULL,
		position BIGINT NOT NULL,
		contract_address TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		ticker TEXT NOT NULL DEFAULT '',
		boosts BIGINT NOT NULL DEFAULT 0,
		mcap TEXT NOT NULL DEFAULT '',
		liq TEXT NOT NULL DEFAULT '',
		vol TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		chain TEXT NOT NULL DEFAULT '',
		telegram_link TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_listings_section_position ON listings (section, position)`,
}
