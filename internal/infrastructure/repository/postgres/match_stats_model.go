package postgres

import "time"

type matchStatTableModel struct {
	ID         int64      `db:"id"`
	Season     string     `db:"season"`
	Team       string     `db:"team"`
	Round      int        `db:"round"`
	Payload    string     `db:"payload"`
	IngestedAt time.Time  `db:"ingested_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type matchStatInsertModel struct {
	Season  string `db:"season"`
	Team    string `db:"team"`
	Round   int    `db:"round"`
	Payload string `db:"payload"`
}
