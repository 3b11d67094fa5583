package models

import "time"

// APIKey mirrors a row of the api_keys table.
type APIKey struct {
	ID             int64     `db:"api_key_id"`
	Name           string    `db:"name"`
	APIKey         string    `db:"api_key"`
	ExpirationDate time.Time `db:"expiration_date"`
	CreatedAt      time.Time `db:"created_at"`
}
