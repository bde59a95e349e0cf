package store

import (
	"database/sql"
	"fmt"
	"strconv"
)

// GetConfig reads one configuration override.
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("config key not found: %s", key)
		}
		return "", err
	}
	return value, nil
}

// GetConfigFloat reads one override as a float.
func (s *Store) GetConfigFloat(key string) (float64, error) {
	value, err := s.GetConfig(key)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(value, 64)
}

// SetConfig writes one configuration override.
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

// SetConfigFloat writes one override as a float.
func (s *Store) SetConfigFloat(key string, value float64) error {
	return s.SetConfig(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// GetAllConfig returns every stored override.
func (s *Store) GetAllConfig() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM config")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	config := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		config[key] = value
	}
	return config, rows.Err()
}
