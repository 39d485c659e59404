package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrate creates the identities, campaigns and donations tables if
// they do not exist.
func AutoMigrate(retries int, db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS identities (
			id INT AUTO_INCREMENT PRIMARY KEY,
			space ENUM('user','admin') NOT NULL,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT '',
			password VARCHAR(100) NOT NULL,
			photo VARCHAR(255) NOT NULL DEFAULT '',
			UNIQUE KEY uq_space_email (space, email)
		);`,
		`CREATE TABLE IF NOT EXISTS campaigns (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			goal DOUBLE NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			status ENUM('active','inactive') NOT NULL DEFAULT 'active',
			raised DOUBLE NOT NULL DEFAULT 0,
			image VARCHAR(255) NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS donations (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT NOT NULL,
			campaign_id INT NOT NULL,
			amount DOUBLE NOT NULL,
			message VARCHAR(255) NOT NULL,
			date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES identities(id) ON DELETE CASCADE,
			FOREIGN KEY (campaign_id) REFERENCES campaigns(id) ON DELETE CASCADE
		);`,
	}

	for _, query := range queries {
		_, err := db.Exec(query)
		if err != nil {
			for i := 0; i < retries; i++ {
				time.Sleep(1 * time.Second)
				_, err = db.Exec(query)
				if err == nil {
					break
				}
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
