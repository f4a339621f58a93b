package migrations

import (
	"github.com/NeonArcade/PlayBill/pkg/infra/database"
	"gorm.io/gorm"
)

// Core tables: devices, packages, sessions.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250301_initial_schema",
		Name: "Create core tables: devices, packages, sessions",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE EXTENSION IF NOT EXISTS pgcrypto;
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS devices (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name       TEXT NOT NULL UNIQUE,
					kind       TEXT NOT NULL,
					status     TEXT NOT NULL DEFAULT 'online',
					location   TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS packages (
					id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name             TEXT NOT NULL,
					duration_minutes INTEGER NOT NULL,
					price            NUMERIC(12,2) NOT NULL,
					active           BOOLEAN NOT NULL DEFAULT TRUE,
					created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS sessions (
					id                   UUID PRIMARY KEY,
					device_id            UUID NOT NULL REFERENCES devices(id),
					customer_name        TEXT NOT NULL,
					package_id           UUID NULL REFERENCES packages(id),
					duration_minutes     INTEGER NOT NULL,
					amount_paid          NUMERIC(12,2) NOT NULL DEFAULT 0,
					start_time           TIMESTAMPTZ NOT NULL,
					paused_at            TIMESTAMPTZ,
					total_paused_seconds BIGINT NOT NULL DEFAULT 0,
					pause_reason         TEXT,
					pause_notes          TEXT,
					payment_notes        TEXT,
					status               TEXT NOT NULL DEFAULT 'active',
					end_time             TIMESTAMPTZ,
					created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			// One open session per device, enforced at the database so two
			// terminals cannot seat the same console concurrently.
			if err := db.Exec(`
				CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_open_device
				ON sessions (device_id)
				WHERE status IN ('active', 'paused', 'pending_payment');
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_sessions_status
				ON sessions (status);
			`).Error; err != nil {
				return err
			}

			return nil
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP TABLE IF EXISTS sessions;`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP TABLE IF EXISTS packages;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP TABLE IF EXISTS devices;`).Error
		},
	})
}
