package repository

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // postgres driver

	"pionex-dashboard/internal/models"
)

// PostgresBotRepository хранит записи ботов в PostgreSQL.
// Включается переменной DATABASE_URL, переживает перезапуск процесса.
type PostgresBotRepository struct {
	db *sql.DB
}

// NewPostgresBotRepository создает репозиторий поверх готового соединения
func NewPostgresBotRepository(db *sql.DB) *PostgresBotRepository {
	return &PostgresBotRepository{db: db}
}

// OpenPostgres подключается к базе и создает схему
func OpenPostgres(url string) (*PostgresBotRepository, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	repo := NewPostgresBotRepository(db)
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return repo, nil
}

// migrate создает таблицу ботов, если ее нет
func (r *PostgresBotRepository) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS bots (
			name           TEXT PRIMARY KEY,
			pair           TEXT NOT NULL DEFAULT '',
			leverage       DOUBLE PRECISION NOT NULL DEFAULT 1,
			investment     DOUBLE PRECISION NOT NULL DEFAULT 0,
			profit         DOUBLE PRECISION NOT NULL DEFAULT 0,
			profit_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
			last_price     DOUBLE PRECISION NOT NULL DEFAULT 0,
			mark_price     DOUBLE PRECISION NOT NULL DEFAULT 0,
			liq_price      DOUBLE PRECISION,
			updated_at     BIGINT NOT NULL DEFAULT 0
		)`

	_, err := r.db.Exec(query)
	return err
}

// GetAll возвращает все записи
func (r *PostgresBotRepository) GetAll() ([]models.BotRecord, error) {
	query := `
		SELECT name, pair, leverage, investment, profit, profit_percent,
		       last_price, mark_price, liq_price, updated_at
		FROM bots`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bots := make([]models.BotRecord, 0)
	for rows.Next() {
		bot, err := scanBot(rows)
		if err != nil {
			return nil, err
		}
		bots = append(bots, bot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bots, nil
}

// GetByName возвращает запись по имени
func (r *PostgresBotRepository) GetByName(name string) (models.BotRecord, error) {
	query := `
		SELECT name, pair, leverage, investment, profit, profit_percent,
		       last_price, mark_price, liq_price, updated_at
		FROM bots
		WHERE name = $1`

	bot, err := scanBot(r.db.QueryRow(query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BotRecord{}, ErrBotNotFound
		}
		return models.BotRecord{}, err
	}

	return bot, nil
}

// Upsert создает или перезаписывает запись по имени
func (r *PostgresBotRepository) Upsert(bot models.BotRecord) error {
	query := `
		INSERT INTO bots (name, pair, leverage, investment, profit, profit_percent,
		                  last_price, mark_price, liq_price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (name) DO UPDATE SET
			pair = EXCLUDED.pair,
			leverage = EXCLUDED.leverage,
			investment = EXCLUDED.investment,
			profit = EXCLUDED.profit,
			profit_percent = EXCLUDED.profit_percent,
			last_price = EXCLUDED.last_price,
			mark_price = EXCLUDED.mark_price,
			liq_price = EXCLUDED.liq_price,
			updated_at = EXCLUDED.updated_at`

	var liqPrice sql.NullFloat64
	if bot.LiqPrice != nil {
		liqPrice = sql.NullFloat64{Float64: *bot.LiqPrice, Valid: true}
	}

	_, err := r.db.Exec(
		query,
		bot.Name,
		bot.Pair,
		bot.Leverage,
		bot.Investment,
		bot.Profit,
		bot.ProfitPercent,
		bot.LastPrice,
		bot.MarkPrice,
		liqPrice,
		bot.UpdatedAt,
	)
	return err
}

// Delete удаляет запись по имени
func (r *PostgresBotRepository) Delete(name string) error {
	result, err := r.db.Exec(`DELETE FROM bots WHERE name = $1`, name)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBotNotFound
	}

	return nil
}

// Count возвращает число записей
func (r *PostgresBotRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM bots`).Scan(&count)
	return count, err
}

// Close закрывает соединение с базой
func (r *PostgresBotRepository) Close() error {
	return r.db.Close()
}

// scanner покрывает *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBot(s scanner) (models.BotRecord, error) {
	var bot models.BotRecord
	var liqPrice sql.NullFloat64

	err := s.Scan(
		&bot.Name,
		&bot.Pair,
		&bot.Leverage,
		&bot.Investment,
		&bot.Profit,
		&bot.ProfitPercent,
		&bot.LastPrice,
		&bot.MarkPrice,
		&liqPrice,
		&bot.UpdatedAt,
	)
	if err != nil {
		return models.BotRecord{}, err
	}

	if liqPrice.Valid {
		bot.LiqPrice = &liqPrice.Float64
	}

	return bot, nil
}
