package store

import (
	"context"
	"fmt"

	"github.com/Priya8975/pawpal-landing/internal/content"
	"github.com/jackc/pgx/v5"
)

// LoadCatalog reads every copy table ordered by position.
func (s *PostgresStore) LoadCatalog(ctx context.Context) (*content.Catalog, error) {
	var c content.Catalog

	rows, err := s.pool.Query(ctx, `
		SELECT icon, title, description, color FROM features ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying features: %w", err)
	}
	c.Features, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.Feature, error) {
		var f content.Feature
		err := row.Scan(&f.Icon, &f.Title, &f.Description, &f.Color)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning features: %w", err)
	}

	rows, err = s.pool.Query(ctx, `
		SELECT id, label, icon, heading, body, bullets FROM showcase_tabs ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying showcase tabs: %w", err)
	}
	c.Tabs, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.ShowcaseTab, error) {
		var t content.ShowcaseTab
		err := row.Scan(&t.ID, &t.Label, &t.Icon, &t.Heading, &t.Body, &t.Bullets)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning showcase tabs: %w", err)
	}

	rows, err = s.pool.Query(ctx, `
		SELECT id, name, price_cents, period, description, highlights, featured
		FROM plans ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	c.Plans, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.Plan, error) {
		var p content.Plan
		err := row.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Period, &p.Description, &p.Highlights, &p.Featured)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning plans: %w", err)
	}

	rows, err = s.pool.Query(ctx, `
		SELECT author, role, quote, rating FROM testimonials ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying testimonials: %w", err)
	}
	c.Testimonials, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.Testimonial, error) {
		var t content.Testimonial
		err := row.Scan(&t.Author, &t.Role, &t.Quote, &t.Rating)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning testimonials: %w", err)
	}

	return &c, nil
}

// SeedCatalog writes c into empty copy tables. Tables that already hold
// plans are left untouched.
func (s *PostgresStore) SeedCatalog(ctx context.Context, c *content.Catalog) (bool, error) {
	var plans int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM plans`).Scan(&plans); err != nil {
		return false, fmt.Errorf("counting plans: %w", err)
	}
	if plans > 0 {
		return false, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for i, f := range c.Features {
		batch.Queue(`INSERT INTO features (position, icon, title, description, color) VALUES ($1, $2, $3, $4, $5)`,
			i, f.Icon, f.Title, f.Description, f.Color)
	}
	for i, t := range c.Tabs {
		batch.Queue(`INSERT INTO showcase_tabs (id, position, label, icon, heading, body, bullets) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, i, t.Label, t.Icon, t.Heading, t.Body, t.Bullets)
	}
	for i, p := range c.Plans {
		batch.Queue(`INSERT INTO plans (id, position, name, price_cents, period, description, highlights, featured) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, i, p.Name, p.PriceCents, p.Period, p.Description, p.Highlights, p.Featured)
	}
	for i, t := range c.Testimonials {
		batch.Queue(`INSERT INTO testimonials (position, author, role, quote, rating) VALUES ($1, $2, $3, $4, $5)`,
			i, t.Author, t.Role, t.Quote, t.Rating)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return false, fmt.Errorf("seeding catalog: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("committing catalog seed: %w", err)
	}
	return true, nil
}
