// Package content holds the copy tables rendered on the landing page.
package content

import (
	"fmt"
	"strings"
)

type Feature struct {
	Icon        string
	Title       string
	Description string
	Color       string
}

// ShowcaseTab is one of the switchable display modes of the showcase block.
type ShowcaseTab struct {
	ID      string
	Label   string
	Icon    string
	Heading string
	Body    string
	Bullets []string
}

type Plan struct {
	ID          string
	Name        string
	PriceCents  int
	Period      string
	Description string
	Highlights  []string
	Featured    bool
}

type Testimonial struct {
	Author string
	Role   string
	Quote  string
	Rating int
}

// Catalog is the full set of copy tables for one render.
type Catalog struct {
	Features     []Feature
	Tabs         []ShowcaseTab
	Plans        []Plan
	Testimonials []Testimonial
}

// Tab returns the showcase tab with id, falling back to the first tab.
func (c *Catalog) Tab(id string) ShowcaseTab {
	for _, t := range c.Tabs {
		if t.ID == id {
			return t
		}
	}
	if len(c.Tabs) == 0 {
		return ShowcaseTab{}
	}
	return c.Tabs[0]
}

// Plan looks up a pricing plan by id.
func (c *Catalog) Plan(id string) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Validate checks the invariants the views rely on.
func (c *Catalog) Validate() error {
	if len(c.Tabs) == 0 {
		return fmt.Errorf("catalog has no showcase tabs")
	}
	if len(c.Plans) == 0 {
		return fmt.Errorf("catalog has no plans")
	}

	seen := make(map[string]bool)
	for _, p := range c.Plans {
		if p.ID == "" || strings.ContainsAny(p.ID, "/?# ") {
			return fmt.Errorf("invalid plan id %q", p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate plan id %q", p.ID)
		}
		seen[p.ID] = true
	}

	tabs := make(map[string]bool)
	for _, t := range c.Tabs {
		if t.ID == "" || tabs[t.ID] {
			return fmt.Errorf("invalid or duplicate tab id %q", t.ID)
		}
		tabs[t.ID] = true
	}
	return nil
}

// FormatPrice renders cents as a dollar amount, dropping zero cents.
func FormatPrice(cents int) string {
	if cents%100 == 0 {
		return fmt.Sprintf("$%d", cents/100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
