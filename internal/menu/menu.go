// Package menu loads the restaurant catalog from a JSON file and renders the
// menu block injected into the LLM system prompt.
package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"restaurant-chat-service/pkg/log"
)

// ContextTTL bounds how long a rendered menu block is reused before it is
// rebuilt from the loaded items.
const ContextTTL = 5 * time.Minute

const unavailableContext = "Menu items are currently unavailable."

// Item is one catalog entry from the data file.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// catalogFile matches the scraper output layout: all items live under the
// selection1 array.
type catalogFile struct {
	Selection1 []Item `json:"selection1"`
}

// Catalog serves menu items and the cached prompt context. Safe for
// concurrent use.
type Catalog struct {
	l     log.Logger
	items []Item

	mu          sync.Mutex
	cachedCtx   string
	cachedCtxAt time.Time

	now func() time.Time
}

// Load reads the catalog from path. A missing or corrupt file is not fatal:
// the service still answers, with the menu reported as unavailable.
func Load(path string, l log.Logger) *Catalog {
	c := &Catalog{l: l, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		if l != nil {
			l.Warnf(context.Background(), "menu: %s not readable, menu unavailable: %v", path, err)
		}
		return c
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		if l != nil {
			l.Warnf(context.Background(), "menu: invalid JSON in %s, menu unavailable: %v", path, err)
		}
		return c
	}

	c.items = file.Selection1
	return c
}

// Items returns the loaded catalog entries.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Loaded reports whether any items were read from the data file.
func (c *Catalog) Loaded() bool {
	return len(c.items) > 0
}

// Context returns the menu text block for the system prompt, rebuilt at most
// once per ContextTTL.
func (c *Catalog) Context() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.cachedCtx != "" && now.Sub(c.cachedCtxAt) <= ContextTTL {
		return c.cachedCtx
	}

	if len(c.items) == 0 {
		c.cachedCtx = unavailableContext
	} else {
		var b strings.Builder
		b.WriteString("Here's our current menu:\n\n")
		for _, item := range c.items {
			fmt.Fprintf(&b, "• %s - %s - %s\n", item.Name, item.Description, item.Price)
		}
		c.cachedCtx = b.String()
	}
	c.cachedCtxAt = now
	return c.cachedCtx
}
