/*
Package catalog stores named message templates and renders them with a
formatter.

# Stores

Two Store implementations are provided:

	MemoryStore  in-process map, for tests
	SQLiteStore  pure Go SQLite (modernc.org/sqlite), one row per template

Both are safe for concurrent use and return ErrStoreClosed after Close.

# Rendering

	store := catalog.NewMemoryStore()
	c := catalog.New(store, f)

	if _, err := c.ImportFile("templates.yaml"); err != nil {
	    return err
	}

	msg, err := c.Render(ctx, "welcome")
	if errors.Is(err, catalog.ErrNotFound) {
	    // no template named "welcome"
	}

RenderStrict refuses to return output that still contains placeholders:

	msg, err := c.RenderStrict(ctx, "welcome")
	var unresolved *catalog.UnresolvedError
	if errors.As(err, &unresolved) {
	    log.Printf("missing bindings: %v", unresolved.Expressions)
	}
*/
package catalog
