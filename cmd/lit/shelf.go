package main

import (
	"github.com/zyho/litnotes/internal/config"
	"github.com/zyho/litnotes/internal/index"
	"github.com/zyho/litnotes/internal/render"
	"github.com/zyho/litnotes/internal/store"
)

// loadShelf locates the shelf and loads config plus the paper store.
// Exits on any failure: a malformed store is corrupted durable state
// and no command should proceed past it.
func loadShelf() (string, *config.Config, *store.Store) {
	root := mustFindShelf()

	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	st, err := store.Load(cfg.StorePath(root))
	if err != nil {
		exitWithError(ExitDataError, "loading store: %v", err)
	}

	return root, cfg, st
}

// commit persists a mutated store and regenerates the document.
// The store is saved first; the document is always re-derived from
// the full store contents.
func commit(root string, cfg *config.Config, st *store.Store) string {
	if err := st.Save(cfg.StorePath(root)); err != nil {
		exitWithError(ExitError, "saving store: %v", err)
	}

	doc, err := render.Render(st)
	if err != nil {
		exitWithError(ExitDataError, "rendering document: %v", err)
	}

	docPath := cfg.RenderPath(root)
	if err := doc.Write(docPath); err != nil {
		exitWithError(ExitError, "writing document: %v", err)
	}

	return docPath
}

// openFreshIndex opens the query index, rebuilding it when the store
// file changed since the last rebuild.
func openFreshIndex(root string, cfg *config.Config, st *store.Store) *index.DB {
	db, err := index.Open(config.IndexPath(root))
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}

	storePath := cfg.StorePath(root)
	stale, err := db.Stale(storePath)
	if err != nil {
		db.Close()
		exitWithError(ExitError, "checking index: %v", err)
	}
	if stale {
		if err := db.Rebuild(st, storePath); err != nil {
			db.Close()
			exitWithError(ExitError, "rebuilding index: %v", err)
		}
	}

	return db
}
