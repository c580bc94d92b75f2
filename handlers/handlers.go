// handlers/handlers.go - Shared handler wiring
package handlers

import (
	"cyberhunt/services"
	"cyberhunt/storage"

	"github.com/go-playground/validator/v10"
)

var (
	store    storage.Store
	game     *services.GameService
	validate = validator.New()
)

// Init wires the handlers to a store. Main passes the PostgreSQL store,
// tests pass the in-memory one.
func Init(s storage.Store) {
	store = s
	game = services.NewGameService(s)
}
