// handlers/admin/admin.go - Admin handler wiring
package admin

import (
	"cyberhunt/storage"

	"github.com/go-playground/validator/v10"
)

var (
	store    storage.Store
	validate = validator.New()
)

// Init wires the admin handlers to a store.
func Init(s storage.Store) {
	store = s
}
