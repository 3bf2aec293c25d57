package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/sauls8/nwa-jumpers/internal/adaptor"
)

func wireInventory(r chi.Router, inventoryHandler *adaptor.InventoryHandler) {
	r.Route("/api/inventory", func(r chi.Router) {
		// GET /api/inventory - Full catalog (active_only=true to filter)
		r.Get("/", inventoryHandler.ListInflatables)

		// GET /api/inventory/category/{category} - Active items in a category
		r.Get("/category/{category}", inventoryHandler.ListByCategory)

		// POST /api/inventory/bulk - Seed multiple items at once
		r.Post("/bulk", inventoryHandler.BulkCreateInflatables)

		// GET /api/inventory/{id} - One catalog item
		r.Get("/{id}", inventoryHandler.GetInflatable)

		// POST /api/inventory - Add a catalog item
		r.Post("/", inventoryHandler.CreateInflatable)

		// PUT /api/inventory/{id} - Edit a catalog item
		r.Put("/{id}", inventoryHandler.UpdateInflatable)

		// DELETE /api/inventory/{id} - Soft delete (clears the active flag)
		r.Delete("/{id}", inventoryHandler.DeleteInflatable)
	})
}
