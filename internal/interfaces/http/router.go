package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	AttributeUC *usecase.AttributeUseCase
	VariantUC   *usecase.VariantUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.Tree)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Attributes y valores
	attributes := api.Group("/attributes")
	attributeHandler := NewAttributeHandler(deps.AttributeUC)
	attributes.Get("/", attributeHandler.List)
	attributes.Post("/", attributeHandler.Create)
	attributes.Put("/:id", attributeHandler.Update)
	attributes.Post("/:id/values", attributeHandler.CreateValue)
	attributes.Put("/:id/values/:valueId", attributeHandler.UpdateValue)

	// Variants
	variantHandler := NewVariantHandler(deps.VariantUC)
	api.Post("/products/:productId/variants", variantHandler.Create)
	api.Put("/variants/:id", variantHandler.Update)
}
