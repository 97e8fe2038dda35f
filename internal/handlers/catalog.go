package handlers

import (
	"net/http"

	"github.com/DanteArceneaux/wegovy/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(catalog *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (handler *CatalogHandler) Recipes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, handler.catalog.Recipes())
}

func (handler *CatalogHandler) Staples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, handler.catalog.Staples())
}
