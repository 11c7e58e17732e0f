// SoleStyle | 2026
// handler.go

package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/solestyle/api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{identifier}", h.GetProduct)
	r.Get("/categories", h.ListCategories)
	r.Get("/brands", h.ListBrands)
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r)

	resp, err := h.service.ListProducts(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")

	detail, err := h.service.GetProduct(r.Context(), identifier)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, detail)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, categories)
}

func (h *Handler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrands(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, brands)
}

func parseListParams(r *http.Request) ListProductsParams {
	q := r.URL.Query()

	params := ListProductsParams{
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Gender:   q.Get("gender"),
		Search:   q.Get("search"),
		Sort:     q.Get("sortBy"),
		Order:    q.Get("sortOrder"),
		Featured: q.Get("featured") == "true",
	}

	params.Page, _ = strconv.Atoi(q.Get("page"))
	params.Limit, _ = strconv.Atoi(q.Get("limit"))

	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		params.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		params.MaxPrice = &v
	}

	return params
}
