// SoleStyle | 2026
// handler.go

package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/solestyle/api/internal/catalog"
	"github.com/solestyle/api/internal/contact"
	"github.com/solestyle/api/internal/core"
	"github.com/solestyle/api/internal/order"
	"github.com/solestyle/api/internal/user"
)

// The dashboard is a composition surface: every list it renders is owned
// by another domain, pulled in through a narrow read interface.

type ProductLister interface {
	ListProductsForAdmin(
		ctx context.Context,
		limit, offset int,
	) ([]catalog.AdminProductRow, int, error)
	ListCategoriesForAdmin(ctx context.Context) ([]catalog.AdminCategoryRow, error)
}

type OrderReader interface {
	RecentOrdersForAdmin(ctx context.Context) ([]order.AdminOrderRow, error)
	ListOrdersForAdmin(
		ctx context.Context,
		limit, offset int,
	) ([]order.AdminOrderRow, int, error)
}

type UserLister interface {
	ListForAdmin(
		ctx context.Context,
		limit, offset int,
	) ([]user.AdminUserRow, int, error)
}

type MessageLister interface {
	ListMessagesForAdmin(
		ctx context.Context,
		limit, offset int,
	) ([]contact.Message, int, error)
}

type HandlerConfig struct {
	Service  *Service
	Catalog  ProductLister
	Orders   OrderReader
	Users    UserLister
	Messages MessageLister
}

type Handler struct {
	cfg HandlerConfig
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	adminOnly func(http.Handler) http.Handler,
	login http.HandlerFunc,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", login)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Get("/stats", h.Stats)
			r.Get("/orders/recent", h.RecentOrders)
			r.Get("/orders", h.Orders)
			r.Get("/products", h.Products)
			r.Get("/categories", h.Categories)
			r.Get("/users", h.Users)
			r.Get("/messages", h.Messages)
		})
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.cfg.Service.Stats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}

func (h *Handler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.cfg.Orders.RecentOrdersForAdmin(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, orders)
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, 20)

	orders, total, err := h.cfg.Orders.ListOrdersForAdmin(
		r.Context(),
		limit,
		(page-1)*limit,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(w, orders, page, limit, total)
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, 20)

	products, total, err := h.cfg.Catalog.ListProductsForAdmin(
		r.Context(),
		limit,
		(page-1)*limit,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(w, products, page, limit, total)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.cfg.Catalog.ListCategoriesForAdmin(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, categories)
}

func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, 20)

	users, total, err := h.cfg.Users.ListForAdmin(
		r.Context(),
		limit,
		(page-1)*limit,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(w, users, page, limit, total)
}

func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r, 20)

	messages, total, err := h.cfg.Messages.ListMessagesForAdmin(
		r.Context(),
		limit,
		(page-1)*limit,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(w, messages, page, limit, total)
}

func pageParams(r *http.Request, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}
