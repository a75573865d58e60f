package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bookstore/internal/cart"
	"bookstore/internal/domain"
	applog "bookstore/internal/log"
	"bookstore/internal/services"
	"bookstore/internal/validate"
)

// ShopHandler renders the server-side storefront: the catalog browser and
// the per-session cart pages.
type ShopHandler struct {
	Catalog *services.CatalogService
	Carts   *cart.Store
}

func (h *ShopHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

// Browse handles GET /: the catalog page with pagination, sorting and
// category filter controls. A failed catalog load renders a dismissible
// error banner instead of crashing the view.
func (h *ShopHandler) Browse(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	ct := h.Carts.Get(sid)

	page := validate.Page(c.Query("page", "1"))
	pageSize := validate.PageSize(c.Query("pageSize"), services.DefaultPageSize)
	sortField := c.Query("sortField", "Title")
	sortOrder := c.Query("sortOrder", "asc")
	category := c.Query("category", services.CategoryAll)

	data := fiber.Map{
		"Page": page, "PageSize": pageSize,
		"SortField": sortField, "SortOrder": sortOrder,
		"Category":  category,
		"ItemCount": ct.ItemCount(), "Subtotal": ct.Subtotal(),
		"Added":     c.Query("added"),
		"Books":     []domain.Book{}, "TotalBooks": 0, "TotalPages": 0,
		"Categories": []string{},
		"HasPrev":    false, "HasNext": false, "PrevPage": 1, "NextPage": 1,
	}

	books, total, err := h.Catalog.ListBooks(page, pageSize, sortField, sortOrder, category)
	if err != nil {
		applog.Error(c, "shop.browse", err, nil)
		data["Err"] = "Could not load the catalog. Please retry."
		c.Status(fiber.StatusInternalServerError)
		return render(c, "shop", data)
	}
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "shop.browse", err, nil)
		data["Err"] = "Could not load the catalog. Please retry."
		c.Status(fiber.StatusInternalServerError)
		return render(c, "shop", data)
	}

	ct.LastViewedPage = page

	totalPages := (total + pageSize - 1) / pageSize
	data["Books"] = books
	data["TotalBooks"] = total
	data["TotalPages"] = totalPages
	data["Categories"] = cats
	data["HasPrev"] = page > 1
	data["HasNext"] = page < totalPages
	data["PrevPage"] = page - 1
	data["NextPage"] = page + 1
	return render(c, "shop", data)
}

// AddToCart handles POST /cart/add. The book snapshot comes from the store
// at add time and is kept in the line from then on.
func (h *ShopHandler) AddToCart(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	id, ok := validate.BookID(c.FormValue("bookId"))
	if !ok {
		applog.Security(c, "cart.add.invalid", map[string]any{"bookId": c.FormValue("bookId")})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "That book does not exist."})
	}
	b, err := h.Catalog.GetBook(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "That book does not exist."})
	}
	ct := h.Carts.Get(sid)
	ct.Add(b)
	return c.Redirect("/?page=" + c.Query("page", "1") + "&added=" + url.QueryEscape(b.Title))
}

// ViewCart handles GET /cart.
func (h *ShopHandler) ViewCart(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	ct := h.Carts.Get(sid)
	return render(c, "cart", fiber.Map{
		"Lines":     ct.Lines(),
		"ItemCount": ct.ItemCount(),
		"Subtotal":  ct.Subtotal(),
		"Empty":     ct.Empty(),
		"BackPage":  ct.LastViewedPage,
	})
}

// UpdateCart handles POST /cart/update with an absolute quantity. Zero
// removes the line.
func (h *ShopHandler) UpdateCart(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	if id, ok := validate.BookID(c.FormValue("bookId")); ok {
		h.Carts.Get(sid).UpdateQuantity(id, validate.Qty(c.FormValue("qty")))
	}
	return c.Redirect("/cart")
}

// RemoveFromCart handles POST /cart/remove.
func (h *ShopHandler) RemoveFromCart(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	if id, ok := validate.BookID(c.FormValue("bookId")); ok {
		h.Carts.Get(sid).Remove(id)
	}
	return c.Redirect("/cart")
}

// ClearCart handles POST /cart/clear.
func (h *ShopHandler) ClearCart(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	h.Carts.Get(sid).Clear()
	return c.Redirect("/cart")
}
