package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/steve-ongera/AgriLink/pkg/resp"
	"github.com/steve-ongera/AgriLink/repository"
	"github.com/steve-ongera/AgriLink/services"
	"github.com/steve-ongera/AgriLink/utils"
)

type ProductController struct {
	Svc *services.CatalogService
}

func NewProductController(s *services.CatalogService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products
func (h *ProductController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	subCategory, _ := strconv.Atoi(c.Query("subCategoryId"))
	farmerID, _ := strconv.Atoi(c.Query("farmerId"))
	countyID, _ := strconv.Atoi(c.Query("countyId"))

	f := repository.ListFilter{
		CategorySlug: c.Query("category"),
		SubCategory:  uint(subCategory),
		FarmerID:     uint(farmerID),
		CountyID:     uint(countyID),
		Search:       c.Query("q"),
		InStockOnly:  c.Query("inStock") == "true",
		FeaturedOnly: c.Query("featured") == "true",
	}
	out, err := h.Svc.List(f, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /products/:slug
func (h *ProductController) Detail(c *gin.Context) {
	p, err := h.Svc.Detail(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /farmer/products
func (h *ProductController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.CreateProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.CreateProduct(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /farmer/products/:id/stock
func (h *ProductController) UpdateStock(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req services.UpdateStockIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.UpdateStock(uid, uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}
