package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
	"github.com/zonehead/commerce-api/internal/core/service"
)

type productImporter interface {
	Import(ctx context.Context, actor *domain.Actor, rows []service.ImportRow) (*service.ImportResult, error)
}

type imageGenerator interface {
	Generate(ctx context.Context, actor *domain.Actor, name string) (string, error)
}

// SheetParser turns an uploaded workbook into import rows.
type SheetParser func(r io.Reader) ([]service.ImportRow, error)

// CatalogHandler serves products and categories to admins and users.
type CatalogHandler struct {
	products   recordManager[domain.Product]
	categories recordManager[domain.Category]
	importer   productImporter
	parse      SheetParser
	images     ports.ImageStore
	generator  imageGenerator
}

func NewCatalogHandler(
	products recordManager[domain.Product],
	categories recordManager[domain.Category],
	importer productImporter,
	parse SheetParser,
	images ports.ImageStore,
	generator imageGenerator,
) *CatalogHandler {
	return &CatalogHandler{
		products:   products,
		categories: categories,
		importer:   importer,
		parse:      parse,
		images:     images,
		generator:  generator,
	}
}

type productRequest struct {
	Title    string  `json:"title" form:"title" validate:"required"`
	Desc     string  `json:"desc" form:"desc"`
	Price    float64 `json:"price" form:"price" validate:"gte=0"`
	MRP      float64 `json:"mrp" form:"mrp" validate:"gte=0"`
	Category string  `json:"category" form:"category"`
}

type categoryRequest struct {
	Title string `json:"title" form:"title" validate:"required"`
	Desc  string `json:"desc" form:"desc"`
}

type aiImageRequest struct {
	Name string `json:"name" validate:"required"`
}

type aiImageResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

// AddProduct creates a product from a form, with an optional "image" file.
//
// @Summary      Add product
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title     formData  string  true   "Unique title"
// @Param        desc      formData  string  false  "Description"
// @Param        price     formData  number  false  "Price"
// @Param        mrp       formData  number  false  "MRP"
// @Param        category  formData  string  false  "Category"
// @Param        image     formData  file    false  "jpeg/jpg/png image"
// @Success      201  {object}  domain.Product
// @Failure      400  {object}  messageResponse
// @Router       /admin/add-product [post]
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, err := saveOptionalImage(c, h.images, "image")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	p, err := h.products.Create(ctx, actor, &domain.Product{
		Title:    req.Title,
		Desc:     req.Desc,
		Price:    req.Price,
		MRP:      req.MRP,
		Category: req.Category,
		Image:    image,
	})
	if err != nil {
		discardImage(ctx, h.images, image)
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// ImportProducts bulk-creates products from an xlsx upload in field "file".
// Columns: title, desc, price, mrp, category; the first row is a header.
//
// @Summary      Import products from xlsx
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "xlsx workbook"
// @Success      200  {object}  service.ImportResult
// @Failure      400  {object}  messageResponse
// @Router       /admin/import-products [post]
func (h *CatalogHandler) ImportProducts(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := h.parse(f)
	if err != nil {
		return err
	}
	res, err := h.importer.Import(c.Request().Context(), actor, rows)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// ListProducts returns the whole catalog.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /admin/all-products [get]
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return listRecords(c, h.products)
}

// @Summary      Delete product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/delete-product/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	return deleteRecord(c, h.products, "product")
}

// @Summary      Add category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  messageResponse
// @Router       /admin/add-category [post]
func (h *CatalogHandler) AddCategory(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cat, err := h.categories.Create(c.Request().Context(), actor, &domain.Category{Title: req.Title, Desc: req.Desc})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /admin/all-categories [get]
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return listRecords(c, h.categories)
}

// @Summary      Delete category
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/delete-category/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	return deleteRecord(c, h.categories, "category")
}

// AIImage returns a generated image URL for a product name.
//
// @Summary      Generate product image
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      aiImageRequest  true  "Product name"
// @Success      200   {object}  aiImageResponse
// @Failure      400   {object}  messageResponse
// @Router       /admin/ai-image [post]
func (h *CatalogHandler) AIImage(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req aiImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product name is required")
	}

	url, err := h.generator.Generate(c.Request().Context(), actor, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, "product name is required")
		}
		return err
	}
	return c.JSON(http.StatusOK, aiImageResponse{Message: "Image generated successfully!", ImageURL: url})
}
