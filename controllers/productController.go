package controllers

import (
	"net/http"

	"github.com/Kariqs/hanythrift-api/middlewares"
	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog *services.CatalogStore
}

func NewProductController(catalog *services.CatalogStore) *ProductController {
	return &ProductController{catalog: catalog}
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var product models.ProductCreate
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	created, err := c.catalog.Create(ctx.Request.Context(), middlewares.CurrentUser(ctx), product)
	if err != nil {
		respondWithError(ctx, err, msgProductNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, created)
}

// UploadProductImage stores the multipart "image" file and sets it as the
// product's image_url.
func (c *ProductController) UploadProductImage(ctx *gin.Context) {
	productID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithBindError(ctx, err)
		return
	}
	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, err, msgProductNotFound)
		return
	}
	defer f.Close()

	product, err := c.catalog.AttachImage(ctx.Request.Context(), middlewares.CurrentUser(ctx), productID, services.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Body:        f,
	})
	if err != nil {
		respondWithError(ctx, err, msgProductNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, product)
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	var query models.ProductQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	products, err := c.catalog.List(ctx.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondWithError(ctx, err, msgProductNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	productID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	product, err := c.catalog.Get(ctx.Request.Context(), productID)
	if err != nil {
		respondWithError(ctx, err, msgProductNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, product)
}
