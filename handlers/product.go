package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
	"github.com/volatiletech/null"

	"github.com/rentloop/rentloop-server/catalog"
	"github.com/rentloop/rentloop-server/dbHelpers"
	"github.com/rentloop/rentloop-server/firebase"
	"github.com/rentloop/rentloop-server/middlewares"
	"github.com/rentloop/rentloop-server/models"
	"github.com/rentloop/rentloop-server/pricing"
	"github.com/rentloop/rentloop-server/utils"
)

const dateLayout = "2006-01-02"

// catalogSpecFromRequest builds the query engine spec from the url params
func catalogSpecFromRequest(r *http.Request) catalog.Spec {
	query := r.URL.Query()
	page, pageSize := utils.GetPageParams(r, catalog.DefaultPageSize)

	spec := catalog.Spec{
		Search:       query.Get("search"),
		Category:     query.Get("category"),
		Location:     query.Get("location"),
		Availability: models.AvailabilityFilter(query.Get("availability")),
		SortBy:       catalog.SortKey(query.Get("sortBy")),
		SortOrder:    catalog.SortOrder(query.Get("sortOrder")),
		Page:         page,
		PageSize:     pageSize,
	}

	if raw := query.Get("priceMin"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			spec.PriceMin = parsed
		}
	}
	if raw := query.Get("priceMax"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			spec.PriceMax = parsed
		}
	}
	if raw := query.Get("features"); raw != "" {
		spec.Features = strings.Split(raw, ",")
	}
	return spec
}

// GetAllProducts returns one catalog page for the requested filters
func GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := dbHelpers.GetProducts()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get products")
		return
	}

	spec := catalogSpecFromRequest(r)
	pageItems, totalMatching := catalog.Query(products, spec)

	for i := range pageItems {
		links, err := productImageLinks(pageItems[i].ID)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product images")
			return
		}
		pageItems[i].ProductImageLinks = links
	}

	utils.RespondJSON(w, http.StatusOK, struct {
		Products      []models.Product `json:"products"`
		TotalMatching int              `json:"totalMatching"`
		TotalPages    int              `json:"totalPages"`
		Page          int              `json:"page"`
	}{
		Products:      pageItems,
		TotalMatching: totalMatching,
		TotalPages:    catalog.TotalPages(totalMatching, spec.PageSize),
		Page:          spec.Page,
	})
}

// GetProductInfo returns one product with its image links
func GetProductInfo(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.StringToInt(chi.URLParam(r, "productId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	product, err := dbHelpers.GetProductById(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product")
		return
	}

	links, err := productImageLinks(product.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product images")
		return
	}
	product.ProductImageLinks = links

	utils.RespondJSON(w, http.StatusOK, product)
}

// GetAllCategories returns all product categories
func GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := dbHelpers.GetAllCategories()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get categories")
		return
	}
	utils.RespondJSON(w, http.StatusOK, categories)
}

// GetRentalQuote prices a prospective rental of the product
func GetRentalQuote(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.StringToInt(chi.URLParam(r, "productId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	startDate, err := time.Parse(dateLayout, r.URL.Query().Get("startDate"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(dateLayout, r.URL.Query().Get("endDate"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	product, err := dbHelpers.GetProductById(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product")
		return
	}

	utils.RespondJSON(w, http.StatusOK, pricing.Breakdown(startDate, endDate, product.PricePerDay))
}

// CreateProduct lets a verified host publish a new listing
func CreateProduct(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)
	if !host.HostVerified {
		utils.RespondError(w, http.StatusForbidden, nil, "Complete KYC verification before listing products")
		return
	}

	reqBody := struct {
		Name          string       `json:"name"`
		Description   string       `json:"description"`
		Category      string       `json:"category"`
		Tags          []string     `json:"tags"`
		Features      []string     `json:"features"`
		PricePerDay   float64      `json:"pricePerDay"`
		PricePerWeek  null.Float64 `json:"pricePerWeek"`
		PricePerMonth null.Float64 `json:"pricePerMonth"`
		OriginalPrice null.Float64 `json:"originalPrice"`
		InStock       bool         `json:"inStock"`
		StockCount    int          `json:"stockCount"`
		Lat           float64      `json:"lat"`
		Lng           float64      `json:"lng"`
		Address       string       `json:"address"`
		City          string       `json:"city"`
		Country       string       `json:"country"`
		MinRentalDays int          `json:"minRentalDays"`
		MaxRentalDays int          `json:"maxRentalDays"`
		ImageID       int          `json:"imageId"`
	}{}

	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	if reqBody.PricePerDay <= 0 {
		utils.RespondError(w, http.StatusBadRequest, nil, "Day rate must be positive")
		return
	}
	if reqBody.MinRentalDays < 1 {
		reqBody.MinRentalDays = 1
	}
	if reqBody.MaxRentalDays < reqBody.MinRentalDays {
		utils.RespondError(w, http.StatusBadRequest, nil, "Max rental days must not be below min rental days")
		return
	}

	productID, err := dbHelpers.InsertProduct(models.Product{
		Name:          reqBody.Name,
		Description:   reqBody.Description,
		Category:      reqBody.Category,
		Tags:          reqBody.Tags,
		Features:      reqBody.Features,
		PricePerDay:   reqBody.PricePerDay,
		PricePerWeek:  reqBody.PricePerWeek,
		PricePerMonth: reqBody.PricePerMonth,
		OriginalPrice: reqBody.OriginalPrice,
		InStock:       reqBody.InStock,
		StockCount:    reqBody.StockCount,
		Lat:           reqBody.Lat,
		Lng:           reqBody.Lng,
		Address:       reqBody.Address,
		City:          reqBody.City,
		Country:       reqBody.Country,
		OwnerID:       host.ID,
		MinRentalDays: reqBody.MinRentalDays,
		MaxRentalDays: reqBody.MaxRentalDays,
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store product entry")
		return
	}

	if reqBody.ImageID != 0 {
		if err := dbHelpers.LinkProductWithImage(productID, reqBody.ImageID); err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed in storing product image relation")
			return
		}
	}

	product, err := dbHelpers.GetProductById(productID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, product)
}

// ModifyProduct updates one of the host's own listings
func ModifyProduct(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)
	productID, err := utils.StringToInt(chi.URLParam(r, "productId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	existing, err := dbHelpers.GetProductById(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product")
		return
	}
	if existing.OwnerID != host.ID {
		utils.RespondError(w, http.StatusForbidden, nil, "You can only modify your own listings")
		return
	}

	product := *existing
	if err := utils.ParseBody(r.Body, &product); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}
	product.ID = productID
	product.OwnerID = existing.OwnerID

	if err := dbHelpers.ModifyProduct(product); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to update product")
		return
	}

	updated, err := dbHelpers.GetProductById(productID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

// ArchiveProduct soft deletes one of the host's own listings
func ArchiveProduct(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)
	productID, err := utils.StringToInt(chi.URLParam(r, "productId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	if err := dbHelpers.ArchiveProduct(productID, host.ID); err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to archive product")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}

// GetHostProducts lists the host's own listings
func GetHostProducts(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)
	products, err := dbHelpers.GetProductsByOwner(host.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get products")
		return
	}
	utils.RespondJSON(w, http.StatusOK, products)
}

// UploadProductImage stores a listing photo and returns the image id
func UploadProductImage(w http.ResponseWriter, r *http.Request) {
	_, fileBytes, fileName, err := utils.ReadFromFile(r, "image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to read image from request")
		return
	}

	path, err := firebase.UploadToFirebase(fileBytes, fileName)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to upload image")
		return
	}

	imageID, err := dbHelpers.InsertImage(models.BucketLink, path, models.ImageTypeProduct)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to store image entry")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, struct {
		ImageID int `json:"imageId"`
	}{ImageID: imageID})
}

// AddImageForExistingProduct links an uploaded image to a listing
func AddImageForExistingProduct(w http.ResponseWriter, r *http.Request) {
	host := middlewares.UserContext(r)
	productID, err := utils.StringToInt(chi.URLParam(r, "productId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	product, err := dbHelpers.GetProductById(productID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product")
		return
	}
	if product.OwnerID != host.ID {
		utils.RespondError(w, http.StatusForbidden, nil, "You can only modify your own listings")
		return
	}

	reqBody := struct {
		ImageID int `json:"imageId"`
	}{}
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	if err := dbHelpers.LinkProductWithImage(productID, reqBody.ImageID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed in storing product image relation")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}

func productImageLinks(productID int) ([]string, error) {
	imagesInfo, err := dbHelpers.GetImageInfoByProductID(productID)
	if err != nil {
		return nil, err
	}

	links := make([]string, 0, len(imagesInfo))
	for i := range imagesInfo {
		link, err := firebase.GetURL(&imagesInfo[i])
		if err != nil {
			logrus.Errorf("failed to sign url for image %d with error: %+v", imagesInfo[i].ID, err)
			continue
		}
		links = append(links, link)
	}
	return links, nil
}
