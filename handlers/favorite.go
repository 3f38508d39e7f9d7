package handlers

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/rentloop/rentloop-server/dbHelpers"
	"github.com/rentloop/rentloop-server/middlewares"
	"github.com/rentloop/rentloop-server/models"
	"github.com/rentloop/rentloop-server/utils"
)

// AddFavorite marks a product as favorite for the user
func AddFavorite(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)
	productID, err := utils.StringToInt(chi.URLParam(r, "productId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	if _, err := dbHelpers.GetProductById(productID); err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product")
		return
	}

	if err := dbHelpers.AddFavorite(user.ID, productID); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to add favorite")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, models.Response{Success: true})
}

// RemoveFavorite removes a product from the user's favorites
func RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)
	productID, err := utils.StringToInt(chi.URLParam(r, "productId"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid product id")
		return
	}

	if err := dbHelpers.RemoveFavorite(user.ID, productID); err != nil {
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, err, "Product is not in your favorites")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to remove favorite")
		return
	}
	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}

// GetFavoriteIds returns the ids of the user's favorited products
func GetFavoriteIds(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)
	productIDs, err := dbHelpers.GetFavoriteIds(user.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get favorites")
		return
	}
	utils.RespondJSON(w, http.StatusOK, struct {
		ProductIDs []int `json:"productIDs"`
	}{ProductIDs: productIDs})
}

// GetFavoriteProducts returns the user's favorited products in full
func GetFavoriteProducts(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserContext(r)
	products, err := dbHelpers.GetFavoriteProducts(user.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get favorites")
		return
	}

	for i := range products {
		links, err := productImageLinks(products[i].ID)
		if err != nil {
			utils.RespondError(w, http.StatusInternalServerError, err, "Failed to get product images")
			return
		}
		products[i].ProductImageLinks = links
	}
	utils.RespondJSON(w, http.StatusOK, products)
}
