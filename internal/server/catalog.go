package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/carta/internal/catalog/domain"
)

type createProductRequest struct {
	CategoryID  string      `json:"category_id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Price       json.Number `json:"price"`
	ImageURL    *string     `json:"image_url"`
}

func (s *Server) DashboardCatalog(c *gin.Context) {
	resp, err := s.catalogSvc.Catalog(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.CreateProduct(c.Request.Context(), catalogdomain.CreateProductRequest{
		CategoryID:  strings.TrimSpace(req.CategoryID),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price.String(),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updatePriceRequest struct {
	Price json.Number `json:"price"`
}

func (s *Server) UpdateProductPrice(c *gin.Context) {
	var req updatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.catalogSvc.UpdatePrice(c.Request.Context(), catalogdomain.UpdatePriceRequest{
		ProductID: strings.TrimSpace(c.Param("id")),
		Price:     req.Price.String(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type setAvailabilityRequest struct {
	Available *bool `json:"available"`
}

func (s *Server) SetProductAvailability(c *gin.Context) {
	var req setAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Available == nil {
		AbortWithError(c, newValidationError("available", "required", "available is required"))
		return
	}

	resp, err := s.catalogSvc.SetAvailability(c.Request.Context(), catalogdomain.SetAvailabilityRequest{
		ProductID: strings.TrimSpace(c.Param("id")),
		Available: *req.Available,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
