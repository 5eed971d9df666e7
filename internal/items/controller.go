package items

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) ListItems(ctx *gin.Context) {
	resp, err := c.service.ListItems(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list items")
		return
	}

	response.JSON(ctx, http.StatusOK, resp)
}

func (c *Controller) GetItem(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetItem(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(ctx, http.StatusNotFound, "Item not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get item")
		return
	}

	response.JSON(ctx, http.StatusOK, item)
}

func (c *Controller) CreateItem(ctx *gin.Context) {
	var req CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := c.service.CreateItem(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create item")
		return
	}

	response.JSON(ctx, http.StatusCreated, item)
}

func (c *Controller) UpdateItem(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := c.service.UpdateItem(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(ctx, http.StatusNotFound, "Item not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update item")
		return
	}

	response.JSON(ctx, http.StatusOK, item)
}

func (c *Controller) DeleteItem(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteItem(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(ctx, http.StatusNotFound, "Item not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	response.JSON(ctx, http.StatusOK, response.MessageResponse{Message: "Item deleted"})
}

// itemID parses the :id path parameter; on failure it writes the 400 itself.
func itemID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid item ID")
		return 0, false
	}
	return uint(id), true
}
