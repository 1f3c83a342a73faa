// Package customer exposes the external customer directory search.
package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casedesk/internal/application/customer/usecases"
	"casedesk/internal/shared/utils"
)

type CustomerHandler struct {
	searchUC usecases.SearchCustomersExecutor
}

func NewCustomerHandler(searchUC usecases.SearchCustomersExecutor) *CustomerHandler {
	return &CustomerHandler{searchUC: searchUC}
}

// Search handles GET /api/customers/search
func (h *CustomerHandler) Search(c *gin.Context) {
	result, err := h.searchUC.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"customers": result.Customers})
}
