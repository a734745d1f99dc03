package handlers

import (
	"net/http"
	"strings"

	"expenseboard/internal/domain/models"
	"expenseboard/internal/export"
	"expenseboard/internal/http/middleware"
	"expenseboard/internal/repositories"
	"expenseboard/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/income
func GetMyIncome(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := repositories.IncomeRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load income records", err)
		return
	}
	RespondOK(c, http.StatusOK, list)
}

type incomeRequest struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

// POST /api/income
func CreateIncome(c *gin.Context) {
	var req incomeRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	stored, err := repositories.IncomeRepository{}.Insert(models.IncomeRecord{
		UserID:      middleware.GetUserID(c),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Amount:      amount,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save income record", err)
		return
	}
	RespondOK(c, http.StatusCreated, stored)
}

// GET /api/income/export
//
// Streams the caller's income records as a CSV download.
func ExportIncomeCSV(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := repositories.IncomeRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load income records", err)
		return
	}

	csv := export.IncomeCSV(list)
	filename := export.IncomeCSVFilename(middleware.GetUserName(c))

	utils.LogEvent(middleware.GetRequestID(c), "income", "export_csv", filename)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
