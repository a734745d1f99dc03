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

// GET /api/expenses/my
func GetMyExpenses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := repositories.ExpenseRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load expenses", err)
		return
	}
	RespondOK(c, http.StatusOK, list)
}

type expenseRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Amount      string `json:"amount" binding:"required"`
}

// POST /api/expenses
func CreateExpense(c *gin.Context) {
	var req expenseRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	repo := repositories.ExpenseRepository{}
	ok, err := repo.HasCategory(strings.TrimSpace(req.Category))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check category", err)
		return
	}
	if !ok {
		RespondError(c, http.StatusBadRequest, "unknown category", nil)
		return
	}

	stored, err := repo.Insert(models.Expense{
		UserID:      middleware.GetUserID(c),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Amount:      amount,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save expense", err)
		return
	}
	RespondOK(c, http.StatusCreated, stored)
}

// GET /api/categories/expense
func GetExpenseCategories(c *gin.Context) {
	list, err := repositories.ExpenseRepository{}.Categories()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load categories", err)
		return
	}
	RespondOK(c, http.StatusOK, list)
}

// GET /api/expenses/report
//
// Returns the formatted multi-page expense report PDF for the caller's
// own records.
func GetExpenseReportPDF(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := repositories.ExpenseRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load expenses", err)
		return
	}

	blob, filename, err := export.ExpenseReportPDF(middleware.GetUserName(c), list)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", blob)
}
