package handlers

import (
	"net/http"
	"strings"

	"expenseboard/internal/domain/models"
	"expenseboard/internal/http/middleware"
	"expenseboard/internal/repositories"
	"expenseboard/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/daily-reports/my
func GetMyReports(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := repositories.ReportRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load reports", err)
		return
	}
	RespondOK(c, http.StatusOK, list)
}

type reportRequest struct {
	DealerName string `json:"dealer_name" binding:"required"`
	State      string `json:"state" binding:"required"`
	City       string `json:"city" binding:"required"`
	Location   string `json:"location" binding:"required"`
	Notes      string `json:"notes"`
	Amount     string `json:"amount" binding:"required"`
}

// POST /api/daily-reports
func CreateReport(c *gin.Context) {
	var req reportRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	stored, err := repositories.ReportRepository{}.Insert(models.DailyReport{
		UserID:     middleware.GetUserID(c),
		DealerName: strings.TrimSpace(req.DealerName),
		State:      strings.TrimSpace(req.State),
		City:       strings.TrimSpace(req.City),
		Location:   strings.TrimSpace(req.Location),
		Notes:      strings.TrimSpace(req.Notes),
		Amount:     amount,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save report", err)
		return
	}
	RespondOK(c, http.StatusCreated, stored)
}
