package handlers

import (
	"net/http"
	"strconv"

	"expenseboard/internal/domain"
	"expenseboard/internal/http/middleware"
	"expenseboard/internal/repositories"
	"expenseboard/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/:resource/all
func GetAllRecords(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			data any
			err  error
		)
		switch resource {
		case "expenses":
			data, err = repositories.ExpenseRepository{}.ListAll()
		case "travel":
			data, err = repositories.TravelRepository{}.ListAll()
		case "daily-reports":
			data, err = repositories.ReportRepository{}.ListAll()
		case "income":
			data, err = repositories.IncomeRepository{}.ListAll()
		default:
			RespondError(c, http.StatusBadRequest, "unknown resource "+resource, nil)
			return
		}
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to load records", err)
			return
		}
		RespondOK(c, http.StatusOK, data)
	}
}

type statusUpdateRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

// PUT /api/:resource/update-status/:id
func UpdateRecordStatus(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid id", err)
			return
		}

		var req statusUpdateRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		svc := services.ApprovalService{
			ExpenseRepo: repositories.ExpenseRepository{},
			TravelRepo:  repositories.TravelRepository{},
			ReportRepo:  repositories.ReportRepository{},
			RequestID:   middleware.GetRequestID(c),
		}
		if err := svc.UpdateStatus(resource, id, domain.StatusUpdate{
			Status: status,
			Reason: req.RejectionReason,
		}); err != nil {
			RespondDomainError(c, err)
			return
		}

		RespondMessage(c, http.StatusOK, "status updated")
	}
}

// GET /api/export/:type/:year/:month
func ExportMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	svc := services.ExportService{
		ExpenseRepo: repositories.ExpenseRepository{},
		TravelRepo:  repositories.TravelRepository{},
		ReportRepo:  repositories.ReportRepository{},
		IncomeRepo:  repositories.IncomeRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	blob, filename, err := svc.MonthXLSX(c.Param("type"), year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", blob)
}

// POST /api/archive/:year/:month
func ArchiveMonth(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	svc := services.ExportService{
		ArchiveRepo: repositories.ArchiveRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	n, err := svc.ArchiveMonth(year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondOK(c, http.StatusOK, gin.H{"archived_records": n})
}

func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid year", err)
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid month", err)
		return 0, 0, false
	}
	return year, month, true
}
