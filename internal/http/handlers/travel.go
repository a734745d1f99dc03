package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"expenseboard/internal/domain"
	"expenseboard/internal/http/middleware"
	"expenseboard/internal/repositories"
	"expenseboard/internal/services"
	"expenseboard/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /api/travel/my
func GetMyTravel(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := repositories.TravelRepository{}.ListByUser(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load travel records", err)
		return
	}
	RespondOK(c, http.StatusOK, list)
}

type travelRequest struct {
	TravelMode string `json:"travel_mode" form:"travel_mode" binding:"required,travelmode"`

	// personal vehicle variant
	DistanceKM string `json:"distance_km" form:"distance_km"`
	State      string `json:"state" form:"state"`
	City       string `json:"city" form:"city"`
	Location   string `json:"location" form:"location"`

	// public transport variant
	TicketPrice string `json:"ticket_price" form:"ticket_price"`
	FromStation string `json:"from_station" form:"from_station"`
	ToStation   string `json:"to_station" form:"to_station"`
}

// POST /api/travel
//
// Accepts JSON, or multipart form data when a ticket scan is attached.
// Only the active variant's fields may be populated; the record is stored
// with the other variant nulled.
func CreateTravel(c *gin.Context) {
	var req travelRequest
	multipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")
	if multipart {
		if err := c.ShouldBind(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid form payload", err)
			return
		}
	} else if !BindJSONOrError(c, &req) {
		return
	}

	mode, err := domain.ParseTravelMode(req.TravelMode)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	var details domain.TravelDetails
	if mode.Personal() {
		if hasPublicFields(req) {
			RespondError(c, http.StatusBadRequest, "personal vehicle travel must not carry public transport fields", nil)
			return
		}
		distance, err := utils.ParseAmount(req.DistanceKM)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "distance_km: "+err.Error(), nil)
			return
		}
		details = domain.PersonalVehicle{
			DistanceKM: distance,
			State:      strings.TrimSpace(req.State),
			City:       strings.TrimSpace(req.City),
			Location:   strings.TrimSpace(req.Location),
		}
	} else {
		if hasPersonalFields(req) {
			RespondError(c, http.StatusBadRequest, "public transport travel must not carry personal vehicle fields", nil)
			return
		}
		price, err := utils.ParseAmount(req.TicketPrice)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "ticket_price: "+err.Error(), nil)
			return
		}
		public := domain.PublicTransport{
			TicketPrice: price,
			FromStation: strings.TrimSpace(req.FromStation),
			ToStation:   strings.TrimSpace(req.ToStation),
		}
		if multipart {
			stored, err := saveTicketUpload(c)
			if err != nil {
				RespondError(c, http.StatusBadRequest, "failed to store ticket image", err)
				return
			}
			public.TicketFile = stored
		}
		details = public
	}

	svc := services.TravelService{
		Repo:      repositories.TravelRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	stored, err := svc.Submit(middleware.GetUserID(c), mode, details)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, stored)
}

// saveTicketUpload stores the optional "ticket" file part under a uuid
// name so uploads can never collide or traverse paths.
func saveTicketUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("ticket")
	if err != nil {
		// no file part at all is fine, the scan is optional
		return "", nil
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(env.UploadDir, name)); err != nil {
		return "", err
	}
	return name, nil
}

func hasPersonalFields(req travelRequest) bool {
	return strings.TrimSpace(req.DistanceKM) != "" ||
		strings.TrimSpace(req.State) != "" ||
		strings.TrimSpace(req.City) != "" ||
		strings.TrimSpace(req.Location) != ""
}

func hasPublicFields(req travelRequest) bool {
	return strings.TrimSpace(req.TicketPrice) != "" ||
		strings.TrimSpace(req.FromStation) != "" ||
		strings.TrimSpace(req.ToStation) != ""
}
