package handlers

import (
	"net/http"
	"strings"

	"expenseboard/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/locations/states
func GetStates(c *gin.Context) {
	list, err := repositories.LocationRepository{}.States()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load states", err)
		return
	}
	RespondOK(c, http.StatusOK, list)
}

// GET /api/locations/cities/:state
func GetCities(c *gin.Context) {
	state := strings.TrimSpace(c.Param("state"))
	if state == "" {
		RespondError(c, http.StatusBadRequest, "state is required", nil)
		return
	}
	list, err := repositories.LocationRepository{}.Cities(state)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load cities", err)
		return
	}
	RespondOK(c, http.StatusOK, list)
}

// GET /api/locations/locations/:state/:city
func GetLocations(c *gin.Context) {
	state := strings.TrimSpace(c.Param("state"))
	city := strings.TrimSpace(c.Param("city"))
	if state == "" || city == "" {
		RespondError(c, http.StatusBadRequest, "state and city are required", nil)
		return
	}
	list, err := repositories.LocationRepository{}.Locations(state, city)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load locations", err)
		return
	}
	RespondOK(c, http.StatusOK, list)
}
