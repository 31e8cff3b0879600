package controllers

import (
	"net/http"
	"strconv"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

// GET /users/favorites?user_id=
func (fc *FavoriteController) ListForUser(c *gin.Context) {
	raw, present := c.GetQuery("user_id")
	if !present {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgUserIDRequired})
		return
	}
	// A user_id that cannot name a row is reported like a missing user.
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: msgUserNotFound})
		return
	}
	userID := uint(id)

	view, err := fc.favorites.ListFavoritesForUser(c.Request.Context(), &userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /favorite/people/:people_id
func (fc *FavoriteController) AddPeople(c *gin.Context) {
	peopleID, userID, ok := fc.parse(c, "people_id", msgUserNotFound)
	if !ok {
		return
	}
	msg, err := fc.favorites.AddPeopleFavorite(c.Request.Context(), userID, peopleID)
	fc.reply(c, msg, err)
}

// POST /favorite/planet/:planet_id
func (fc *FavoriteController) AddPlanet(c *gin.Context) {
	planetID, userID, ok := fc.parse(c, "planet_id", msgUserNotFound)
	if !ok {
		return
	}
	msg, err := fc.favorites.AddPlanetFavorite(c.Request.Context(), userID, planetID)
	fc.reply(c, msg, err)
}

// DELETE /favorite/people/:people_id
func (fc *FavoriteController) RemovePeople(c *gin.Context) {
	peopleID, userID, ok := fc.parse(c, "people_id", msgFavoriteNotFound)
	if !ok {
		return
	}
	msg, err := fc.favorites.RemovePeopleFavorite(c.Request.Context(), userID, peopleID)
	fc.reply(c, msg, err)
}

// DELETE /favorite/planet/:planet_id
func (fc *FavoriteController) RemovePlanet(c *gin.Context) {
	planetID, userID, ok := fc.parse(c, "planet_id", msgFavoriteNotFound)
	if !ok {
		return
	}
	msg, err := fc.favorites.RemovePlanetFavorite(c.Request.Context(), userID, planetID)
	fc.reply(c, msg, err)
}

// GET /user-favorite-people
func (fc *FavoriteController) ListAllPeople(c *gin.Context) {
	rows, err := fc.favorites.ListAllPeopleFavorites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user-favorite-people": rows})
}

// GET /user-favorite-planets
func (fc *FavoriteController) ListAllPlanets(c *gin.Context) {
	rows, err := fc.favorites.ListAllPlanetFavorites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user-favorite-planets": rows})
}

// parse reads the path id and the body's user_id. A nil user id is passed on
// for the service to reject; a user_id that cannot name a user is answered
// with unmatched, the message for a lookup that finds nothing.
func (fc *FavoriteController) parse(c *gin.Context, param, unmatched string) (uint, *uint, bool) {
	id, ok := pathID(c, param)
	if !ok {
		return 0, nil, false
	}
	var req models.FavoriteRequest
	if !bindJSON(c, &req) {
		return 0, nil, false
	}
	if req.UserID == nil {
		return id, nil, true
	}
	if !req.UserID.Valid {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: unmatched})
		return 0, nil, false
	}
	userID := req.UserID.ID
	return id, &userID, true
}

func (fc *FavoriteController) reply(c *gin.Context, msg string, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: msg})
}
