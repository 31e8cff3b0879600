package controllers

import (
	"net/http"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GET /users
func (cc *CatalogController) ListUsers(c *gin.Context) {
	users, err := cc.catalog.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /people
func (cc *CatalogController) ListPeople(c *gin.Context) {
	people, err := cc.catalog.ListPeople(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

// GET /people/:people_id
func (cc *CatalogController) GetPerson(c *gin.Context) {
	id, ok := pathID(c, "people_id")
	if !ok {
		return
	}
	person, err := cc.catalog.GetPerson(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

// POST /people
func (cc *CatalogController) CreatePerson(c *gin.Context) {
	var req models.CreatePeopleRequest
	if !bindJSON(c, &req) {
		return
	}
	msg, err := cc.catalog.CreatePerson(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}

// GET /planets
func (cc *CatalogController) ListPlanets(c *gin.Context) {
	planets, err := cc.catalog.ListPlanets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GET /planets/:planet_id
func (cc *CatalogController) GetPlanet(c *gin.Context) {
	id, ok := pathID(c, "planet_id")
	if !ok {
		return
	}
	planet, err := cc.catalog.GetPlanet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planet)
}

// POST /planets
func (cc *CatalogController) CreatePlanet(c *gin.Context) {
	var req models.CreatePlanetRequest
	if !bindJSON(c, &req) {
		return
	}
	msg, err := cc.catalog.CreatePlanet(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}
