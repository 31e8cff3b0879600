package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/repository"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"
)

// CatalogService serves users, people and planets. Catalog entries are
// append-only.
type CatalogService struct {
	store *repository.Store
}

func NewCatalogService(store *repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.Users.List(ctx)
}

func (s *CatalogService) ListPeople(ctx context.Context) ([]models.People, error) {
	return s.store.People.List(ctx)
}

func (s *CatalogService) GetPerson(ctx context.Context, id uint) (*models.People, error) {
	person, err := s.store.People.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(msgPersonNotFound)
	}
	return person, err
}

// CreatePerson stores a new person and returns the confirmation text.
func (s *CatalogService) CreatePerson(ctx context.Context, req models.CreatePeopleRequest) (string, error) {
	if err := requireFields(map[string]bool{
		"name":   req.Name != nil,
		"height": req.Height != nil,
		"weight": req.Weight != nil,
		"gender": req.Gender != nil,
	}, "name", "height", "weight", "gender"); err != nil {
		return "", err
	}

	person := &models.People{
		Name:   *req.Name,
		Height: *req.Height,
		Weight: *req.Weight,
		Gender: *req.Gender,
	}
	if err := s.store.People.Create(ctx, person); err != nil {
		return "", err
	}
	utils.Log.WithField("people_id", person.ID).Info("person added")
	return fmt.Sprintf("The person %s was added to the database", person.Name), nil
}

func (s *CatalogService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return s.store.Planets.List(ctx)
}

func (s *CatalogService) GetPlanet(ctx context.Context, id uint) (*models.Planet, error) {
	planet, err := s.store.Planets.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(msgPlanetNotFound)
	}
	return planet, err
}

func (s *CatalogService) CreatePlanet(ctx context.Context, req models.CreatePlanetRequest) (string, error) {
	if err := requireFields(map[string]bool{
		"name":    req.Name != nil,
		"climate": req.Climate != nil,
		"terrain": req.Terrain != nil,
	}, "name", "climate", "terrain"); err != nil {
		return "", err
	}

	planet := &models.Planet{
		Name:      *req.Name,
		Climate:   *req.Climate,
		Terrain:   *req.Terrain,
		Resources: req.Resources,
	}
	if err := s.store.Planets.Create(ctx, planet); err != nil {
		return "", err
	}
	utils.Log.WithField("planet_id", planet.ID).Info("planet added")
	return fmt.Sprintf("The planet %s was added to the database", planet.Name), nil
}

// requireFields reports the first missing field in the given order.
func requireFields(present map[string]bool, order ...string) error {
	for _, field := range order {
		if !present[field] {
			return validationError(MissingFieldMessage(field))
		}
	}
	return nil
}

func MissingFieldMessage(field string) string {
	return fmt.Sprintf("Missing required field: %s.", field)
}
