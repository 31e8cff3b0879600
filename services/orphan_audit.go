package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/metrics"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"
)

// OrphanReport lists favorite rows pointing at a user or target that no
// longer exists. Such rows are left in place.
type OrphanReport struct {
	PeopleFavorites []models.UserPeopleFavorite
	PlanetFavorites []models.UserPlanetFavorite
}

func (r *OrphanReport) Total() int {
	return len(r.PeopleFavorites) + len(r.PlanetFavorites)
}

func (s *FavoriteService) AuditOrphans(ctx context.Context) (*OrphanReport, error) {
	users, err := s.store.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	people, err := s.store.People.List(ctx)
	if err != nil {
		return nil, err
	}
	planets, err := s.store.Planets.List(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make(map[uint]bool, len(users))
	for _, u := range users {
		userIDs[u.ID] = true
	}
	peopleIDs := make(map[uint]bool, len(people))
	for _, p := range people {
		peopleIDs[p.ID] = true
	}
	planetIDs := make(map[uint]bool, len(planets))
	for _, p := range planets {
		planetIDs[p.ID] = true
	}

	report := &OrphanReport{}

	peopleFavs, err := s.store.PeopleFavorites.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range peopleFavs {
		if !userIDs[f.UserID] || !peopleIDs[f.PeopleID] {
			report.PeopleFavorites = append(report.PeopleFavorites, f)
		}
	}

	planetFavs, err := s.store.PlanetFavorites.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range planetFavs {
		if !userIDs[f.UserID] || !planetIDs[f.PlanetID] {
			report.PlanetFavorites = append(report.PlanetFavorites, f)
		}
	}

	return report, nil
}

// runOrphanAudit is the cron job body: audit, export gauges, log.
func runOrphanAudit(svc *FavoriteService) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := svc.AuditOrphans(ctx)
	if err != nil {
		utils.LogError(err, "orphan favorites audit")
		return
	}
	metrics.SetOrphanFavorites(kindPeople, len(report.PeopleFavorites))
	metrics.SetOrphanFavorites(kindPlanet, len(report.PlanetFavorites))

	entry := utils.Log.WithField("orphans", report.Total())
	if report.Total() > 0 {
		entry.Warn("orphan favorites found")
		return
	}
	entry.Debug("orphan favorites audit clean")
}

// StartOrphanAuditCron schedules the audit. The caller stops the returned
// scheduler on shutdown.
func StartOrphanAuditCron(svc *FavoriteService, schedule string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { runOrphanAudit(svc) }); err != nil {
		return nil, fmt.Errorf("invalid orphan audit schedule %q: %w", schedule, err)
	}
	c.Start()
	utils.Log.WithField("schedule", schedule).Info("orphan favorites audit scheduled")
	return c, nil
}
