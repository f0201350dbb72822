package api

import (
	"github.com/asaskevich/EventBus"

	"github.com/oceanofgigs/engine/internal/api/handlers"
	"github.com/oceanofgigs/engine/internal/api/validators"
	"github.com/oceanofgigs/engine/internal/repository"
	"github.com/oceanofgigs/engine/internal/services"
)

// NewHandlers wires services and handlers over store, publishing activity on
// bus. Middleware settings in the result are left for the caller.
func NewHandlers(store *repository.Store, bus EventBus.BusPublisher) Dependencies {
	v := validators.New()
	catalog := services.NewCatalog(store)
	users := services.NewUserService(store, catalog)

	return Dependencies{
		HealthHandler:       handlers.NewHealthHandler(store),
		UsersHandler:        handlers.NewUsersHandler(users, v),
		SkillsHandler:       handlers.NewSkillsHandler(services.NewSkillService(store.Skills()), v),
		GigsHandler:         handlers.NewGigsHandler(services.NewGigService(store, catalog, bus), v),
		ApplicationsHandler: handlers.NewApplicationsHandler(services.NewApplicationService(store, bus), v),
		SavedItemsHandler:   handlers.NewSavedItemsHandler(services.NewSavedItemService(store, bus), v),
		SearchHandler:       handlers.NewSearchHandler(users),
	}
}
