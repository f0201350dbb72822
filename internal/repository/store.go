package repository

import (
	"context"
	"fmt"
)

// Store bundles the repositories of one in-memory marketplace. Its lifetime is
// owned by the process entry point; nothing here is global.
type Store struct {
	users        *userRepository
	skills       *skillRepository
	gigs         *gigRepository
	applications *applicationRepository
	savedItems   *savedItemRepository
	userSkills   UserSkillRepository
	gigSkills    GigSkillRepository
}

// NewInMemoryStore builds an empty store and loads the default skill catalog.
func NewInMemoryStore(ctx context.Context) (*Store, error) {
	s := &Store{
		users:        NewUserRepository().(*userRepository),
		skills:       NewSkillRepository().(*skillRepository),
		gigs:         NewGigRepository().(*gigRepository),
		applications: NewApplicationRepository().(*applicationRepository),
		savedItems:   NewSavedItemRepository().(*savedItemRepository),
		userSkills:   NewUserSkillRepository(),
		gigSkills:    NewGigSkillRepository(),
	}
	if err := SeedSkills(ctx, s.skills); err != nil {
		return nil, fmt.Errorf("seed skills: %w", err)
	}
	return s, nil
}

func (s *Store) Users() UserRepository               { return s.users }
func (s *Store) Skills() SkillRepository             { return s.skills }
func (s *Store) Gigs() GigRepository                 { return s.gigs }
func (s *Store) Applications() ApplicationRepository { return s.applications }
func (s *Store) SavedItems() SavedItemRepository     { return s.savedItems }
func (s *Store) UserSkills() UserSkillRepository     { return s.userSkills }
func (s *Store) GigSkills() GigSkillRepository       { return s.gigSkills }

// Stats is a row count per entity type.
type Stats struct {
	Users        int `json:"users"`
	Skills       int `json:"skills"`
	Gigs         int `json:"gigs"`
	Applications int `json:"applications"`
	SavedItems   int `json:"savedItems"`
}

func (s *Store) Stats() Stats {
	return Stats{
		Users:        s.users.t.count(),
		Skills:       s.skills.t.count(),
		Gigs:         s.gigs.t.count(),
		Applications: s.applications.t.count(),
		SavedItems:   s.savedItems.t.count(),
	}
}
