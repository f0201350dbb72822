package models

import "time"

// Gig is a short-term opportunity posted by a recruiter.
type Gig struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	MinPrice       int       `json:"minPrice"`
	MaxPrice       *int      `json:"maxPrice"`
	IsPriceHourly  bool      `json:"isPriceHourly"`
	EstimatedHours *string   `json:"estimatedHours"`
	RecruiterID    int64     `json:"recruiterId"`
	CompanyName    string    `json:"companyName"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (g *Gig) Key() int64         { return g.ID }
func (g *Gig) AssignKey(id int64) { g.ID = id }

// GigWithSkills is a gig decorated with the skills linked to it.
type GigWithSkills struct {
	Gig
	Skills []Skill `json:"skills"`
}
