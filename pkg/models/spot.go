package models

import (
	"sort"
	"strings"

	"github.com/shadowbane/nautic/pkg/suitability"
)

// Spot is a named coastal location. Rows are seeded at start and never changed at runtime.
type Spot struct {
	ID     uint    `json:"id" gorm:"column:id_spot;primaryKey"`
	Name   string  `json:"name" gorm:"column:nombre;type:varchar(255);index"`
	Lat    float64 `json:"lat" gorm:"column:coord_lat"`
	Lon    float64 `json:"lon" gorm:"column:coord_lng"`
	Sports []Sport `json:"-" gorm:"many2many:deporte_spot;foreignKey:ID;joinForeignKey:IDSpot;references:ID;joinReferences:IDDeporte"`
}

func (s *Spot) TableName() string {
	return "spot"
}

// SportNames returns the lower-cased, de-duplicated and sorted sport names
func (s Spot) SportNames() []string {
	seen := make(map[string]bool, len(s.Sports))
	names := make([]string, 0, len(s.Sports))
	for _, sport := range s.Sports {
		name := strings.ToLower(sport.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Activities implements suitability.Scoreable. Sports this service does not score are skipped.
func (s Spot) Activities() []suitability.Activity {
	return suitability.KnownActivities(s.SportNames())
}

// Sport is a row of the sport reference table
type Sport struct {
	ID   uint   `json:"id" gorm:"column:id_deporte;primaryKey"`
	Name string `json:"name" gorm:"column:nombre;type:varchar(100);uniqueIndex"`
}

func (s *Sport) TableName() string {
	return "deporte"
}

// SpotResponse is the wire shape of a spot
type SpotResponse struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Lat    float64  `json:"lat"`
	Lon    float64  `json:"lon"`
	Sports []string `json:"sports"`
}

// ToResponse converts a Spot into its wire shape
func (s Spot) ToResponse() SpotResponse {
	return SpotResponse{
		ID:     s.ID,
		Name:   s.Name,
		Lat:    s.Lat,
		Lon:    s.Lon,
		Sports: s.SportNames(),
	}
}
