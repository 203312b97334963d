package model

import "time"

// Point is a GeoJSON-style point geometry, longitude first.
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature is a point of interest shown on the public map.
type Feature struct {
	Base
	Label                    string     `json:"label" gorm:"size:100"`
	Category                 Category   `json:"category" gorm:"size:50;index"`
	Geom                     Point      `json:"geom" gorm:"serializer:json"`
	Address                  string     `json:"address"`
	ServiceProduct           string     `json:"serviceProduct"`
	OpeningHours             string     `json:"openingHours"`
	WeSpeak                  string     `json:"weSpeak"`
	SpecificOfferForRefugees string     `json:"specificOfferForRefugees"`
	ContactInformation       string     `json:"contactInformation"`
	FromDate                 *time.Time `json:"fromDate"`
	UntilDate                *time.Time `json:"untilDate"`
	Other                    string     `json:"other"`
}
