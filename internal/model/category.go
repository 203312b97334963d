package model

// Category classifies a feature on the public map.
type Category string

const (
	CategoryAll                  Category = "all"
	CategoryAnimalShelter        Category = "animal_shelter"
	CategoryTownHall             Category = "town_hall"
	CategoryKindergarten         Category = "kindergarten"
	CategorySchool               Category = "school"
	CategoryAdultEducationCenter Category = "adult_education_center"
	CategoryHospital             Category = "hospital"
	CategoryPhysician            Category = "physician"
	CategoryPsychologicalSupport Category = "psychological_support"
	CategoryReligiousFacilities  Category = "religious_facilities"
	CategoryRepairShop           Category = "repair_shop"
	CategoryRefugeeAccomodation  Category = "refugee_accomodation"
	CategoryRentABike            Category = "rent_a_bike"
	CategoryRailwayMission       Category = "railway_mission"
	CategoryEvents               Category = "events"
	CategoryJobs                 Category = "jobs"
	CategoryBank                 Category = "bank"
)

var categories = map[Category]struct{}{
	CategoryAll:                  {},
	CategoryAnimalShelter:        {},
	CategoryTownHall:             {},
	CategoryKindergarten:         {},
	CategorySchool:               {},
	CategoryAdultEducationCenter: {},
	CategoryHospital:             {},
	CategoryPhysician:            {},
	CategoryPsychologicalSupport: {},
	CategoryReligiousFacilities:  {},
	CategoryRepairShop:           {},
	CategoryRefugeeAccomodation:  {},
	CategoryRentABike:            {},
	CategoryRailwayMission:       {},
	CategoryEvents:               {},
	CategoryJobs:                 {},
	CategoryBank:                 {},
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}
