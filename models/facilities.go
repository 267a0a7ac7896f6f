package models

import "time"

// Airport is an aerodrome under oversight. Email and phone number are unique.
type Airport struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	PostalCode      string    `json:"postalCode"`
	PostalAddress   string    `json:"postalAddress"`
	PhysicalAddress string    `json:"physicalAddress"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Runway belongs to exactly one [Airport].
type Runway struct {
	ID          string    `json:"id"`
	AirportID   string    `json:"airportId"`
	Number      string    `json:"number"`
	Width       float64   `json:"width"`
	Length      float64   `json:"length"`
	SurfaceType string    `json:"surfaceType"`
	InService   bool      `json:"inService"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Taxiway belongs to exactly one [Airport]. It shares the runway layout.
type Taxiway struct {
	ID          string    `json:"id"`
	AirportID   string    `json:"airportId"`
	Number      string    `json:"number"`
	Width       float64   `json:"width"`
	Length      float64   `json:"length"`
	SurfaceType string    `json:"surfaceType"`
	InService   bool      `json:"inService"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Airline is a carrier operating under oversight.
type Airline struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	NumberOfAircraft int        `json:"numberOfAircraft"`
	RoutesFlown      StringList `json:"routesFlown"`
	TotalPassengers  int64      `json:"totalPassengers"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ANSStation is an air-navigation-service station.
type ANSStation struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Services  StringList `json:"services"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MaintenanceOrganization is an approved aircraft maintenance organization.
type MaintenanceOrganization struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	AircraftTypes StringList `json:"aircraftTypes"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
