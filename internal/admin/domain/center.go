package domain

import "time"

// Center is a dialysis center record. Field set follows the registry the app
// administers; everything beyond the name is optional free text.
type Center struct {
	ID                string
	Name              string
	Sector            string
	Town              string
	Address           string
	StateID           string
	DrInCharge        string
	DrInChargeTel     string
	Tel               string
	Fax               string
	Email             string
	Website           string
	PanelNephrologist string
	CentreManager     string
	CentreCoordinator string
	HepatitisBay      string
	Units             string
	Description       string
	Latitude          *float64
	Longitude         *float64
	Featured          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// StateName is resolved on reads that join the states table.
	StateName string
}

// CenterSummary is the trimmed view shown when validating an invitation.
type CenterSummary struct {
	ID    string
	Name  string
	Town  string
	State string
}

// Summary returns the trimmed view of a center.
func (c Center) Summary() CenterSummary {
	return CenterSummary{ID: c.ID, Name: c.Name, Town: c.Town, State: c.StateName}
}

// CenterUpdate carries a partial update; nil fields are left untouched.
type CenterUpdate struct {
	Name              *string
	Sector            *string
	Town              *string
	Address           *string
	StateID           *string
	DrInCharge        *string
	DrInChargeTel     *string
	Tel               *string
	Fax               *string
	Email             *string
	Website           *string
	PanelNephrologist *string
	CentreManager     *string
	CentreCoordinator *string
	HepatitisBay      *string
	Units             *string
	Description       *string
	Latitude          *float64
	Longitude         *float64
	Featured          *bool
}

// State is a lookup-table row for Malaysian states and federal territories.
type State struct {
	ID   string
	Name string
}
