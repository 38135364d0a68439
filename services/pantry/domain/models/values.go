package models

// Status is the lifecycle state of a pantry product.
// Every transition between statuses is legal, in both directions.
type Status string

const (
	StatusNew         Status = "new"
	StatusOpened      Status = "opened"
	StatusAlmostEmpty Status = "almost_empty"
	StatusFinished    Status = "finished"
)

// Statuses lists all valid lifecycle statuses.
var Statuses = []Status{StatusNew, StatusOpened, StatusAlmostEmpty, StatusFinished}

// Valid reports whether s is one of the allowed statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusOpened, StatusAlmostEmpty, StatusFinished:
		return true
	}
	return false
}

// Location is where a product is stored. Storage affects shelf life.
type Location string

const (
	LocationFridge  Location = "fridge"
	LocationPantry  Location = "pantry"
	LocationFreezer Location = "freezer"
)

// Locations lists all valid storage locations.
var Locations = []Location{LocationFridge, LocationPantry, LocationFreezer}

// Valid reports whether l is one of the allowed locations.
func (l Location) Valid() bool {
	switch l {
	case LocationFridge, LocationPantry, LocationFreezer:
		return true
	}
	return false
}

// Outcome records what happened to a finished product.
type Outcome string

const (
	OutcomeUsed       Outcome = "used"
	OutcomeThrownAway Outcome = "thrown_away"
)

// Outcomes lists all valid outcomes.
var Outcomes = []Outcome{OutcomeUsed, OutcomeThrownAway}

// Valid reports whether o is one of the allowed outcomes.
func (o Outcome) Valid() bool {
	return o == OutcomeUsed || o == OutcomeThrownAway
}
