package domain

// Assistant is the person a reservation is made for
type Assistant struct {
	ID       string
	Type     int
	Fullname string
	Disabled bool
}
