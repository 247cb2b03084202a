package visits

import "time"

type Visit struct {
	ID          int64
	Date        time.Time
	Description string
	PetID       int64
}
