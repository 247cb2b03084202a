package specialties

type Specialty struct {
	ID   int64
	Name string
}
