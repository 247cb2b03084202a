package pettypes

// PetType es una especie o categoría (dog, cat, ...) referenciada por las mascotas.
type PetType struct {
	ID   int64
	Name string
}
