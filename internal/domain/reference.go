package domain

// Speciality, Location and Symptom are immutable id+name lookup tables.

type Speciality struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Symptom struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
