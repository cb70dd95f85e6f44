package domain

// Doctor statuses as reported by the backend. Registration creates a doctor in
// "pending"; moderation moves it through the rest.
const (
	DoctorStatusPending  = "pending"
	DoctorStatusAccepted = "accepted"
	DoctorStatusActive   = "active"
	DoctorStatusInactive = "inactive"
)

// Doctor is a practitioner record. Relationships are by-id foreign keys into the
// speciality/location/symptom lookup tables.
type Doctor struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	SpecialityID int64         `json:"speciality_id"`
	LocationID   int64         `json:"location_id"`
	Symptoms     []int64       `json:"symptoms"`
	Feature      Flag          `json:"feature"`
	ImageURL     string        `json:"image_url,omitempty"`
	Bio          string        `json:"bio,omitempty"`
	Website      string        `json:"website,omitempty"`
	Rating       float64       `json:"rating,omitempty"`
	Status       string        `json:"status"`
	Appointments []Appointment `json:"appointments,omitempty"`
}

// TreatsSymptom reports whether the doctor lists the given symptom id.
func (d Doctor) TreatsSymptom(symptomID int64) bool {
	for _, id := range d.Symptoms {
		if id == symptomID {
			return true
		}
	}
	return false
}

// DoctorRegistration is the payload for practitioner sign-up.
type DoctorRegistration struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	SpecialityID int64   `json:"speciality_id"`
	LocationID   int64   `json:"location_id"`
	Symptoms     []int64 `json:"symptoms"`
	Bio          string  `json:"bio,omitempty"`
}

// Credentials is a login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
