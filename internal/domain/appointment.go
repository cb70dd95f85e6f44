package domain

// Appointment statuses. Booking creates an appointment in "pending"; the
// practitioner dashboard moves it through the rest.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// BookingDateLayout is the calendar-date format the backend uses for
// appointment booking dates.
const BookingDateLayout = "2006-01-02"

// Appointment is a booking made by a visitor against a doctor.
type Appointment struct {
	ID          int64  `json:"id"`
	DoctorID    int64  `json:"doctor_id"`
	UserID      int64  `json:"user_id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	Message     string `json:"message,omitempty"`
	Status      string `json:"status"`
}

// AppointmentRequest is the booking payload.
type AppointmentRequest struct {
	DoctorID    int64  `json:"doctor_id"`
	UserID      int64  `json:"user_id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	Message     string `json:"message,omitempty"`
}
