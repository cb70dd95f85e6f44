// Package views derives presentation-ready projections from the stores. The
// views hold no state of their own; every call recomputes from the current
// store contents.
package views

import (
	"time"

	"zenhealing/internal/domain"
	"zenhealing/internal/store"
)

// Placeholders rendered when a doctor references a lookup id the reference
// tables do not know.
const (
	UnknownSpeciality = "Unknown Speciality"
	UnknownLocation   = "Unknown Location"
	UnknownSymptom    = "Unknown Symptom"
)

// DoctorDirectory resolves lookup names and groups the directory for the
// browse screens.
type DoctorDirectory struct {
	S *store.DoctorStore
}

func (v DoctorDirectory) SpecialityName(id int64) string {
	for _, s := range v.S.Specialities() {
		if s.ID == id {
			return s.Name
		}
	}
	return UnknownSpeciality
}

func (v DoctorDirectory) LocationName(id int64) string {
	for _, l := range v.S.Locations() {
		if l.ID == id {
			return l.Name
		}
	}
	return UnknownLocation
}

func (v DoctorDirectory) SymptomName(id int64) string {
	for _, s := range v.S.Symptoms() {
		if s.ID == id {
			return s.Name
		}
	}
	return UnknownSymptom
}

// BySpeciality returns directory entries with the given speciality, preserving
// directory order.
func (v DoctorDirectory) BySpeciality(id int64) []domain.Doctor {
	return selectDoctors(v.S.Doctors(), func(d domain.Doctor) bool {
		return d.SpecialityID == id
	})
}

func (v DoctorDirectory) ByLocation(id int64) []domain.Doctor {
	return selectDoctors(v.S.Doctors(), func(d domain.Doctor) bool {
		return d.LocationID == id
	})
}

func (v DoctorDirectory) BySymptom(id int64) []domain.Doctor {
	return selectDoctors(v.S.Doctors(), func(d domain.Doctor) bool {
		return d.TreatsSymptom(id)
	})
}

func selectDoctors(doctors []domain.Doctor, keep func(domain.Doctor) bool) []domain.Doctor {
	out := doctors[:0]
	for _, d := range doctors {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// Schedule projects the practitioner's appointment listing onto the dashboard
// tabs. Now is injectable for tests; nil means time.Now.
type Schedule struct {
	S   *store.AppointmentStore
	Now func() time.Time
}

func (v Schedule) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

// Today returns the practitioner's bookings whose date matches the current
// calendar day.
func (v Schedule) Today() []domain.Appointment {
	today := v.now().Format(domain.BookingDateLayout)
	return selectAppointments(v.S.ForDoctor(), func(a domain.Appointment) bool {
		return a.BookingDate == today
	})
}

// Upcoming returns bookings strictly after today. Records with unparseable
// dates are dropped.
func (v Schedule) Upcoming() []domain.Appointment {
	startOfDay, _ := time.Parse(domain.BookingDateLayout, v.now().Format(domain.BookingDateLayout))
	return selectAppointments(v.S.ForDoctor(), func(a domain.Appointment) bool {
		day, err := time.Parse(domain.BookingDateLayout, a.BookingDate)
		if err != nil {
			return false
		}
		return day.After(startOfDay)
	})
}

func (v Schedule) Pending() []domain.Appointment {
	return v.byStatus(domain.AppointmentStatusPending)
}

func (v Schedule) Confirmed() []domain.Appointment {
	return v.byStatus(domain.AppointmentStatusConfirmed)
}

func (v Schedule) Completed() []domain.Appointment {
	return v.byStatus(domain.AppointmentStatusCompleted)
}

func (v Schedule) Cancelled() []domain.Appointment {
	return v.byStatus(domain.AppointmentStatusCancelled)
}

func (v Schedule) byStatus(status string) []domain.Appointment {
	return selectAppointments(v.S.ForDoctor(), func(a domain.Appointment) bool {
		return a.Status == status
	})
}

func selectAppointments(appts []domain.Appointment, keep func(domain.Appointment) bool) []domain.Appointment {
	out := appts[:0]
	for _, a := range appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// Reading projects the article catalog for the discover screens.
type Reading struct {
	S *store.ArticleStore
}

// Related suggests up to three articles for the details footer: same-category
// articles first, padded with the rest of the catalog, self excluded, catalog
// order preserved.
func (v Reading) Related(article domain.Article) []domain.Article {
	catalog := v.S.Articles()
	related := make([]domain.Article, 0, 3)

	for _, a := range catalog {
		if len(related) == 3 {
			return related
		}
		if a.ID != article.ID && a.Category == article.Category {
			related = append(related, a)
		}
	}
	for _, a := range catalog {
		if len(related) == 3 {
			return related
		}
		if a.ID == article.ID || a.Category == article.Category {
			continue
		}
		related = append(related, a)
	}
	return related
}

func (v Reading) Featured() []domain.Article {
	return v.S.Featured()
}
