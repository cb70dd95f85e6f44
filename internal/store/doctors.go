package store

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"zenhealing/internal/auth"
	"zenhealing/internal/domain"
	"zenhealing/internal/fallback"
	"zenhealing/internal/normalize"
	"zenhealing/internal/transport"
)

// Operation keys for the doctor store's loading flags and error slots.
const (
	OpDoctors       = "doctors"
	OpDoctorDetails = "doctorDetails"
	OpSpecialities  = "specialities"
	OpSymptoms      = "symptoms"
	OpLocations     = "locations"
	OpLogin         = "login"
	OpRegister      = "register"
)

// Filters are the cumulative directory criteria. Nil fields leave the stored
// criterion unchanged; a zero value clears it.
type Filters struct {
	Speciality *int64
	Location   *int64
	Symptom    *int64
	Search     *string
}

type filterState struct {
	speciality int64
	location   int64
	symptom    int64
	search     string
}

func (f *filterState) merge(patch Filters) {
	if patch.Speciality != nil {
		f.speciality = *patch.Speciality
	}
	if patch.Location != nil {
		f.location = *patch.Location
	}
	if patch.Symptom != nil {
		f.symptom = *patch.Symptom
	}
	if patch.Search != nil {
		f.search = *patch.Search
	}
}

// apply filters in fixed order: speciality, location, symptom, then
// case-insensitive name search.
func (f filterState) apply(doctors []domain.Doctor) []domain.Doctor {
	filtered := make([]domain.Doctor, 0, len(doctors))
	query := strings.ToLower(f.search)

	for _, d := range doctors {
		if f.speciality != 0 && d.SpecialityID != f.speciality {
			continue
		}
		if f.location != 0 && d.LocationID != f.location {
			continue
		}
		if f.symptom != 0 && !d.TreatsSymptom(f.symptom) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(d.Name), query) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// DoctorStore owns the practitioner directory, the reference lookup tables and
// the authenticated practitioner singleton.
type DoctorStore struct {
	api     DoctorAPI
	ref     ReferenceAPI
	session *auth.Session
	logger  *slog.Logger

	mu           sync.Mutex
	doctors      []domain.Doctor
	filtered     []domain.Doctor
	filters      filterState
	byID         map[int64]domain.Doctor
	specialities []domain.Speciality
	symptoms     []domain.Symptom
	locations    []domain.Location
	selected     *domain.Doctor
	current      *domain.Doctor
	ops          opState
}

// NewDoctorStore builds the store. With seedFallback set (development
// environments) every collection starts out populated with fallback data so
// screens render before the first fetch completes.
func NewDoctorStore(api DoctorAPI, ref ReferenceAPI, session *auth.Session, logger *slog.Logger, seedFallback bool) *DoctorStore {
	s := &DoctorStore{
		api:     api,
		ref:     ref,
		session: session,
		logger:  logger.With("store", "doctor"),
		byID:    make(map[int64]domain.Doctor),
		ops:     newOpState(),
	}
	if seedFallback {
		s.doctors = fallback.Doctors()
		s.filtered = append([]domain.Doctor(nil), s.doctors...)
		s.specialities = fallback.Specialities()
		s.symptoms = fallback.Symptoms()
		s.locations = fallback.Locations()
		for _, d := range s.doctors {
			s.byID[d.ID] = d
		}
	}
	return s
}

// FetchDoctors replaces the directory with the backend listing. Failures and
// empty results are absorbed: the fallback dataset is substituted and no error
// is recorded, so the directory screen always has content. Concurrent calls
// race; the last completed call wins the whole-list swap.
func (s *DoctorStore) FetchDoctors(ctx context.Context) {
	s.mu.Lock()
	s.ops.begin(OpDoctors)
	s.mu.Unlock()

	var doctors []domain.Doctor
	raw, err := s.api.ListDoctors(ctx)
	if err == nil {
		doctors, err = normalize.List[domain.Doctor](raw, "doctors")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || len(doctors) == 0 {
		if err != nil {
			s.logger.Warn("doctor listing unavailable, substituting fallback data", "error", err)
		} else {
			s.logger.Warn("doctor listing empty, substituting fallback data")
		}
		doctors = fallback.Doctors()
	}

	s.doctors = doctors
	for _, d := range doctors {
		s.byID[d.ID] = d
	}
	s.filtered = s.filters.apply(doctors)
	s.ops.finish(OpDoctors, nil)
}

// FetchDoctor returns the doctor by id, from cache when available. A cached id
// never triggers a network call. Failures soft-fail to nil; the normalized
// error is still recorded under OpDoctorDetails.
func (s *DoctorStore) FetchDoctor(ctx context.Context, id int64) *domain.Doctor {
	s.mu.Lock()
	if d, ok := s.byID[id]; ok {
		s.mu.Unlock()
		return &d
	}
	s.ops.begin(OpDoctorDetails)
	s.mu.Unlock()

	raw, err := s.api.GetDoctor(ctx, id)
	if err != nil {
		s.reject(OpDoctorDetails, err)
		return nil
	}
	doctor, err := normalize.Item[domain.Doctor](raw)
	if err != nil {
		s.reject(OpDoctorDetails, err)
		return nil
	}

	s.mu.Lock()
	s.byID[id] = doctor
	s.ops.finish(OpDoctorDetails, nil)
	s.mu.Unlock()
	return &doctor
}

func (s *DoctorStore) FetchSpecialities(ctx context.Context) {
	s.mu.Lock()
	s.ops.begin(OpSpecialities)
	s.mu.Unlock()

	var items []domain.Speciality
	raw, err := s.ref.ListSpecialities(ctx)
	if err == nil {
		items, err = normalize.List[domain.Speciality](raw, "specialities")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || len(items) == 0 {
		s.logger.Warn("speciality listing unavailable, substituting fallback data", "error", err)
		items = fallback.Specialities()
	}
	s.specialities = items
	s.ops.finish(OpSpecialities, nil)
}

func (s *DoctorStore) FetchSymptoms(ctx context.Context) {
	s.mu.Lock()
	s.ops.begin(OpSymptoms)
	s.mu.Unlock()

	var items []domain.Symptom
	raw, err := s.ref.ListSymptoms(ctx)
	if err == nil {
		items, err = normalize.List[domain.Symptom](raw, "symptoms")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || len(items) == 0 {
		s.logger.Warn("symptom listing unavailable, substituting fallback data", "error", err)
		items = fallback.Symptoms()
	}
	s.symptoms = items
	s.ops.finish(OpSymptoms, nil)
}

func (s *DoctorStore) FetchLocations(ctx context.Context) {
	s.mu.Lock()
	s.ops.begin(OpLocations)
	s.mu.Unlock()

	var items []domain.Location
	raw, err := s.ref.ListLocations(ctx)
	if err == nil {
		items, err = normalize.List[domain.Location](raw, "locations")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || len(items) == 0 {
		s.logger.Warn("location listing unavailable, substituting fallback data", "error", err)
		items = fallback.Locations()
	}
	s.locations = items
	s.ops.finish(OpLocations, nil)
}

type doctorLoginResponse struct {
	Token  string        `json:"token"`
	Doctor domain.Doctor `json:"doctor"`
}

// Login authenticates a practitioner, persists the token+identity pair through
// the session and installs the current-doctor singleton. The returned error is
// always a normalized *transport.Error with a user-presentable message.
func (s *DoctorStore) Login(ctx context.Context, creds domain.Credentials) (*domain.Doctor, error) {
	s.mu.Lock()
	s.ops.begin(OpLogin)
	s.mu.Unlock()

	raw, err := s.api.LoginDoctor(ctx, creds)
	if err != nil {
		return nil, s.reject(OpLogin, err)
	}
	resp, err := normalize.Item[doctorLoginResponse](raw)
	if err != nil {
		return nil, s.reject(OpLogin, err)
	}
	if resp.Token == "" {
		return nil, s.reject(OpLogin, errors.New("login response is missing a token"))
	}
	if err := s.session.Save(ctx, resp.Token, resp.Doctor); err != nil {
		return nil, s.reject(OpLogin, err)
	}

	s.mu.Lock()
	doctor := resp.Doctor
	s.current = &doctor
	s.ops.finish(OpLogin, nil)
	s.mu.Unlock()

	s.logger.Info("doctor logged in", "doctor_id", doctor.ID)
	out := doctor
	return &out, nil
}

// Register submits a practitioner sign-up. The created record starts in
// "pending" and does not enter the directory until moderation accepts it.
func (s *DoctorStore) Register(ctx context.Context, reg domain.DoctorRegistration) (*domain.Doctor, error) {
	s.mu.Lock()
	s.ops.begin(OpRegister)
	s.mu.Unlock()

	raw, err := s.api.CreateDoctor(ctx, reg)
	if err != nil {
		return nil, s.reject(OpRegister, err)
	}
	doctor, err := normalize.Item[domain.Doctor](raw)
	if err != nil {
		return nil, s.reject(OpRegister, err)
	}
	if doctor.Status == "" {
		doctor.Status = domain.DoctorStatusPending
	}

	s.mu.Lock()
	s.ops.finish(OpRegister, nil)
	s.mu.Unlock()
	return &doctor, nil
}

// Restore reinstalls the current doctor from a previously persisted session.
// Returns nil when no session is stored.
func (s *DoctorStore) Restore(ctx context.Context) *domain.Doctor {
	if _, err := s.session.Token(ctx); err != nil {
		return nil
	}
	var doctor domain.Doctor
	if err := s.session.Identity(ctx, &doctor); err != nil {
		return nil
	}

	s.mu.Lock()
	s.current = &doctor
	s.mu.Unlock()
	out := doctor
	return &out
}

// Logout clears the current doctor and the persisted credential pair.
// Idempotent.
func (s *DoctorStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.session.Clear(ctx)
}

// ApplyFilters merges the patch into the stored criteria and recomputes the
// filtered view. Repeated partial calls are cumulative until ResetFilters.
func (s *DoctorStore) ApplyFilters(patch Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.merge(patch)
	s.filtered = s.filters.apply(s.doctors)
}

// Search is shorthand for merging just the search criterion.
func (s *DoctorStore) Search(query string) {
	s.ApplyFilters(Filters{Search: &query})
}

// ResetFilters clears all criteria and restores the filtered view to the full
// directory.
func (s *DoctorStore) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filterState{}
	s.filtered = append([]domain.Doctor(nil), s.doctors...)
}

func (s *DoctorStore) SetSelected(doctor *domain.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doctor == nil {
		s.selected = nil
		return
	}
	d := *doctor
	s.selected = &d
}

func (s *DoctorStore) Selected() *domain.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	d := *s.selected
	return &d
}

func (s *DoctorStore) Current() *domain.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	d := *s.current
	return &d
}

func (s *DoctorStore) Doctors() []domain.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Doctor(nil), s.doctors...)
}

func (s *DoctorStore) FilteredDoctors() []domain.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Doctor(nil), s.filtered...)
}

// FeaturedDoctors returns directory entries the backend flagged for the home
// screen carousel.
func (s *DoctorStore) FeaturedDoctors() []domain.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	featured := make([]domain.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		if d.Feature {
			featured = append(featured, d)
		}
	}
	return featured
}

func (s *DoctorStore) Specialities() []domain.Speciality {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Speciality(nil), s.specialities...)
}

func (s *DoctorStore) Symptoms() []domain.Symptom {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Symptom(nil), s.symptoms...)
}

func (s *DoctorStore) Locations() []domain.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Location(nil), s.locations...)
}

func (s *DoctorStore) Loading(op string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.isLoading(op)
}

func (s *DoctorStore) Err(op string) *transport.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops.err(op)
}

func (s *DoctorStore) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops.clearErrors()
}

func (s *DoctorStore) reject(op string, err error) *transport.Error {
	terr := transport.Wrap(err)
	s.mu.Lock()
	s.ops.finish(op, terr)
	s.mu.Unlock()
	s.logger.Error("operation failed", "op", op, "kind", terr.Kind, "error", terr.Message)
	return terr
}
