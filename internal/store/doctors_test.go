package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"zenhealing/internal/auth"
	"zenhealing/internal/domain"
	"zenhealing/internal/storage"
	"zenhealing/internal/store/mocks"
	"zenhealing/internal/transport"
)

type DoctorStoreTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api     *mocks.MockDoctorAPI
	ref     *mocks.MockReferenceAPI
	mem     *storage.Memory
	session *auth.Session
	logger  *slog.Logger

	store *DoctorStore
}

func (s *DoctorStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.api = mocks.NewMockDoctorAPI(s.ctrl)
	s.ref = mocks.NewMockReferenceAPI(s.ctrl)
	s.mem = storage.NewMemory()
	s.session = auth.NewSession(s.mem, storage.KeyAuthToken, storage.KeyDoctorInfo)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.store = NewDoctorStore(s.api, s.ref, s.session, s.logger, false)
}

func (s *DoctorStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDoctorStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DoctorStoreTestSuite))
}

func mustJSON(v any) json.RawMessage {
	blob, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return blob
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func (s *DoctorStoreTestSuite) TestFetchDoctors_PluralizedEnvelope() {
	ctx := context.Background()

	payload := mustJSON(map[string]any{
		"doctors": []domain.Doctor{
			{ID: 11, Name: "Dr. Amara Osei", SpecialityID: 2, LocationID: 1},
			{ID: 12, Name: "Dr. Lena Fischer", SpecialityID: 3, LocationID: 2},
		},
	})
	s.api.EXPECT().ListDoctors(ctx).Return(payload, nil)

	s.store.FetchDoctors(ctx)

	doctors := s.store.Doctors()
	s.Len(doctors, 2)
	s.Equal("Dr. Amara Osei", doctors[0].Name)
	s.False(s.store.Loading(OpDoctors))
	s.Nil(s.store.Err(OpDoctors))
}

func (s *DoctorStoreTestSuite) TestFetchDoctors_FallbackOnError() {
	ctx := context.Background()

	s.api.EXPECT().ListDoctors(ctx).Return(nil, &transport.Error{
		Message: "Unable to connect. Please check your internet connection.",
		Kind:    transport.KindNetwork,
	})

	s.store.FetchDoctors(ctx)

	doctors := s.store.Doctors()
	s.Len(doctors, 3)
	s.Equal("Dr. John Smith", doctors[0].Name)
	// absorbed: the screen shows fallback content, not an error
	s.Nil(s.store.Err(OpDoctors))
	s.False(s.store.Loading(OpDoctors))
}

func (s *DoctorStoreTestSuite) TestFetchDoctors_FallbackOnEmptyListing() {
	ctx := context.Background()

	s.api.EXPECT().ListDoctors(ctx).Return(json.RawMessage(`[]`), nil)

	s.store.FetchDoctors(ctx)

	s.Len(s.store.Doctors(), 3)
	s.Nil(s.store.Err(OpDoctors))
}

func (s *DoctorStoreTestSuite) TestFetchDoctor_ServedFromCache() {
	ctx := context.Background()

	payload := mustJSON([]domain.Doctor{{ID: 21, Name: "Dr. Iris Chen"}})
	s.api.EXPECT().ListDoctors(ctx).Return(payload, nil)
	s.store.FetchDoctors(ctx)

	// no GetDoctor expectation: a cached id must not hit the network
	doctor := s.store.FetchDoctor(ctx, 21)
	s.Require().NotNil(doctor)
	s.Equal("Dr. Iris Chen", doctor.Name)
}

func (s *DoctorStoreTestSuite) TestFetchDoctor_NetworkOnMissThenCached() {
	ctx := context.Background()

	payload := mustJSON(map[string]any{"data": domain.Doctor{ID: 33, Name: "Dr. Omar Haddad"}})
	s.api.EXPECT().GetDoctor(ctx, int64(33)).Return(payload, nil).Times(1)

	first := s.store.FetchDoctor(ctx, 33)
	s.Require().NotNil(first)
	s.Equal("Dr. Omar Haddad", first.Name)

	second := s.store.FetchDoctor(ctx, 33)
	s.Require().NotNil(second)
	s.Equal(first.Name, second.Name)
}

func (s *DoctorStoreTestSuite) TestFetchDoctor_SoftFailsToNil() {
	ctx := context.Background()

	s.api.EXPECT().GetDoctor(ctx, int64(404)).Return(nil, &transport.Error{
		Message: "The requested resource was not found.",
		Kind:    transport.KindNotFound,
	})

	doctor := s.store.FetchDoctor(ctx, 404)
	s.Nil(doctor)

	err := s.store.Err(OpDoctorDetails)
	s.Require().NotNil(err)
	s.Equal(transport.KindNotFound, err.Kind)
}

func (s *DoctorStoreTestSuite) TestFilters_CumulativeAndIdempotent() {
	ctx := context.Background()

	payload := mustJSON([]domain.Doctor{
		{ID: 1, Name: "Dr. John Smith", SpecialityID: 1, LocationID: 1, Symptoms: []int64{1, 6}},
		{ID: 2, Name: "Dr. Sarah Johnson", SpecialityID: 1, LocationID: 2, Symptoms: []int64{5}},
		{ID: 3, Name: "Dr. Michael Davis", SpecialityID: 3, LocationID: 1, Symptoms: []int64{2}},
	})
	s.api.EXPECT().ListDoctors(ctx).Return(payload, nil)
	s.store.FetchDoctors(ctx)

	s.store.ApplyFilters(Filters{Speciality: int64Ptr(1)})
	s.Len(s.store.FilteredDoctors(), 2)

	// second partial patch narrows further without touching speciality
	s.store.ApplyFilters(Filters{Location: int64Ptr(1)})
	filtered := s.store.FilteredDoctors()
	s.Require().Len(filtered, 1)
	s.Equal(int64(1), filtered[0].ID)

	// reapplying the same patch changes nothing
	s.store.ApplyFilters(Filters{Location: int64Ptr(1)})
	s.Len(s.store.FilteredDoctors(), 1)

	// symptom membership on top
	s.store.ApplyFilters(Filters{Symptom: int64Ptr(6)})
	s.Len(s.store.FilteredDoctors(), 1)
	s.store.ApplyFilters(Filters{Symptom: int64Ptr(5)})
	s.Empty(s.store.FilteredDoctors())
}

func (s *DoctorStoreTestSuite) TestFilters_SearchMatchesNameOnly() {
	ctx := context.Background()

	payload := mustJSON([]domain.Doctor{
		{ID: 1, Name: "Dr. John Smith", Bio: "sarah trained"},
		{ID: 2, Name: "Dr. Sarah Johnson"},
	})
	s.api.EXPECT().ListDoctors(ctx).Return(payload, nil)
	s.store.FetchDoctors(ctx)

	s.store.Search("sarah")
	filtered := s.store.FilteredDoctors()
	s.Require().Len(filtered, 1)
	s.Equal(int64(2), filtered[0].ID)

	s.store.Search("JOHN")
	s.Len(s.store.FilteredDoctors(), 2) // Smith and Johnson both match, case-insensitively
}

func (s *DoctorStoreTestSuite) TestResetFilters_RestoresFullDirectory() {
	ctx := context.Background()

	payload := mustJSON([]domain.Doctor{
		{ID: 1, Name: "Dr. A", SpecialityID: 1},
		{ID: 2, Name: "Dr. B", SpecialityID: 2},
	})
	s.api.EXPECT().ListDoctors(ctx).Return(payload, nil)
	s.store.FetchDoctors(ctx)

	s.store.ApplyFilters(Filters{Speciality: int64Ptr(1), Search: strPtr("Dr. A")})
	s.Len(s.store.FilteredDoctors(), 1)

	s.store.ResetFilters()
	s.Equal(s.store.Doctors(), s.store.FilteredDoctors())
}

func (s *DoctorStoreTestSuite) TestFeaturedDoctors() {
	ctx := context.Background()

	payload := mustJSON([]domain.Doctor{
		{ID: 1, Name: "Dr. A", Feature: true},
		{ID: 2, Name: "Dr. B"},
		{ID: 3, Name: "Dr. C", Feature: true},
	})
	s.api.EXPECT().ListDoctors(ctx).Return(payload, nil)
	s.store.FetchDoctors(ctx)

	featured := s.store.FeaturedDoctors()
	s.Require().Len(featured, 2)
	s.Equal(int64(1), featured[0].ID)
	s.Equal(int64(3), featured[1].ID)
}

func (s *DoctorStoreTestSuite) TestFetchSpecialities_FallbackOnError() {
	ctx := context.Background()

	s.ref.EXPECT().ListSpecialities(ctx).Return(nil, errors.New("boom"))

	s.store.FetchSpecialities(ctx)

	specs := s.store.Specialities()
	s.Len(specs, 10)
	s.Equal("Cardiology", specs[0].Name)
	s.Nil(s.store.Err(OpSpecialities))
}

func (s *DoctorStoreTestSuite) TestLogin_PersistsCredentialPair() {
	ctx := context.Background()
	creds := domain.Credentials{Email: "doc@example.com", Password: "secret"}

	payload := mustJSON(map[string]any{
		"token":  "tok-123",
		"doctor": domain.Doctor{ID: 7, Name: "Dr. Dana Reyes", Email: "doc@example.com"},
	})
	s.api.EXPECT().LoginDoctor(ctx, creds).Return(payload, nil)

	doctor, err := s.store.Login(ctx, creds)
	s.Require().NoError(err)
	s.Require().NotNil(doctor)
	s.Equal(int64(7), doctor.ID)

	current := s.store.Current()
	s.Require().NotNil(current)
	s.Equal("Dr. Dana Reyes", current.Name)

	token, terr := s.mem.Get(ctx, storage.KeyAuthToken)
	s.Require().NoError(terr)
	s.Equal("tok-123", token)

	blob, ierr := s.mem.Get(ctx, storage.KeyDoctorInfo)
	s.Require().NoError(ierr)
	s.Contains(blob, "Dr. Dana Reyes")
}

func (s *DoctorStoreTestSuite) TestLogin_FailureLeavesStorageUntouched() {
	ctx := context.Background()
	creds := domain.Credentials{Email: "doc@example.com", Password: "wrong"}

	s.api.EXPECT().LoginDoctor(ctx, creds).Return(nil, &transport.Error{
		Message: "Please login to continue.",
		Kind:    transport.KindUnauthorized,
	})

	doctor, err := s.store.Login(ctx, creds)
	s.Nil(doctor)
	s.Require().Error(err)

	var terr *transport.Error
	s.Require().ErrorAs(err, &terr)
	s.Equal(transport.KindUnauthorized, terr.Kind)
	s.Equal("Please login to continue.", terr.Message)

	_, gerr := s.mem.Get(ctx, storage.KeyAuthToken)
	s.ErrorIs(gerr, storage.ErrNotFound)
	_, ierr := s.mem.Get(ctx, storage.KeyDoctorInfo)
	s.ErrorIs(ierr, storage.ErrNotFound)
	s.Nil(s.store.Current())
}

func (s *DoctorStoreTestSuite) TestLogin_MissingTokenRejected() {
	ctx := context.Background()
	creds := domain.Credentials{Email: "doc@example.com", Password: "secret"}

	payload := mustJSON(map[string]any{"doctor": domain.Doctor{ID: 7}})
	s.api.EXPECT().LoginDoctor(ctx, creds).Return(payload, nil)

	doctor, err := s.store.Login(ctx, creds)
	s.Nil(doctor)
	s.Require().Error(err)

	_, terr := s.mem.Get(ctx, storage.KeyAuthToken)
	s.ErrorIs(terr, storage.ErrNotFound)
}

func (s *DoctorStoreTestSuite) TestLogoutAndRestore() {
	ctx := context.Background()
	creds := domain.Credentials{Email: "doc@example.com", Password: "secret"}

	payload := mustJSON(map[string]any{
		"token":  "tok-123",
		"doctor": domain.Doctor{ID: 7, Name: "Dr. Dana Reyes"},
	})
	s.api.EXPECT().LoginDoctor(ctx, creds).Return(payload, nil)

	_, err := s.store.Login(ctx, creds)
	s.Require().NoError(err)

	// a fresh store restores from the persisted session
	fresh := NewDoctorStore(s.api, s.ref, s.session, s.logger, false)
	restored := fresh.Restore(ctx)
	s.Require().NotNil(restored)
	s.Equal(int64(7), restored.ID)

	s.Require().NoError(s.store.Logout(ctx))
	s.Nil(s.store.Current())
	_, terr := s.mem.Get(ctx, storage.KeyAuthToken)
	s.ErrorIs(terr, storage.ErrNotFound)
	_, ierr := s.mem.Get(ctx, storage.KeyDoctorInfo)
	s.ErrorIs(ierr, storage.ErrNotFound)

	// idempotent
	s.NoError(s.store.Logout(ctx))
	s.Nil(s.store.Restore(ctx))
}

func (s *DoctorStoreTestSuite) TestRegister_DefaultsToPendingStatus() {
	ctx := context.Background()
	reg := domain.DoctorRegistration{Name: "Dr. New", Email: "new@example.com", Password: "pw"}

	payload := mustJSON(map[string]any{"data": map[string]any{"id": 50, "name": "Dr. New"}})
	s.api.EXPECT().CreateDoctor(ctx, reg).Return(payload, nil)

	doctor, err := s.store.Register(ctx, reg)
	s.Require().NoError(err)
	s.Equal(domain.DoctorStatusPending, doctor.Status)

	// the directory is not touched until the listing is refetched
	s.Empty(s.store.Doctors())
}

func (s *DoctorStoreTestSuite) TestSeedFallbackConstructor() {
	seeded := NewDoctorStore(s.api, s.ref, s.session, s.logger, true)
	s.Len(seeded.Doctors(), 3)
	s.Len(seeded.Specialities(), 10)
	s.Len(seeded.Symptoms(), 20)
	s.Len(seeded.Locations(), 10)

	cached := seeded.FetchDoctor(context.Background(), 1)
	s.Require().NotNil(cached)
	s.Equal("Dr. John Smith", cached.Name)
}

func (s *DoctorStoreTestSuite) TestClearErrors() {
	ctx := context.Background()

	s.api.EXPECT().GetDoctor(ctx, int64(404)).Return(nil, errors.New("boom"))
	s.Nil(s.store.FetchDoctor(ctx, 404))
	s.NotNil(s.store.Err(OpDoctorDetails))

	s.store.ClearErrors()
	s.Nil(s.store.Err(OpDoctorDetails))
}
