package views

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"zenhealing/internal/auth"
	"zenhealing/internal/domain"
	"zenhealing/internal/storage"
	"zenhealing/internal/store"
	"zenhealing/internal/store/mocks"
)

type ViewsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	doctorAPI *mocks.MockDoctorAPI
	refAPI    *mocks.MockReferenceAPI
	apptAPI   *mocks.MockAppointmentAPI
	artAPI    *mocks.MockArticleAPI
	logger    *slog.Logger

	doctors  *store.DoctorStore
	appts    *store.AppointmentStore
	articles *store.ArticleStore
}

func (s *ViewsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.doctorAPI = mocks.NewMockDoctorAPI(s.ctrl)
	s.refAPI = mocks.NewMockReferenceAPI(s.ctrl)
	s.apptAPI = mocks.NewMockAppointmentAPI(s.ctrl)
	s.artAPI = mocks.NewMockArticleAPI(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	session := auth.NewSession(storage.NewMemory(), storage.KeyAuthToken, storage.KeyDoctorInfo)
	s.doctors = store.NewDoctorStore(s.doctorAPI, s.refAPI, session, s.logger, false)
	s.appts = store.NewAppointmentStore(s.apptAPI, nil, s.logger)
	s.articles = store.NewArticleStore(s.artAPI, s.logger)
}

func (s *ViewsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestViewsTestSuite(t *testing.T) {
	suite.Run(t, new(ViewsTestSuite))
}

func (s *ViewsTestSuite) mustJSON(v any) json.RawMessage {
	blob, err := json.Marshal(v)
	s.Require().NoError(err)
	return blob
}

func (s *ViewsTestSuite) seedDoctors(doctors []domain.Doctor) {
	ctx := context.Background()
	s.doctorAPI.EXPECT().ListDoctors(ctx).Return(s.mustJSON(doctors), nil)
	s.doctors.FetchDoctors(ctx)
}

func (s *ViewsTestSuite) TestDirectory_LookupNames() {
	ctx := context.Background()
	s.refAPI.EXPECT().ListSpecialities(ctx).Return(s.mustJSON([]domain.Speciality{{ID: 1, Name: "Acupuncture"}}), nil)
	s.doctors.FetchSpecialities(ctx)

	view := DoctorDirectory{S: s.doctors}
	s.Equal("Acupuncture", view.SpecialityName(1))
	s.Equal(UnknownSpeciality, view.SpecialityName(99))
	// reference tables never fetched fall back to the placeholder too
	s.Equal(UnknownLocation, view.LocationName(1))
	s.Equal(UnknownSymptom, view.SymptomName(1))
}

func (s *ViewsTestSuite) TestDirectory_GroupingPreservesOrder() {
	s.seedDoctors([]domain.Doctor{
		{ID: 1, Name: "Dr. A", SpecialityID: 1, LocationID: 1, Symptoms: []int64{2}},
		{ID: 2, Name: "Dr. B", SpecialityID: 3, LocationID: 2, Symptoms: []int64{5}},
		{ID: 3, Name: "Dr. C", SpecialityID: 3, LocationID: 1, Symptoms: []int64{2, 5}},
		{ID: 4, Name: "Dr. D", SpecialityID: 5, LocationID: 2},
	})

	view := DoctorDirectory{S: s.doctors}

	bySpec := view.BySpeciality(3)
	s.Require().Len(bySpec, 2)
	s.Equal(int64(2), bySpec[0].ID)
	s.Equal(int64(3), bySpec[1].ID)

	byLoc := view.ByLocation(1)
	s.Require().Len(byLoc, 2)
	s.Equal(int64(1), byLoc[0].ID)

	bySym := view.BySymptom(5)
	s.Require().Len(bySym, 2)
	s.Equal(int64(2), bySym[0].ID)
	s.Empty(view.BySymptom(99))
}

func (s *ViewsTestSuite) seedSchedule() {
	ctx := context.Background()
	listing := s.mustJSON([]domain.Appointment{
		{ID: 1, DoctorID: 7, BookingDate: "2026-08-27", Status: domain.AppointmentStatusCompleted},
		{ID: 2, DoctorID: 7, BookingDate: "2026-08-28", Status: domain.AppointmentStatusConfirmed},
		{ID: 3, DoctorID: 7, BookingDate: "2026-08-29", Status: domain.AppointmentStatusPending},
		{ID: 4, DoctorID: 7, BookingDate: "not-a-date", Status: domain.AppointmentStatusPending},
	})
	s.apptAPI.EXPECT().ListDoctorAppointments(ctx, int64(7)).Return(listing, nil)
	s.appts.FetchForDoctor(ctx, 7)
}

func (s *ViewsTestSuite) TestSchedule_TodayAndUpcoming() {
	s.seedSchedule()

	now := func() time.Time {
		return time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	}
	view := Schedule{S: s.appts, Now: now}

	today := view.Today()
	s.Require().Len(today, 1)
	s.Equal(int64(2), today[0].ID)

	upcoming := view.Upcoming()
	s.Require().Len(upcoming, 1)
	s.Equal(int64(3), upcoming[0].ID)
}

func (s *ViewsTestSuite) TestSchedule_StatusTabs() {
	s.seedSchedule()
	view := Schedule{S: s.appts}

	s.Len(view.Pending(), 2)
	s.Len(view.Confirmed(), 1)
	s.Len(view.Completed(), 1)
	s.Empty(view.Cancelled())
}

func (s *ViewsTestSuite) seedArticles(articles []domain.Article) {
	ctx := context.Background()
	s.artAPI.EXPECT().ListArticles(ctx).Return(s.mustJSON(articles), nil)
	s.articles.FetchAll(ctx)
}

func (s *ViewsTestSuite) TestReading_RelatedSameCategoryFirst() {
	s.seedArticles([]domain.Article{
		{ID: 1, Title: "A", Category: "Meditation"},
		{ID: 2, Title: "B", Category: "Wellness"},
		{ID: 3, Title: "C", Category: "Meditation"},
		{ID: 4, Title: "D", Category: "Nutrition"},
		{ID: 5, Title: "E", Category: "Meditation"},
	})

	view := Reading{S: s.articles}
	related := view.Related(domain.Article{ID: 1, Category: "Meditation"})

	s.Require().Len(related, 3)
	// same category first in catalog order, then padding from the rest
	s.Equal(int64(3), related[0].ID)
	s.Equal(int64(5), related[1].ID)
	s.Equal(int64(2), related[2].ID)
}

func (s *ViewsTestSuite) TestReading_RelatedPadsWhenCategorySparse() {
	s.seedArticles([]domain.Article{
		{ID: 1, Title: "A", Category: "Meditation"},
		{ID: 2, Title: "B", Category: "Wellness"},
	})

	view := Reading{S: s.articles}
	related := view.Related(domain.Article{ID: 1, Category: "Meditation"})

	s.Require().Len(related, 1)
	s.Equal(int64(2), related[0].ID)
}

func (s *ViewsTestSuite) TestReading_Featured() {
	s.seedArticles([]domain.Article{
		{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}, {ID: 4, Title: "D"},
	})

	view := Reading{S: s.articles}
	featured := view.Featured()
	s.Require().Len(featured, 3)
	s.Equal(int64(1), featured[0].ID)
}
