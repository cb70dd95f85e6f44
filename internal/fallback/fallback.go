// Package fallback holds the built-in sample datasets substituted into the
// stores when a listing fetch fails or comes back empty, so screens never
// render an empty or broken state. The records carry the same field names a
// live backend response would; fallback_test.go keeps that in sync.
package fallback

import "zenhealing/internal/domain"

var specialities = []domain.Speciality{
	{ID: 1, Name: "Cardiology"},
	{ID: 2, Name: "Dermatology"},
	{ID: 3, Name: "Neurology"},
	{ID: 4, Name: "Oncology"},
	{ID: 5, Name: "Pediatrics"},
	{ID: 6, Name: "Psychiatry"},
	{ID: 7, Name: "Orthopedics"},
	{ID: 8, Name: "Gynecology"},
	{ID: 9, Name: "Urology"},
	{ID: 10, Name: "Endocrinology"},
}

var locations = []domain.Location{
	{ID: 1, Name: "New York"},
	{ID: 2, Name: "Los Angeles"},
	{ID: 3, Name: "Chicago"},
	{ID: 4, Name: "Houston"},
	{ID: 5, Name: "Phoenix"},
	{ID: 6, Name: "Philadelphia"},
	{ID: 7, Name: "San Antonio"},
	{ID: 8, Name: "San Diego"},
	{ID: 9, Name: "Dallas"},
	{ID: 10, Name: "San Jose"},
}

var symptoms = []domain.Symptom{
	{ID: 1, Name: "Fever"},
	{ID: 2, Name: "Headache"},
	{ID: 3, Name: "Nausea"},
	{ID: 4, Name: "Fatigue"},
	{ID: 5, Name: "Dizziness"},
	{ID: 6, Name: "Chest Pain"},
	{ID: 7, Name: "Shortness of Breath"},
	{ID: 8, Name: "Abdominal Pain"},
	{ID: 9, Name: "Joint Pain"},
	{ID: 10, Name: "Rash"},
	{ID: 11, Name: "Cough"},
	{ID: 12, Name: "Sore Throat"},
	{ID: 13, Name: "Muscle Aches"},
	{ID: 14, Name: "Back Pain"},
	{ID: 15, Name: "Anxiety"},
	{ID: 16, Name: "Depression"},
	{ID: 17, Name: "Insomnia"},
	{ID: 18, Name: "Loss of Appetite"},
	{ID: 19, Name: "Weight Loss"},
	{ID: 20, Name: "High Blood Pressure"},
}

var doctors = []domain.Doctor{
	{
		ID:           1,
		Name:         "Dr. John Smith",
		Email:        "john.smith@example.com",
		Phone:        "123-456-7890",
		Address:      "123 Main St, New York, NY",
		SpecialityID: 1,
		LocationID:   1,
		Symptoms:     []int64{1, 4, 6, 7},
		Feature:      true,
		ImageURL:     "https://example.com/doctor1.jpg",
		Rating:       4.8,
		Status:       domain.DoctorStatusActive,
	},
	{
		ID:           2,
		Name:         "Dr. Sarah Johnson",
		Email:        "sarah.johnson@example.com",
		Phone:        "987-654-3210",
		Address:      "456 Oak St, Los Angeles, CA",
		SpecialityID: 2,
		LocationID:   2,
		Symptoms:     []int64{5, 10, 14},
		Feature:      true,
		ImageURL:     "https://example.com/doctor2.jpg",
		Rating:       4.9,
		Status:       domain.DoctorStatusActive,
	},
	{
		ID:           3,
		Name:         "Dr. Michael Davis",
		Email:        "michael.davis@example.com",
		Phone:        "555-123-4567",
		Address:      "789 Elm St, Chicago, IL",
		SpecialityID: 3,
		LocationID:   3,
		Symptoms:     []int64{2, 5, 17},
		Feature:      false,
		ImageURL:     "https://example.com/doctor3.jpg",
		Rating:       4.6,
		Status:       domain.DoctorStatusActive,
	},
}

var articles = []domain.Article{
	{
		ID:       1,
		Title:    "Benefits of Mindfulness Meditation",
		Excerpt:  "Discover how daily mindfulness practice can reduce stress and improve overall well-being.",
		Category: "Meditation",
		Date:     "June 15, 2023",
		ReadTime: 5,
		ImageURL: "https://images.unsplash.com/photo-1506126613408-eca07ce68773?auto=format&fit=crop&w=800&q=60",
	},
	{
		ID:       2,
		Title:    "Holistic Approaches to Stress Management",
		Excerpt:  "Learn about natural techniques to manage stress and anxiety without medication.",
		Category: "Wellness",
		Date:     "June 10, 2023",
		ReadTime: 7,
		ImageURL: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?auto=format&fit=crop&w=800&q=60",
	},
	{
		ID:       3,
		Title:    "The Power of Nutritional Healing",
		Excerpt:  "How changing your diet can help address chronic health issues and boost your immune system.",
		Category: "Nutrition",
		Date:     "May 28, 2023",
		ReadTime: 6,
		ImageURL: "https://images.unsplash.com/photo-1490818387583-1baba5e638af?auto=format&fit=crop&w=800&q=60",
	},
}

// The accessors return fresh copies so stores can swap and re-slice freely.

func Specialities() []domain.Speciality {
	return append([]domain.Speciality(nil), specialities...)
}

func Locations() []domain.Location {
	return append([]domain.Location(nil), locations...)
}

func Symptoms() []domain.Symptom {
	return append([]domain.Symptom(nil), symptoms...)
}

func Doctors() []domain.Doctor {
	out := append([]domain.Doctor(nil), doctors...)
	for i := range out {
		out[i].Symptoms = append([]int64(nil), out[i].Symptoms...)
	}
	return out
}

func Articles() []domain.Article {
	return append([]domain.Article(nil), articles...)
}
