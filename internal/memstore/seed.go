package memstore

import "github.com/mergington/activities/internal/domain"

// DefaultActivities returns the fixed roster the service starts with.
// Returned fresh on every call so callers can mutate their copy freely.
func DefaultActivities() map[string]domain.Activity {
	return map[string]domain.Activity{
		"Soccer Team": {
			Description:     "Join the varsity soccer team and compete in regional tournaments",
			Schedule:        "Mondays, Wednesdays, Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "sam@mergington.edu"},
		},
		"Basketball Club": {
			Description:     "Practice basketball skills and play friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"chris@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Participate in theater productions and improve acting skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 30,
			Participants:    []string{"emily@mergington.edu", "james@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore various art mediums including painting, drawing, and sculpture",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"ava@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"william@mergington.edu", "isabella@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in science competitions and conduct research projects",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"noah@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
