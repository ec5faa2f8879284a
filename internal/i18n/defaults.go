package i18n

// Defaults holds the embedded string for every key the server renders.
// A key used by a page must appear here so the lookup stays total.
var Defaults = map[string]string{
	"site.name":    "Spine & Brain Neurosurgery",
	"site.tagline": "Expert neurosurgical care close to home",

	"nav.home":         "Home",
	"nav.locations":    "Locations",
	"nav.exercises":    "Exercise Library",
	"nav.contact":      "Contact Us",
	"nav.appointments": "Book an Appointment",

	"exercises.title":            "Spine Exercise Library",
	"exercises.subtitle":         "Guided exercises to support recovery and long-term spine health",
	"exercises.search.label":     "Search exercises",
	"exercises.search.hint":      "Search by name or description",
	"exercises.filter.category":  "Category",
	"exercises.filter.allCats":   "All Exercises",
	"exercises.filter.level":     "Difficulty",
	"exercises.filter.allLevels": "All Levels",
	"exercises.filter.apply":     "Apply",
	"exercises.count":            "exercises found",
	"exercises.empty":            "No exercises found matching your criteria.",
	"exercises.loading":          "Loading exercises...",
	"exercises.error":            "Unable to load exercises. Please try again later.",
	"exercises.viewDetails":      "View Details",
	"exercises.instructions":     "Instructions",
	"exercises.cautions":         "Precautions",
	"exercises.close":            "Close",
	"exercises.disclaimer":       "Consult your physician before starting any exercise program.",

	"difficulty.beginner":     "Beginner",
	"difficulty.intermediate": "Intermediate",
	"difficulty.advanced":     "Advanced",

	"locations.title":      "Our Locations",
	"locations.amenities":  "Amenities",
	"locations.hours":      "Opening Hours",
	"locations.phone":      "Phone",
	"locations.directions": "Get Directions",
}
