package assistant

import "strings"

// Canned answers keyed by topic keywords. Used whenever the hosted
// model is unconfigured, rate limited, or down, so the chat widget
// always answers something sensible.
type knowledgeEntry struct {
	keywords []string
	answer   string
}

var knowledgeBase = []knowledgeEntry{
	{
		keywords: []string{"rent", "price", "cost", "fee", "charges"},
		answer: "Monthly rent depends on the sharing type: single rooms cost the most, " +
			"triple sharing the least. Most PGs near colleges fall between ₹6,000 and ₹15,000 " +
			"per month. Open a property page to see the exact rent per room, and check whether " +
			"electricity and food are included.",
	},
	{
		keywords: []string{"food", "mess", "meal", "breakfast", "dinner", "lunch"},
		answer: "Many PGs include a mess with 2-3 meals a day; look for the \"Food\" amenity " +
			"on the listing. If food isn't included, ask the owner about nearby tiffin services — " +
			"their contact details are on the property page.",
	},
	{
		keywords: []string{"book", "booking", "reserve", "visit", "schedule"},
		answer: "To book, open the property page and tap \"Request booking\". The owner gets " +
			"your request and contacts you to arrange a visit. Booking requests expire after " +
			"48 hours if the owner doesn't respond, so you can try another PG.",
	},
	{
		keywords: []string{"amenit", "wifi", "laundry", "ac", "parking", "gym"},
		answer: "Every listing shows its amenities — WiFi, laundry, AC, parking, power backup " +
			"and more. Use the filters on the search page to only see PGs with what you need.",
	},
	{
		keywords: []string{"college", "distance", "near", "location", "area"},
		answer: "You can filter PGs by city and by nearest college. Each listing shows the " +
			"distance to its nearest college, so prefer ones within 2-3 km to keep your commute short.",
	},
	{
		keywords: []string{"safe", "security", "curfew", "gate", "timing"},
		answer: "Listings show gate opening and closing times, and whether the PG is boys-only, " +
			"girls-only or mixed. Most PGs have a warden and CCTV; confirm the specifics with the " +
			"owner during your visit.",
	},
	{
		keywords: []string{"document", "deposit", "advance", "agreement", "id proof"},
		answer: "Owners usually ask for a government ID, a college ID or admission letter, and " +
			"1-2 months of rent as a security deposit. The advance amount is recorded against your " +
			"tenancy, so ask for a receipt.",
	},
	{
		keywords: []string{"sharing", "single", "double", "triple", "roommate"},
		answer: "Rooms come as Single, Double or Triple sharing. The floor map on each property " +
			"page shows which rooms still have free beds — green means empty, yellow means partially " +
			"filled.",
	},
	{
		keywords: []string{"hi", "hello", "hey", "namaste"},
		answer: "Hi! I can help you find a PG near your college, explain rents and sharing types, " +
			"or walk you through booking. What would you like to know?",
	},
}

const fallbackAnswer = "I can help with finding PGs, rents, food, amenities, bookings and " +
	"safety. Could you rephrase your question? For anything specific to one property, the " +
	"owner's contact details are on its page."

// FallbackResponse picks the first topic whose keyword appears in the
// message. Matching is ordered, so pricing questions beat greetings.
func FallbackResponse(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range knowledgeBase {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.answer
			}
		}
	}
	return fallbackAnswer
}
