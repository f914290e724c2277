// Package prompt builds the natural-language instruction sent to the
// generation service. The itinerary template is fixed; trip parameters are
// interpolated, and a budget-constraints block is appended when the caller
// supplies a budget. Compose never fails: malformed budget amounts have
// already been coerced to zero by domain.BudgetAmount, and unknown currency
// codes fall back to USD-style formatting.
package prompt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rebooterz/tripai/internal/domain"
)

// currencyFormat controls how a budget amount is rendered inside the prompt.
type currencyFormat struct {
	symbol   string
	decimals int
	name     string
}

// currencyFormats maps the 8 supported codes to their display format.
// JPY renders with no decimal places. Codes outside the table use
// fallbackFormat, which labels the amount "USD" regardless of the actual
// code — a quirk kept for behavior compatibility (the raw code still
// appears in the guidance lines).
var currencyFormats = map[string]currencyFormat{
	"USD": {symbol: "$", decimals: 2, name: "US Dollars"},
	"EUR": {symbol: "€", decimals: 2, name: "Euros"},
	"GBP": {symbol: "£", decimals: 2, name: "British Pounds"},
	"JPY": {symbol: "¥", decimals: 0, name: "Japanese Yen"},
	"AUD": {symbol: "A$", decimals: 2, name: "Australian Dollars"},
	"CAD": {symbol: "C$", decimals: 2, name: "Canadian Dollars"},
	"INR": {symbol: "₹", decimals: 2, name: "Indian Rupees"},
	"CNY": {symbol: "¥", decimals: 2, name: "Chinese Yuan"},
}

var fallbackFormat = currencyFormat{symbol: "$", decimals: 2, name: "USD"}

// englishPrinter inserts en-US thousands separators ("1,234,567.89").
var englishPrinter = message.NewPrinter(language.English)

// Compose renders the full itinerary instruction for the trip. A nil budget
// yields a prompt without any budget-constraints block.
func Compose(trip domain.TripRequest, budget *domain.Budget) string {
	budgetText := ""
	if budget != nil {
		budgetText = budgetBlock(*budget, trip.Destination)
	}

	return fmt.Sprintf(itineraryTemplate,
		trip.NumDays(),
		trip.StartLocation,
		trip.Destination,
		formatDate(trip.StartDate),
		formatDate(trip.EndDate),
	) + budgetText
}

// budgetBlock renders the budget-constraints section appended to the prompt.
func budgetBlock(b domain.Budget, destination string) string {
	f, ok := currencyFormats[b.Currency]
	if !ok {
		f = fallbackFormat
	}
	return fmt.Sprintf(budgetTemplate,
		formatAmount(f, b.Amount.Value()),
		f.name,
		b.Currency,
		destination,
	)
}

// formatAmount renders an amount with the format's symbol, decimal places,
// and locale thousands separators, e.g. "¥5,000" or "$1,234.50".
func formatAmount(f currencyFormat, amount float64) string {
	if f.decimals == 0 {
		return f.symbol + englishPrinter.Sprintf("%.0f", amount)
	}
	return f.symbol + englishPrinter.Sprintf("%.2f", amount)
}

// formatDate renders a calendar date the way it appears in the prompt.
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// itineraryTemplate is the fixed instruction document. Interpolation order:
// num days, start location, destination, start date, end date. The
// destination and num days repeat throughout via indexed verbs.
const itineraryTemplate = `Create a comprehensive and detailed %[1]d-day trip itinerary for traveling from %[2]s to %[3]s, scheduled from %[4]s to %[5]s.

1. INTRODUCTION: Begin with an engaging introduction about %[3]s. Highlight its unique attractions, historical or cultural significance, and explain why it is an excellent travel choice. Include a brief overview of the experiences, cultural elements, and notable features travelers can expect during the trip.

2. BEST ROUTE FOR THE TRIP
   Provide detailed recommendations for the most convenient and enjoyable travel options:

   Recommended Route:
      - Highlight the best mode of transportation (train, bus, car, or flight) based on travel time, cost, and convenience.

   Transportation Details:
      - Train: Include train names, departure/arrival times, notable stops, and famous food items at stations or onboard.
      - Bus or Car: Mention schedules, routes, amenities, and scenic stops.
      - Flights: Specify airlines, flight times, and proximity of airports to the destination.

   Estimated Cost: Provide ticket or travel cost per person for each option.

   Special Features: Note unique experiences like scenic views, onboard dining, or entertainment.

   Alternative Options: Suggest backup routes or travel modes if the recommended route is unavailable.

3. ACCOMMODATION: Suggest places to stay for each night of the trip:
   - Include the name of the accommodation, its proximity to major attractions, and notable amenities.
   - Estimated Timing: Specify the exact arrival time at each accommodation (not just check-in or check-out times).
   - Estimated Cost: Provide the nightly cost range for the stay.
   Budget-Friendly Options

   Name and Location: Suggest affordable accommodations close to major attractions or well-connected to public transportation.
   Proximity: Highlight its distance to key destinations or landmarks.
   Amenities: Mention features such as free Wi-Fi, breakfast, shared kitchen facilities, or complimentary toiletries.
   Estimated Timing: Include the exact arrival time and any necessary check-in details.
   Estimated Cost: Provide a cost range that is economical for middle-class travelers.
   Mid-Range or Premium Options

   Name and Location: Suggest higher-end accommodations for those seeking enhanced comfort and amenities.
   Proximity: Note its strategic location, such as in the city center or near popular attractions.
   Amenities: Highlight notable features like pools, on-site dining, or private balconies.
   Estimated Timing: Specify arrival time and key check-in details.
   Estimated Cost: Provide a higher cost range for this category.

4. Daily Itinerary: For each day of the trip, create a structured plan with a short, descriptive title (e.g., "Exploration and Adventure", "Relaxation and Sightseeing"). Include:
   - Morning Activities: Specify attractions or activities with detailed descriptions.
   - Afternoon Activities: Include sightseeing spots, entertainment, or leisure options.
   - Evening Activities: Add dining, entertainment, or relaxation plans.
   - For each activity:
     - Estimated Timing: Mention the start and end times for the activity.
     - Estimated Cost: Provide the approximate cost per person.

5. FAMOUS FOOD ITEMS: Highlight the iconic and must-try food items in %[3]s. Include:
   - Regional Specialties: List famous dishes unique to the region and provide a brief description of their significance or ingredients.
   - Where to Try: Recommend specific restaurants, food stalls, or markets where travelers can experience these delicacies.
   - Estimated Cost: Provide a cost range for these food items.
   - Food Culture Insights: Share interesting cultural or historical facts about the food in %[3]s.

6. Dining Recommendations: For each day, suggest restaurants for breakfast, lunch, and dinner:
   - Highlight specialty dishes or famous food items unique to each location in %[3]s.
   - Include any famous food stalls, markets, or train station delicacies encountered during the journey.
   - Mention popular food streets or markets if applicable.
   - Estimated Timing: Include meal times.
   - Estimated Cost: Provide the cost range per person for each meal.

7. Transportation Within Destination: Provide transportation tips for navigating %[3]s, including:
   - Modes of transport (e.g., local trains, taxis, bikes, buses).
   - Estimated Timing: Time required to travel between locations.
   - Estimated Cost: Cost of transportation per person.

8. Final Summary:
   - Include a bullet-point summary of the total estimated budget for the trip:
     - Accommodation: Total cost for the stay.
     - Meals: Total food expenses.
     - Transportation: Total cost of travel, including intercity and local transportation.
     - Activities: Total cost for entry fees and other expenses.
     - Total Cost Per Person: Add all the costs.

Ensure the itinerary is formatted with clear sections and subheadings for each day, and use bullet points for each activity's timing and cost. Present the information in a friendly, professional tone that is engaging and informative.`

// budgetTemplate is the conditional budget-constraints block. Interpolation
// order: formatted amount, currency display name, raw currency code,
// destination.
const budgetTemplate = `

BUDGET CONSTRAINTS AND GUIDELINES:
Total Budget: %[1]s (%[2]s)

Please ensure all recommendations and activities fit within this budget:
- Provide cost breakdowns in %[3]s
- Include budget-friendly alternatives where possible
- Prioritize value-for-money options
- Consider typical pricing in %[4]s relative to this budget
- Factor in common tourist price ranges for:
  * Accommodation
  * Local transportation
  * Meals and dining
  * Activities and attractions
  * Shopping and souvenirs

Budget Distribution Guidelines:
- Accommodation: ~30-40%% of total budget
- Transportation: ~20-25%% of total budget
- Food and Dining: ~20-25%% of total budget
- Activities and Entertainment: ~10-15%% of total budget
- Miscellaneous/Emergency: ~5-10%% of total budget

For each recommendation, please:
1. Include specific costs in %[3]s
2. Suggest money-saving tips when possible
3. Highlight free or low-cost alternatives
4. Note peak vs. off-peak pricing where relevant`
