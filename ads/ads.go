package ads

import (
	"net/http"

	"menara/utils"

	"github.com/julienschmidt/httprouter"
)

// Ad represents the structure of an advertisement shown in the catalog.
type Ad struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Offer is an affiliate deal tied to a catalog category.
type Offer struct {
	ID          string `json:"id,omitempty"`
	Partner     string `json:"partner,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Category    string `json:"category,omitempty"`
	Discount    string `json:"discount,omitempty"`
}

// Static inventory; ad selection is a fixed-list filter by design.
var ads = []Ad{
	{
		ID:          "1",
		Title:       "Hammam & Spa Day Pass",
		Description: "Traditional hammam ritual with argan oil massage, 20% off this week.",
		Image:       "https://via.placeholder.com/300x150?text=Spa+Ad",
		Link:        "https://example.com/hammam-pass",
		Category:    "spa",
	},
	{
		ID:          "2",
		Title:       "Desert Day Trips",
		Description: "Agafay desert sunset dinner and camel ride, hotel pickup included.",
		Image:       "https://via.placeholder.com/300x150?text=Desert+Ad",
		Link:        "https://example.com/agafay-trips",
		Category:    "excursion",
	},
	{
		ID:          "3",
		Title:       "Rooftop Dining",
		Description: "Book a rooftop table over Jemaa el-Fna with a free mint tea.",
		Image:       "https://via.placeholder.com/300x150?text=Dining+Ad",
		Link:        "https://example.com/rooftop-dining",
		Category:    "restaurant",
	},
	{
		ID:          "4",
		Title:       "Souk Shopping Guide",
		Description: "Private guided shopping tour of the medina souks with a local.",
		Image:       "https://via.placeholder.com/300x150?text=Souk+Ad",
		Link:        "https://example.com/souk-guide",
		Category:    "shop",
	},
}

var offers = []Offer{
	{
		ID:          "1",
		Partner:     "GetYourGuide",
		Title:       "Jardin Majorelle skip-the-line",
		Description: "Skip-the-line entry with YSL museum combo ticket.",
		Link:        "https://example.com/affiliate/majorelle",
		Category:    "museum",
		Discount:    "10%",
	},
	{
		ID:          "2",
		Partner:     "TheFork",
		Title:       "Medina restaurant bookings",
		Description: "Up to 30% off the bill at partner restaurants.",
		Link:        "https://example.com/affiliate/thefork",
		Category:    "restaurant",
		Discount:    "30%",
	},
	{
		ID:          "3",
		Partner:     "Viator",
		Title:       "Atlas mountains day tour",
		Description: "Three valleys tour with lunch in a Berber village.",
		Link:        "https://example.com/affiliate/atlas",
		Category:    "excursion",
		Discount:    "15%",
	},
}

// GetAds handles the API request to fetch ads.
func GetAds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	category := r.URL.Query().Get("category")

	var filteredAds []Ad
	if category == "" || category == "default" {
		// no category specified → return all ads
		filteredAds = ads
	} else {
		for _, ad := range ads {
			if ad.Category == category {
				filteredAds = append(filteredAds, ad)
			}
		}
		if filteredAds == nil {
			filteredAds = []Ad{}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, filteredAds)
}

// GetOffers returns affiliate offers, optionally filtered by category.
func GetOffers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	category := r.URL.Query().Get("category")

	var filtered []Offer
	if category == "" || category == "default" {
		filtered = offers
	} else {
		for _, offer := range offers {
			if offer.Category == category {
				filtered = append(filtered, offer)
			}
		}
		if filtered == nil {
			filtered = []Offer{}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, filtered)
}
