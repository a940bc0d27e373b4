package catalog

import "github.com/fridok/fridok/internal/domain"

var stars = []domain.Star{
	{
		Name:        "Sun",
		Type:        domain.StarTypeYellowDwarf,
		Description: "Our star — the center of the Solar System. A nearly perfect sphere of hot plasma that provides energy for life on Earth.",
		Facts: []string{
			"Contains 99.86% of the Solar System's mass",
			"Light takes 8 minutes to reach Earth",
			"Surface temperature is about 5,500°C",
		},
		Distance:      "149.6 million km",
		Mass:          "1.989 × 10³⁰ kg",
		Temperature:   "5,778 K",
		Luminosity:    "3.828 × 10²⁶ W",
		Age:           "4.6 billion years",
		Constellation: "—",
		Colors:        []string{"FFD700", "FFA500", "FF8C00"},
	},
	{
		Name:        "Proxima Centauri",
		Type:        domain.StarTypeRedDwarf,
		Description: "The closest star to the Sun. A small red dwarf in the Alpha Centauri system with a potentially habitable exoplanet.",
		Facts: []string{
			"Only 4.24 light-years away",
			"Has an Earth-like planet in habitable zone",
			"Visible only from Southern Hemisphere",
		},
		Distance:      "4.24 light-years",
		Mass:          "0.12 Solar masses",
		Temperature:   "3,042 K",
		Luminosity:    "0.0017 Solar",
		Age:           "4.85 billion years",
		Constellation: "Centaurus",
		Colors:        []string{"FF6B6B", "CD5C5C", "8B0000"},
	},
	{
		Name:        "Sirius",
		Type:        domain.StarTypeYellowDwarf,
		Description: "The brightest star in Earth's night sky. A binary system where Sirius A outshines its white dwarf companion.",
		Facts: []string{
			"Twice as massive as our Sun",
			"25 times more luminous than the Sun",
			"Known since ancient times",
		},
		Distance:      "8.6 light-years",
		Mass:          "2.02 Solar masses",
		Temperature:   "9,940 K",
		Luminosity:    "25.4 Solar",
		Age:           "242 million years",
		Constellation: "Canis Major",
		Colors:        []string{"E8E8E8", "B8D4E8", "87CEEB"},
	},
	{
		Name:        "Betelgeuse",
		Type:        domain.StarTypeSupergiant,
		Description: "A red supergiant on the verge of supernova. One of the largest stars visible to the naked eye.",
		Facts: []string{
			"Could explode as supernova anytime",
			"Diameter is 1,000 times the Sun's",
			"Pulsates and changes brightness",
		},
		Distance:      "700 light-years",
		Mass:          "16.5 Solar masses",
		Temperature:   "3,500 K",
		Luminosity:    "126,000 Solar",
		Age:           "8-10 million years",
		Constellation: "Orion",
		Colors:        []string{"FF4500", "DC143C", "8B0000"},
	},
	{
		Name:        "Rigel",
		Type:        domain.StarTypeBlueGiant,
		Description: "A blue supergiant and the brightest star in Orion. One of the most luminous stars in our galaxy.",
		Facts: []string{
			"120,000 times brighter than the Sun",
			"Surface temperature over 12,000 K",
			"Part of a four-star system",
		},
		Distance:      "860 light-years",
		Mass:          "21 Solar masses",
		Temperature:   "12,100 K",
		Luminosity:    "120,000 Solar",
		Age:           "8 million years",
		Constellation: "Orion",
		Colors:        []string{"4169E1", "0000CD", "00BFFF"},
	},
	{
		Name:        "Vega",
		Type:        domain.StarTypeYellowDwarf,
		Description: "One of the brightest stars in the northern sky. A relatively young star with a debris disk.",
		Facts: []string{
			"Rotates once every 12.5 hours",
			"Was the North Star 14,000 years ago",
			"Has a dusty debris disk",
		},
		Distance:      "25 light-years",
		Mass:          "2.1 Solar masses",
		Temperature:   "9,602 K",
		Luminosity:    "40 Solar",
		Age:           "455 million years",
		Constellation: "Lyra",
		Colors:        []string{"F0F8FF", "E6E6FA", "B0C4DE"},
	},
	{
		Name:        "Polaris",
		Type:        domain.StarTypeSupergiant,
		Description: "The North Star — Earth's current pole star. A yellow supergiant that guides travelers.",
		Facts: []string{
			"Actually a triple star system",
			"Pulsates every 4 days",
			"Will be closest to pole in 2100",
		},
		Distance:      "433 light-years",
		Mass:          "5.4 Solar masses",
		Temperature:   "6,015 K",
		Luminosity:    "1,260 Solar",
		Age:           "70 million years",
		Constellation: "Ursa Minor",
		Colors:        []string{"FFFACD", "FFD700", "DAA520"},
	},
	{
		Name:        "Antares",
		Type:        domain.StarTypeSupergiant,
		Description: "The heart of the Scorpion. A red supergiant rivaling Betelgeuse in size and luminosity.",
		Facts: []string{
			"Name means 'rival of Mars'",
			"Would engulf Mars if placed at Sun",
			"Has a hot blue companion star",
		},
		Distance:      "550 light-years",
		Mass:          "12 Solar masses",
		Temperature:   "3,660 K",
		Luminosity:    "75,900 Solar",
		Age:           "12 million years",
		Constellation: "Scorpius",
		Colors:        []string{"FF4500", "B22222", "800000"},
	},
}
