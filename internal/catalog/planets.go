package catalog

import "github.com/fridok/fridok/internal/domain"

var planets = []domain.Planet{
	{
		Name:        "Mercury",
		Symbol:      "☿",
		Description: "The smallest and closest planet to the Sun. Despite its proximity to the star, nighttime temperatures drop to -180°C.",
		Facts: []string{
			"A year on Mercury lasts only 88 Earth days",
			"The surface has craters 4 billion years old",
			"Mercury has virtually no atmosphere",
		},
		Diameter:        "4,879 km",
		DiameterKm:      4879,
		DistanceFromSun: "57.9 million km",
		DayLength:       "59 Earth days",
		YearLength:      "88 Earth days",
		Moons:           0,
		Temperature:     "-180°C to +430°C",
		Colors:          []string{"8B7355", "A9A9A9", "696969"},
	},
	{
		Name:        "Venus",
		Symbol:      "♀",
		Description: "The hottest planet in the Solar System. Its dense atmosphere creates a powerful greenhouse effect.",
		Facts: []string{
			"Venus rotates in the opposite direction",
			"A day on Venus is longer than a year",
			"Atmospheric pressure is 90 times higher than Earth's",
		},
		Diameter:        "12,104 km",
		DiameterKm:      12104,
		DistanceFromSun: "108.2 million km",
		DayLength:       "243 Earth days",
		YearLength:      "225 Earth days",
		Moons:           0,
		Temperature:     "+465°C",
		Colors:          []string{"FFA500", "FFD700", "DAA520"},
	},
	{
		Name:        "Earth",
		Symbol:      "⊕",
		Description: "Our home — the only known planet with life. 71% of the surface is covered with water.",
		Facts: []string{
			"Earth is approximately 4.5 billion years old",
			"The magnetic field protects from solar wind",
			"The atmosphere is 78% nitrogen",
		},
		Diameter:        "12,742 km",
		DiameterKm:      12742,
		DistanceFromSun: "149.6 million km",
		DayLength:       "24 hours",
		YearLength:      "365.25 days",
		Moons:           1,
		Temperature:     "-89°C to +57°C",
		Colors:          []string{"1E90FF", "228B22", "4169E1"},
	},
	{
		Name:        "Mars",
		Symbol:      "♂",
		Description: "The Red Planet — the main target for colonization. Home to the tallest volcano in the Solar System.",
		Facts: []string{
			"Olympus Mons is a volcano 21.9 km high",
			"Mars has seasons like Earth",
			"Rovers have been exploring since 1997",
		},
		Diameter:        "6,779 km",
		DiameterKm:      6779,
		DistanceFromSun: "227.9 million km",
		DayLength:       "24h 37min",
		YearLength:      "687 Earth days",
		Moons:           2,
		Temperature:     "-140°C to +20°C",
		Colors:          []string{"CD5C5C", "B22222", "8B0000"},
	},
	{
		Name:        "Jupiter",
		Symbol:      "♃",
		Description: "The giant of the Solar System. The Great Red Spot is a storm that has been raging for 400 years.",
		Facts: []string{
			"Mass is 2.5x all other planets combined",
			"The Great Red Spot is larger than Earth",
			"Jupiter has faint rings",
		},
		Diameter:        "139,820 km",
		DiameterKm:      139820,
		DistanceFromSun: "778.5 million km",
		DayLength:       "10 hours",
		YearLength:      "12 Earth years",
		Moons:           95,
		Temperature:     "-110°C",
		Colors:          []string{"DEB887", "D2691E", "F4A460"},
		RingColor:       "8B7355",
	},
	{
		Name:        "Saturn",
		Symbol:      "♄",
		Description: "The Lord of the Rings — the most recognizable planet. Its rings consist of billions of ice particles.",
		Facts: []string{
			"Saturn's density is less than water",
			"The rings extend 282,000 km",
			"Titan is a moon with a dense atmosphere",
		},
		Diameter:        "116,460 km",
		DiameterKm:      116460,
		DistanceFromSun: "1.4 billion km",
		DayLength:       "10.7 hours",
		YearLength:      "29 Earth years",
		Moons:           146,
		Temperature:     "-140°C",
		Colors:          []string{"F0E68C", "DAA520", "BDB76B"},
		RingColor:       "DEB887",
	},
	{
		Name:        "Uranus",
		Symbol:      "⛢",
		Description: "An ice giant lying on its side. Its axis of rotation is tilted 98° to the orbital plane.",
		Facts: []string{
			"Discovered by William Herschel in 1781",
			"Coldest atmosphere in the Solar System",
			"Rotates 'lying on its side'",
		},
		Diameter:        "50,724 km",
		DiameterKm:      50724,
		DistanceFromSun: "2.9 billion km",
		DayLength:       "17 hours",
		YearLength:      "84 Earth years",
		Moons:           28,
		Temperature:     "-224°C",
		Colors:          []string{"87CEEB", "00CED1", "5F9EA0"},
		RingColor:       "87CEEB",
	},
	{
		Name:        "Neptune",
		Symbol:      "♆",
		Description: "The most distant planet. Winds reach speeds of 2,100 km/h — the fastest in the system.",
		Facts: []string{
			"Discovered through mathematical calculations",
			"The Great Dark Spot is a giant storm",
			"Triton is a moon with nitrogen geysers",
		},
		Diameter:        "49,244 km",
		DiameterKm:      49244,
		DistanceFromSun: "4.5 billion km",
		DayLength:       "16 hours",
		YearLength:      "165 Earth years",
		Moons:           16,
		Temperature:     "-218°C",
		Colors:          []string{"4169E1", "0000CD", "191970"},
		RingColor:       "4169E1",
	},
}
