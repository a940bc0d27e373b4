package catalog

import "github.com/fridok/fridok/internal/domain"

var questions = []domain.Question{
	{
		Prompt:       "Which planet is the largest in our Solar System?",
		Options:      []string{"Saturn", "Jupiter", "Neptune", "Uranus"},
		CorrectIndex: 1,
		Explanation:  "Jupiter is the largest planet, with a mass 2.5 times all other planets combined!",
	},
	{
		Prompt:       "How long does light take to reach Earth from the Sun?",
		Options:      []string{"8 seconds", "8 minutes", "8 hours", "8 days"},
		CorrectIndex: 1,
		Explanation:  "Light travels at 299,792 km/s and takes about 8 minutes to reach us.",
	},
	{
		Prompt:       "Which planet rotates in the opposite direction?",
		Options:      []string{"Mars", "Venus", "Mercury", "Neptune"},
		CorrectIndex: 1,
		Explanation:  "Venus rotates clockwise (retrograde), opposite to most planets!",
	},
	{
		Prompt:       "What is the hottest planet in our Solar System?",
		Options:      []string{"Mercury", "Venus", "Mars", "Jupiter"},
		CorrectIndex: 1,
		Explanation:  "Venus is hottest at 465°C due to its thick atmosphere and greenhouse effect.",
	},
	{
		Prompt:       "How many moons does Mars have?",
		Options:      []string{"0", "1", "2", "4"},
		CorrectIndex: 2,
		Explanation:  "Mars has two small moons: Phobos and Deimos.",
	},
	{
		Prompt:       "Which star is closest to our Sun?",
		Options:      []string{"Sirius", "Betelgeuse", "Proxima Centauri", "Vega"},
		CorrectIndex: 2,
		Explanation:  "Proxima Centauri is only 4.24 light-years away from us.",
	},
	{
		Prompt:       "What gives Mars its red color?",
		Options:      []string{"Copper", "Iron oxide", "Sulfur", "Magma"},
		CorrectIndex: 1,
		Explanation:  "Iron oxide (rust) on the surface gives Mars its distinctive red color.",
	},
	{
		Prompt:       "Which planet has the most moons?",
		Options:      []string{"Jupiter", "Saturn", "Uranus", "Neptune"},
		CorrectIndex: 1,
		Explanation:  "Saturn has 146 known moons, the most of any planet!",
	},
	{
		Prompt:       "What is the Great Red Spot on Jupiter?",
		Options:      []string{"A volcano", "A storm", "A crater", "An ocean"},
		CorrectIndex: 1,
		Explanation:  "It's a giant storm that has been raging for at least 400 years!",
	},
	{
		Prompt:       "Which planet could float on water?",
		Options:      []string{"Jupiter", "Uranus", "Saturn", "Neptune"},
		CorrectIndex: 2,
		Explanation:  "Saturn's density is less than water, so it would float!",
	},
	{
		Prompt:       "How old is our Solar System?",
		Options:      []string{"1 billion years", "4.6 billion years", "10 billion years", "100 million years"},
		CorrectIndex: 1,
		Explanation:  "Our Solar System formed about 4.6 billion years ago.",
	},
	{
		Prompt:       "Which planet has the strongest winds?",
		Options:      []string{"Jupiter", "Saturn", "Uranus", "Neptune"},
		CorrectIndex: 3,
		Explanation:  "Neptune has winds up to 2,100 km/h - the fastest in the Solar System!",
	},
}
