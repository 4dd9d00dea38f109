package refdata

import "github.com/festmap/suggest/internal/models"

// Built-in reference data. An override file replaces whole sections; sections
// absent from the file keep these defaults.

var defaultCategories = []string{
	"Konzert",
	"Theater",
	"Festival",
	"Flohmarkt",
	"Ausstellung",
	"Kino",
	"Party",
	"Lesung",
	"Comedy",
	"Workshop",
	"Sportevent",
	"Wochenmarkt",
	"Kindertheater",
	"Führung",
	"Open Air",
}

var defaultSeasons = []string{
	"Weihnachtsmarkt",
	"Silvester",
	"Karneval",
	"Ostermarkt",
	"Frühlingsfest",
	"Sommerfest",
	"Oktoberfest",
	"Halloween",
	"Martinsumzug",
	"Adventskonzert",
}

var defaultCities = []models.City{
	{Name: "Berlin", Latitude: 52.5200, Longitude: 13.4050, PriorityTier: 1},
	{Name: "Hamburg", Latitude: 53.5511, Longitude: 9.9937, PriorityTier: 1},
	{Name: "München", Latitude: 48.1351, Longitude: 11.5820, PriorityTier: 1},
	{Name: "Köln", Latitude: 50.9375, Longitude: 6.9603, PriorityTier: 1},
	{Name: "Frankfurt am Main", Latitude: 50.1109, Longitude: 8.6821, PriorityTier: 1},
	{Name: "Stuttgart", Latitude: 48.7758, Longitude: 9.1829, PriorityTier: 1},
	{Name: "Düsseldorf", Latitude: 51.2277, Longitude: 6.7735, PriorityTier: 1},
	{Name: "Leipzig", Latitude: 51.3397, Longitude: 12.3731, PriorityTier: 1},
	{Name: "Dresden", Latitude: 51.0504, Longitude: 13.7373, PriorityTier: 1},
	{Name: "Nürnberg", Latitude: 49.4521, Longitude: 11.0767, PriorityTier: 1},
	{Name: "Hannover", Latitude: 52.3759, Longitude: 9.7320, PriorityTier: 2},
	{Name: "Bremen", Latitude: 53.0793, Longitude: 8.8017, PriorityTier: 2},
	{Name: "Augsburg", Latitude: 48.3705, Longitude: 10.8978, PriorityTier: 2},
	{Name: "Freiburg im Breisgau", Latitude: 47.9990, Longitude: 7.8421, PriorityTier: 2},
	{Name: "Regensburg", Latitude: 49.0134, Longitude: 12.1016, PriorityTier: 2},
	{Name: "Münster", Latitude: 51.9607, Longitude: 7.6261, PriorityTier: 2},
	{Name: "Freising", Latitude: 48.4028, Longitude: 11.7489, PriorityTier: 2},
	{Name: "Konstanz", Latitude: 47.6603, Longitude: 9.1758, PriorityTier: 2},
	{Name: "Heidelberg", Latitude: 49.3988, Longitude: 8.6724, PriorityTier: 2},
	{Name: "Rostock", Latitude: 54.0924, Longitude: 12.0991, PriorityTier: 2},
}
