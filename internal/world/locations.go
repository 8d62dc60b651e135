package world

// StartLocation is where every new playthrough begins.
const StartLocation = "police_station"

// locationTable is the static map of 1947 Seattle. It is deep-copied per
// game; the copies carry the mutable item lists and first-visit flags.
var locationTable = map[string]Location{
	"police_station": {
		ID:          "police_station",
		Description: "You're in the Seattle Police Department headquarters, housed in the Public Safety Building on 4th Avenue. Built in 1909, this fortress-like building has seen its share of cases. The wooden walls are lined with wanted posters, and the smell of coffee fills the air. Your desk is covered with case files.",
		Exits: map[string]string{
			"outside":  "pike_place",
			"office":   "captain_office",
			"basement": "evidence_room",
		},
		Items:          []string{"badge", "case_file", "coffee"},
		FirstVisit:     true,
		HistoricalNote: "The Seattle Police Department played a crucial role during WWII, coordinating with the Coast Guard to protect the vital shipyards.",
	},
	"pike_place": {
		ID:          "pike_place",
		Description: "The bustling Pike Place Market stretches before you. Even in the post-war era, it's a hive of activity. Fishmongers call out their daily catches, and the aroma of fresh produce fills the air. The historic clock reads 10:45.",
		Exits: map[string]string{
			"north": "police_station",
			"south": "pioneer_square",
			"east":  "trolley_stop",
			"west":  "waterfront",
			"diner": "diner",
		},
		Items:          []string{"newspaper_piece_1", "apple", "wallet"},
		FirstVisit:     true,
		HistoricalNote: "Pike Place Market, opened in 1907, served as a crucial connection between local farmers and urban customers during the war years.",
	},
	"diner": {
		ID:          "diner",
		Description: "The neon sign of 'Joe's Diner' flickers above. Inside, the chrome and red vinyl booths shine under fluorescent lights. A nervous witness sits in the corner. The radio plays hits from Glenn Miller.",
		Exits: map[string]string{
			"out": "pike_place",
		},
		Items:          []string{"coffee_cup"},
		FirstVisit:     true,
		HistoricalNote: "Diners like this were gathering spots for war news and rationing information.",
	},
	"pioneer_square": {
		ID:          "pioneer_square",
		Description: "The historic heart of Seattle surrounds you. Red brick buildings from the late 1800s line the streets. The iconic pergola stands as a testament to the city's past. Underground tour guides share tales of the city's history with passing tourists.",
		Exits: map[string]string{
			"north":       "pike_place",
			"east":        "smith_tower",
			"underground": "underground_tunnels",
		},
		Items:          []string{"newspaper_piece_2", "old_map"},
		FirstVisit:     true,
		HistoricalNote: "Pioneer Square was Seattle's first neighborhood, rebuilt in brick after the Great Seattle Fire of 1889.",
	},
	"waterfront": {
		ID:          "waterfront",
		Description: "The busy waterfront docks stretch along Elliott Bay. Cargo ships load and unload their wares, while seagulls wheel overhead. The salty air carries the sounds of maritime commerce.",
		Exits: map[string]string{
			"east":  "pike_place",
			"north": "warehouse_district",
		},
		Items:          []string{"newspaper_piece_3", "dock_schedule"},
		FirstVisit:     true,
		HistoricalNote: "Seattle's waterfront was a crucial link in the Pacific theater during WWII, handling military supplies and shipbuilding.",
	},
	"warehouse_district": {
		ID:          "warehouse_district",
		Description: "Rows of industrial warehouses line the street. The smell of salt water mingles with diesel fuel. Workers move cargo between buildings and the nearby docks.",
		Exits: map[string]string{
			"south": "waterfront",
			"north": "suspicious_warehouse",
		},
		Items:          []string{"newspaper_piece_5", "shipping_manifest"},
		FirstVisit:     true,
		HistoricalNote: "The warehouse district expanded rapidly during WWII to handle increased military shipping.",
	},
	"suspicious_warehouse": {
		ID:          "suspicious_warehouse",
		Description: "This warehouse looks abandoned at first glance, but you notice signs of recent activity. The windows are covered, and fresh tire tracks mark the entrance.",
		Exits: map[string]string{
			"south": "warehouse_district",
			"enter": "warehouse_interior",
		},
		Items:          []string{},
		FirstVisit:     true,
		HistoricalNote: "Many warehouses were converted from military to civilian use after the war, creating opportunities for illegal operations.",
	},
	"warehouse_interior": {
		ID:          "warehouse_interior",
		Description: "Inside the warehouse, you find evidence of an organized operation. Crates are stacked systematically, and an office area is set up in the corner.",
		Exits: map[string]string{
			"exit":   "suspicious_warehouse",
			"office": "warehouse_office",
		},
		Items:          []string{"newspaper_piece_6", "manifest_book", "torn_letter"},
		FirstVisit:     true,
		HistoricalNote: "The interior layout matches standard military supply warehouse designs from the war.",
		Requires:       "warehouse_unlocked",
	},
	"warehouse_office": {
		ID:          "warehouse_office",
		Description: "A small office with a desk, filing cabinet, and radio equipment. Papers are scattered across the desk, some partially burned.",
		Exits: map[string]string{
			"main": "warehouse_interior",
		},
		Items:          []string{"coded_message", "radio_manual"},
		FirstVisit:     true,
		HistoricalNote: "Radio equipment like this was commonly used for coordinating military shipments during the war.",
	},
	"captain_office": {
		ID:          "captain_office",
		Description: "Captain Morrison's office is neat and orderly. A large window overlooks the street below, and citations line the walls. His desk holds a radio and several urgent reports.",
		Exits: map[string]string{
			"out": "police_station",
		},
		Items:          []string{"case_briefing"},
		FirstVisit:     true,
		HistoricalNote: "The office has been occupied by every Seattle Police Captain since 1909.",
	},
	"evidence_room": {
		ID:          "evidence_room",
		Description: "Metal shelving units fill this basement room. Evidence boxes from various cases are carefully catalogued and stored. A work table sits in the center for examining items. Several encoded messages are scratched into the table's surface.",
		Exits: map[string]string{
			"up": "police_station",
		},
		Items:          []string{"evidence_log", "magnifying_glass", "cipher_wheel"},
		FirstVisit:     true,
		HistoricalNote: "The evidence room's organization system was modernized during the 1930s reform era.",
	},
	"trolley_stop": {
		ID:          "trolley_stop",
		Description: "A covered trolley stop with a wooden bench. A route map shows stops throughout the city. The tracks gleam in the light.",
		Exits: map[string]string{
			"board": "trolley",
			"west":  "pike_place",
		},
		Items:          []string{"trolley_schedule"},
		FirstVisit:     true,
		HistoricalNote: "Seattle's trolley system, started in 1884, was essential for connecting the city's neighborhoods.",
	},
	"trolley": {
		ID:          "trolley",
		Description: "You're aboard one of Seattle's electric trolleys. The wooden seats and brass fixtures speak to an earlier era. Through the windows, you can see the city passing by.",
		Exits:       map[string]string{},
		Items:       []string{},
		FirstVisit:  true,
		HistoricalNote: "Seattle's trolley system, dating from 1884, was instrumental in the city's early growth, connecting neighborhoods that were once separated by difficult terrain.",
	},
	"smith_tower": {
		ID:          "smith_tower",
		Description: "The famous Smith Tower rises above you, its white terra cotta gleaming. Once the tallest building west of the Mississippi, it still commands respect. The elegant lobby features intricate bronze and marble work.",
		Exits: map[string]string{
			"west":     "pioneer_square",
			"elevator": "observation_deck",
		},
		Items:          []string{"building_directory"},
		FirstVisit:     true,
		HistoricalNote: "Completed in 1914, the Smith Tower remained the tallest building on the West Coast until the Space Needle was built in 1962.",
		Requires:       "has_badge",
	},
	"observation_deck": {
		ID:          "observation_deck",
		Description: "The Chinese Room and observation deck offer a panoramic view of Seattle. The ornate ceiling and carved woodwork contrast with the modern city visible through the windows.",
		Exits: map[string]string{
			"elevator": "smith_tower",
		},
		Items:          []string{"newspaper_piece_7", "binoculars"},
		FirstVisit:     true,
		HistoricalNote: "The Chinese Room's furniture was a gift from the Empress of China.",
	},
	"underground_tunnels": {
		ID:          "underground_tunnels",
		Description: "The infamous Seattle Underground stretches before you. Brick-lined passages and remnants of old storefronts tell the story of the city's resurrection after the Great Fire. The air is cool and damp. Somewhere in the walls, a faint tapping repeats.",
		Exits: map[string]string{
			"up":    "pioneer_square",
			"north": "secret_warehouse",
		},
		Items:          []string{"newspaper_piece_4", "old_key"},
		FirstVisit:     true,
		HistoricalNote: "These tunnels were created when Seattle raised its streets one to two stories after the Great Fire of 1889.",
	},
	"secret_warehouse": {
		ID:          "secret_warehouse",
		Description: "A hidden storage area connected to the underground tunnels. Crates marked with medical symbols are stacked against the walls. A makeshift office contains detailed records.",
		Exits: map[string]string{
			"south": "underground_tunnels",
		},
		Items:          []string{"newspaper_piece_8", "smuggling_plans"},
		FirstVisit:     true,
		HistoricalNote: "The underground areas were occasionally used for illegal storage during Prohibition.",
		Requires:       "found_secret_room",
	},
}
