package item

// Definition is static reference data for one item. Items have no identity
// beyond their identifier; holding one is boolean presence, not quantity.
type Definition struct {
	Basic    string
	Detailed string
	// UseLocations lists where `use` has an effect; UseEffects maps a
	// location (or "all") to the effect text.
	UseLocations []string
	UseEffects   map[string]string
	Consumable   bool
}

// AllLocations is the UseEffects key for an effect that works anywhere the
// item is usable.
const AllLocations = "all"

// NewspaperPieceCount is how many pieces the full story needs.
const NewspaperPieceCount = 8

// requiredEvidence maps the five case-critical items to the story flag set
// when each is first picked up.
var requiredEvidence = map[string]string{
	"torn_letter":     "found_torn_letter",
	"dock_schedule":   "found_dock_schedule",
	"wallet":          "found_wallet",
	"smuggling_plans": "found_smuggling_plans",
	"coded_message":   "found_coded_message",
}

// specialUseFlags maps (item, location) pairs to the flag set when the item
// is used there.
var specialUseFlags = map[[2]string]string{
	{"badge", "smith_tower"}:             "has_badge_shown",
	{"binoculars", "observation_deck"}:   "observed_suspicious_activity",
	{"old_key", "suspicious_warehouse"}:  "warehouse_unlocked",
	{"radio_manual", "warehouse_office"}: "understood_radio",
}

var registry = map[string]Definition{
	"badge": {
		Basic:        "Your detective's badge, recently polished. Number 738.",
		Detailed:     "A Seattle Police Department detective's badge, its silver surface showing slight wear. The design dates from the 1930s reform era, featuring the city seal and your number: 738. It carries the weight of responsibility and authority in post-war Seattle.",
		UseLocations: []string{"smith_tower", "warehouse_district", "suspicious_warehouse"},
		UseEffects: map[string]string{
			"smith_tower": "The security guard examines your badge and nods respectfully, granting you access.",
		},
	},
	"case_file": {
		Basic:        "A detailed file about recent cargo thefts at the waterfront.",
		Detailed:     "A thick manila folder containing reports of cargo thefts. The papers inside smell of tobacco smoke from the briefing room. Post-war shipping records show an alarming pattern of medical supply disappearances.",
		UseLocations: []string{"police_station", "captain_office"},
		UseEffects: map[string]string{
			"police_station": "You review the file carefully, noting key details about the cargo theft pattern.",
		},
	},
	"magnifying_glass": {
		Basic:        "A standard-issue detective's magnifying glass.",
		Detailed:     "A well-maintained magnifying glass with a brass frame and wooden handle. The kind of tool that reveals the details others miss. Its glass is pristine, perfect for examining evidence closely.",
		UseLocations: []string{"evidence_room", "warehouse_office"},
		UseEffects: map[string]string{
			"evidence_room": "You use the magnifying glass to examine evidence more closely.",
		},
	},
	"coffee": {
		Basic:        "A cup of the station's notoriously strong coffee.",
		Detailed:     "A cup of coffee from the station's ancient percolator. The ceramic mug has a chip on the rim and bears the faded SPD logo. The coffee is strong enough to wake the dead - just the way Seattle's finest like it.",
		UseLocations: []string{AllLocations},
		UseEffects: map[string]string{
			AllLocations: "You drink the strong coffee, feeling more alert and focused.",
		},
		Consumable: true,
	},
	"wallet": {
		Basic:        "A worn leather wallet someone dropped near the market stalls.",
		Detailed:     "A worn leather wallet. Inside you find a business card for 'Maritime Imports Ltd.' and a few rain-spotted dollar bills. No identification.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You log the wallet and its business card into evidence.",
		},
	},
	"torn_letter": {
		Basic:        "A hastily torn letter with half a shipping address.",
		Detailed:     "The remaining half of a typewritten letter. It references 'the usual arrangement' and a delivery window after midnight. The letterhead is torn away, but the paper stock is expensive.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You file the torn letter with the other waterfront evidence.",
		},
	},
	"cipher_wheel": {
		Basic:        "A brass cipher wheel with rotating alphabets.",
		Detailed:     "A complex wheel with two rotating alphabet rings. Aligning the rings in different positions produces different letter substitutions. Might be useful for decoding messages.",
		UseLocations: []string{"evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You line the cipher wheel up against the markings scratched into the work table.",
		},
	},
	"newspaper_piece_1": {
		Basic:        "A torn piece of newspaper mentioning suspicious activities at the docks.",
		Detailed:     "A torn section of the Seattle Post-Intelligencer. The visible date shows last Tuesday. The article mentions unusual night-time activities at Pier 48. Coffee stains mark the corners.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You carefully file the newspaper piece as evidence.",
		},
	},
	"newspaper_piece_2": {
		Basic:        "A torn newspaper piece about port authority investigations.",
		Detailed:     "Another piece of the Seattle Post-Intelligencer. This section details the port authority's initial investigation and mentions several missing shipments.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You carefully file the newspaper piece as evidence.",
		},
	},
	"newspaper_piece_3": {
		Basic:        "A newspaper fragment discussing harbor patrol findings.",
		Detailed:     "This piece of the article focuses on harbor patrol reports and their unsuccessful attempts to catch perpetrators in the act.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You carefully file the newspaper piece as evidence.",
		},
	},
	"newspaper_piece_4": {
		Basic:        "A newspaper section about West Coast connections.",
		Detailed:     "This piece mentions similar incidents in other West Coast ports, suggesting a larger operation.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You carefully file the newspaper piece as evidence.",
		},
	},
	"old_key": {
		Basic:        "A rusty key found in the underground tunnels.",
		Detailed:     "An old brass key, its surface darkened with age. The worn teeth and distinctive craft suggest it dates back to the early 1900s. The head bears a faint marking: 'W.D.' - Warehouse District?",
		UseLocations: []string{"suspicious_warehouse", "warehouse_district"},
		UseEffects: map[string]string{
			"suspicious_warehouse": "The key fits perfectly in the lock, though it takes some effort to turn.",
		},
	},
	"radio_manual": {
		Basic:        "A technical manual for police radio equipment.",
		Detailed:     "A well-worn technical manual dated 1945. Pages of frequency tables and operation codes, some marked with recent pencil annotations. The cover bears the seal of the War Department.",
		UseLocations: []string{"police_station", "warehouse_office"},
		UseEffects: map[string]string{
			"warehouse_office": "You reference the manual's frequency tables while examining the radio equipment.",
		},
	},
	"coded_message": {
		Basic:        "A message written in some kind of code.",
		Detailed:     "A piece of paper with lines of seemingly random letters and numbers. The paper quality and typewriter font suggest recent origin. Certain characters have subtle marks beneath them.",
		UseLocations: []string{"police_station", "evidence_room", "warehouse_office"},
		UseEffects: map[string]string{
			"police_station": "You begin analyzing the coded message, noting patterns in the text.",
		},
	},
	"binoculars": {
		Basic:        "A pair of high-quality binoculars.",
		Detailed:     "Military-surplus binoculars with 'U.S.N. 1944' stamped on the side. The optics are excellent - perfect for surveillance. They're heavy but well-balanced, with leather neck strap.",
		UseLocations: []string{"observation_deck", "waterfront"},
		UseEffects: map[string]string{
			"observation_deck": "From this height, the binoculars give you a clear view of suspicious activity at the docks.",
			"waterfront":       "You observe several workers making suspicious exchanges near Pier 48.",
		},
	},
	"newspaper_piece_5": {
		Basic:        "A newspaper piece about warehouse district activity.",
		Detailed:     "This section of the article describes increased truck traffic through the warehouse district at odd hours, noted by night watchmen.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You carefully file the newspaper piece as evidence.",
		},
	},
	"newspaper_piece_6": {
		Basic:        "A newspaper fragment about missing medical supplies.",
		Detailed:     "This piece details the specific cargo gone missing: penicillin, surgical instruments, and machinery parts bound for veterans' hospitals.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You carefully file the newspaper piece as evidence.",
		},
	},
	"newspaper_piece_7": {
		Basic:        "A newspaper piece quoting port security officials.",
		Detailed:     "Port security chief Thomas McKinnon is quoted pledging cooperation with the police department. The margins carry someone's pencilled question marks.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You carefully file the newspaper piece as evidence.",
		},
	},
	"newspaper_piece_8": {
		Basic:        "The final piece of the newspaper story.",
		Detailed:     "The article's conclusion, speculating about connections to San Francisco and Vancouver. With this, the whole story can be assembled.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You carefully file the newspaper piece as evidence.",
		},
	},
	"old_map": {
		Basic:        "A faded map of Seattle's underground tunnel network.",
		Detailed:     "A pre-regrade map of Pioneer Square, showing passages beneath the raised streets. Several routes are marked in pencil, one leading toward the waterfront.",
		UseLocations: []string{"underground_tunnels", "pioneer_square"},
		UseEffects: map[string]string{
			"underground_tunnels": "The map helps you make sense of the branching passages.",
		},
	},
	"dock_schedule": {
		Basic:        "A weathered shipping schedule for the waterfront docks.",
		Detailed:     "A typed schedule of arrivals and departures at Piers 46 through 50. Several night arrivals are circled in red pencil, all at Pier 48.",
		UseLocations: []string{"police_station", "evidence_room", "waterfront"},
		UseEffects: map[string]string{
			"waterfront": "You compare the schedule against the ships currently at berth. One arrival isn't logged anywhere official.",
		},
	},
	"shipping_manifest": {
		Basic:        "A cargo manifest listing recent shipments.",
		Detailed:     "A carbon-copy manifest for inbound cargo. The quantities for several crates of medical supplies have been altered, the original figures scratched out.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You log the altered manifest into evidence.",
		},
	},
	"evidence_log": {
		Basic:        "The evidence room's master log book.",
		Detailed:     "A leather-bound ledger recording every piece of evidence checked in since 1939. Recent entries reference cargo theft cases with several items marked 'transferred' in unfamiliar handwriting.",
		UseLocations: []string{"evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You page through the log, noting the pattern of transferred evidence.",
		},
	},
	"manifest_book": {
		Basic:        "A ledger of the warehouse's incoming and outgoing cargo.",
		Detailed:     "A thick ledger kept in a careful hand. Legitimate entries alternate with coded abbreviations. The most recent pages list deliveries scheduled after midnight.",
		UseLocations: []string{"warehouse_interior", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You log the warehouse ledger into evidence.",
		},
	},
	"case_briefing": {
		Basic:        "Captain Morrison's briefing notes on the waterfront case.",
		Detailed:     "Handwritten notes summarizing the case to date: missing medical supplies, no arrests, pressure from City Hall. The last line reads 'Diamond - discreet, fast.'",
		UseLocations: []string{"police_station", "captain_office"},
		UseEffects: map[string]string{
			"captain_office": "You review the briefing with the captain's priorities in mind.",
		},
	},
	"building_directory": {
		Basic:        "A directory of Smith Tower's tenants.",
		Detailed:     "The tower's tenant directory, dated this year. Among the law firms and import offices, one listing stands out: 'Maritime Imports Ltd., Suite 1208.'",
		UseLocations: []string{"smith_tower"},
		UseEffects: map[string]string{
			"smith_tower": "You note the suite number for Maritime Imports Ltd.",
		},
	},
	"smuggling_plans": {
		Basic:        "Detailed plans of the smuggling operation.",
		Detailed:     "A folder of route maps, contact names, and delivery schedules. This is the operation laid bare: who, where, and when. Enough to close the case.",
		UseLocations: []string{"police_station", "evidence_room"},
		UseEffects: map[string]string{
			"evidence_room": "You secure the smuggling plans as the centerpiece of the case.",
		},
	},
	"apple": {
		Basic:        "A fresh apple from a market stall.",
		Detailed:     "A crisp Washington apple, polished to a shine by the vendor. The market's produce is the best in the city.",
		UseLocations: []string{AllLocations},
		UseEffects: map[string]string{
			AllLocations: "You eat the apple. Crisp and sweet - Washington's finest.",
		},
		Consumable: true,
	},
	"coffee_cup": {
		Basic:        "A diner coffee cup, still warm.",
		Detailed:     "A heavy ceramic cup from Joe's Diner. A lipstick mark on the rim suggests it belonged to the nervous witness.",
		UseLocations: []string{"diner"},
		UseEffects: map[string]string{
			"diner": "You turn the cup in your hands. The witness watches you, then looks away.",
		},
	},
	"trolley_schedule": {
		Basic:        "A printed schedule for the city trolley lines.",
		Detailed:     "The trolley timetable for 1947. The route runs Downtown, Pioneer Square, Waterfront, Smith Tower, then loops. Last run at midnight.",
		UseLocations: []string{"trolley_stop", "trolley"},
		UseEffects: map[string]string{
			"trolley_stop": "You check the schedule. The next trolley is due any minute.",
		},
	},
}

// RequiredItems lists the evidence items that must be in hand to close the
// case, in a stable order for reporting.
func RequiredItems() []string {
	return []string{"wallet", "torn_letter", "dock_schedule", "coded_message", "smuggling_plans"}
}

// Known reports whether an identifier is in the registry.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// Describe returns the basic description for an identifier, or a fallback.
func Describe(id string) string {
	if def, ok := registry[id]; ok {
		return def.Basic
	}
	return "No description available."
}
