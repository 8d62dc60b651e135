package item

// pair is an unordered item pair used as a combination lookup key. newPair
// normalizes ordering, so combine(a,b) and combine(b,a) hit the same rule.
type pair struct {
	first, second string
}

func newPair(a, b string) pair {
	if a > b {
		a, b = b, a
	}
	return pair{first: a, second: b}
}

// String renders the pair for persistence ("a+b", normalized order).
func (p pair) String() string {
	return p.first + "+" + p.second
}

type combination struct {
	// resultFlag is set in game state when the combination fires.
	resultFlag  string
	description string
	// removes lists inputs consumed by the combination, if any.
	removes []string
}

var combinationTable = map[pair]combination{
	newPair("magnifying_glass", "coded_message"): {
		resultFlag:  "decoded_message",
		description: "Using the magnifying glass, you notice tiny numbers written between the lines of the coded message. This could be important.",
	},
	newPair("coffee", "case_file"): {
		resultFlag:  "case_insights",
		description: "As you review the case file while drinking coffee, you notice patterns you missed before. The timeline of thefts corresponds with ship maintenance schedules.",
		removes:     []string{"coffee"},
	},
	newPair("old_map", "building_directory"): {
		resultFlag:  "mapped_route",
		description: "Comparing the old map with the building directory reveals a possible connection between the warehouse district and underground tunnels.",
	},
	newPair("radio_manual", "coded_message"): {
		resultFlag:  "radio_frequency",
		description: "The manual's frequency tables help you decode what appears to be a radio frequency hidden in the message.",
	},
	newPair("evidence_log", "shipping_manifest"): {
		resultFlag:  "evidence_connection",
		description: "Cross-referencing the evidence log with the shipping manifest reveals a pattern of missing medical supplies.",
	},
	newPair("newspaper_piece_1", "newspaper_piece_2"): {
		resultFlag:  "partial_story_1",
		description: "The pieces fit together, revealing more about the suspicious activities at the docks and early investigation efforts.",
	},
	newPair("newspaper_piece_2", "newspaper_piece_3"): {
		resultFlag:  "partial_story_2",
		description: "These pieces connect the timeline of events from the initial reports to the port authority's involvement.",
	},
	newPair("newspaper_piece_3", "newspaper_piece_4"): {
		resultFlag:  "partial_story_3",
		description: "The combined pieces shed light on connections between Seattle's port and other West Coast cities.",
	},
}
