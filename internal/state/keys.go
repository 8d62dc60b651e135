package state

// Declared game state keys. Components refer to these constants rather than
// string literals so a typo fails to compile.
const (
	// Case-critical flags; all must be true (with the evidence collected)
	// to close the case.
	SpokeToWitness     = "spoke_to_witness"
	DiscoveredClue     = "discovered_clue"
	SolvedCipher       = "solved_cipher"
	SolvedRadioPuzzle  = "solved_radio_puzzle"
	FoundSecretRoom    = "found_secret_room"
	TrackedCar         = "tracked_car"
	EvidenceConnection = "evidence_connection"
	DecodedMessage     = "decoded_message"
	MappedRoute        = "mapped_route"

	// Item and access flags.
	HasBadge               = "has_badge"
	HasBadgeShown          = "has_badge_shown"
	FoundWallet            = "found_wallet"
	FoundTornLetter        = "found_torn_letter"
	FoundDockSchedule      = "found_dock_schedule"
	FoundSmugglingPlans    = "found_smuggling_plans"
	FoundCodedMessage      = "found_coded_message"
	WarehouseUnlocked      = "warehouse_unlocked"
	ExaminedCode           = "examined_code"
	UnderstoodRadio        = "understood_radio"
	ObservedActivity       = "observed_suspicious_activity"
	CompletedSmithTower    = "completed_smith_tower"
	FoundAllNewspaper      = "found_all_newspaper_pieces"
	CaseInsights           = "case_insights"
	RadioFrequency         = "radio_frequency"
	DecodedAllCiphers      = "decoded_all_ciphers"
	DecodedDockSeven       = "decoded_dock_seven"
	PartialStory1          = "partial_story_1"
	PartialStory2          = "partial_story_2"
	PartialStory3          = "partial_story_3"
	CipherMastery          = "mastered_cipher_puzzle"
	RadioMastery           = "mastered_radio_puzzle"
	MorseMastery           = "mastered_morse_puzzle"
	VehicleMastery         = "mastered_car_puzzle"

	// Cumulative wrong-answer tallies, kept across sessions.
	CipherAttempts  = "cipher_attempts"
	MorseAttempts   = "morse_attempts"
	VehicleAttempts = "car_tracking_attempts"

	// Text values.
	DetectiveName = "detective_name"
)

type kind int

const (
	kindFlag kind = iota
	kindCounter
	kindText
)

type keyDef struct {
	kind     kind
	critical bool
	initial  interface{}
}

func flagDef(critical bool) keyDef {
	return keyDef{kind: kindFlag, critical: critical, initial: false}
}

func counterDef() keyDef { return keyDef{kind: kindCounter, initial: 0} }

func textDef(initial string) keyDef { return keyDef{kind: kindText, initial: initial} }

var registry = map[string]keyDef{
	SpokeToWitness:     flagDef(true),
	DiscoveredClue:     flagDef(true),
	SolvedCipher:       flagDef(true),
	SolvedRadioPuzzle:  flagDef(true),
	FoundSecretRoom:    flagDef(true),
	TrackedCar:         flagDef(true),
	EvidenceConnection: flagDef(true),
	DecodedMessage:     flagDef(true),
	MappedRoute:        flagDef(true),

	HasBadge:            flagDef(false),
	HasBadgeShown:       flagDef(false),
	FoundWallet:         flagDef(false),
	FoundTornLetter:     flagDef(false),
	FoundDockSchedule:   flagDef(false),
	FoundSmugglingPlans: flagDef(false),
	FoundCodedMessage:   flagDef(false),
	WarehouseUnlocked:   flagDef(false),
	ExaminedCode:        flagDef(false),
	UnderstoodRadio:     flagDef(false),
	ObservedActivity:    flagDef(false),
	CompletedSmithTower: flagDef(false),
	FoundAllNewspaper:   flagDef(false),
	CaseInsights:        flagDef(false),
	RadioFrequency:      flagDef(false),
	DecodedAllCiphers:   flagDef(false),
	DecodedDockSeven:    flagDef(false),
	PartialStory1:       flagDef(false),
	PartialStory2:       flagDef(false),
	PartialStory3:       flagDef(false),
	CipherMastery:       flagDef(false),
	RadioMastery:        flagDef(false),
	MorseMastery:        flagDef(false),
	VehicleMastery:      flagDef(false),

	CipherAttempts:  counterDef(),
	MorseAttempts:   counterDef(),
	VehicleAttempts: counterDef(),

	DetectiveName: textDef("Johnny Diamond"),
}

// CaseStates lists the flags that must all be true for the case to close.
var CaseStates = []string{
	SpokeToWitness,
	DiscoveredClue,
	SolvedCipher,
	SolvedRadioPuzzle,
	FoundSecretRoom,
	TrackedCar,
	EvidenceConnection,
	DecodedMessage,
	MappedRoute,
}
