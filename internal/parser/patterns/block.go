// Package patterns is the registry of regular expressions that recognize
// statblock blocks and the fields inside them. Everything here is built
// once at init and is safe for concurrent use.
package patterns

// BlockID identifies one semantic section of a statblock
type BlockID int

// Block identifiers. BlockNone is the zero value and never opens a block.
const (
	BlockNone BlockID = iota
	BlockArmor
	BlockActions
	BlockAbilities
	BlockBonusActions
	BlockChallenge
	BlockConditionImmunities
	BlockDamageImmunities
	BlockDamageResistances
	BlockDamageVulnerabilities
	BlockFeatures
	BlockHealth
	BlockInitiative
	BlockLairActions
	BlockLanguages
	BlockLegendaryActions
	BlockMythicActions
	BlockProficiencyBonus
	BlockRacialDetails
	BlockReactions
	BlockSavingThrows
	BlockSenses
	BlockSkills
	BlockSouls
	BlockSpeed
	BlockTraits
	BlockUtilitySpells
	BlockVillainActions
)

var blockNames = map[BlockID]string{
	BlockNone:                  "none",
	BlockArmor:                 "armor",
	BlockActions:               "actions",
	BlockAbilities:             "abilities",
	BlockBonusActions:          "bonus_actions",
	BlockChallenge:             "challenge",
	BlockConditionImmunities:   "condition_immunities",
	BlockDamageImmunities:      "damage_immunities",
	BlockDamageResistances:     "damage_resistances",
	BlockDamageVulnerabilities: "damage_vulnerabilities",
	BlockFeatures:              "features",
	BlockHealth:                "health",
	BlockInitiative:            "initiative",
	BlockLairActions:           "lair_actions",
	BlockLanguages:             "languages",
	BlockLegendaryActions:      "legendary_actions",
	BlockMythicActions:         "mythic_actions",
	BlockProficiencyBonus:      "proficiency_bonus",
	BlockRacialDetails:         "racial_details",
	BlockReactions:             "reactions",
	BlockSavingThrows:          "saving_throws",
	BlockSenses:                "senses",
	BlockSkills:                "skills",
	BlockSouls:                 "souls",
	BlockSpeed:                 "speed",
	BlockTraits:                "traits",
	BlockUtilitySpells:         "utility_spells",
	BlockVillainActions:        "villain_actions",
}

// String returns the snake_case name of the block
func (b BlockID) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return "unknown"
}

// MarshalText lets block IDs key JSON objects by name
func (b BlockID) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// IsTop reports whether the block belongs to the header section that
// precedes the prose blocks.
func (b BlockID) IsTop() bool {
	switch b {
	case BlockArmor, BlockAbilities, BlockChallenge, BlockConditionImmunities,
		BlockDamageImmunities, BlockDamageResistances, BlockDamageVulnerabilities,
		BlockHealth, BlockInitiative, BlockLanguages, BlockProficiencyBonus,
		BlockRacialDetails, BlockSavingThrows, BlockSenses, BlockSkills,
		BlockSouls, BlockSpeed:
		return true
	}
	return false
}

// IsProse reports whether the block holds titled prose entries
func (b BlockID) IsProse() bool {
	switch b {
	case BlockActions, BlockBonusActions, BlockFeatures, BlockLairActions,
		BlockLegendaryActions, BlockMythicActions, BlockReactions, BlockTraits,
		BlockUtilitySpells, BlockVillainActions:
		return true
	}
	return false
}
