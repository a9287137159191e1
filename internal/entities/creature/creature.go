// Package creature holds the structured record produced from statblock text.
package creature

// Creature is the aggregate extracted from one statblock. Every field except
// Name is optional; nil or empty means the block was absent or unreadable.
type Creature struct {
	Name string `json:"name"`

	Racial     *RacialDetails `json:"racial,omitempty"`
	Armor      *Armor         `json:"armor,omitempty"`
	Health     *Roll          `json:"health,omitempty"`
	Souls      *Roll          `json:"souls,omitempty"`
	Speed      []NamedValue   `json:"speed,omitempty"`
	Initiative *int           `json:"initiative,omitempty"`

	Abilities    []NamedValue `json:"abilities,omitempty"`
	SavingThrows []string     `json:"saving_throws,omitempty"`
	Skills       []NamedValue `json:"skills,omitempty"`

	DamageResistances     *TraitSet `json:"damage_resistances,omitempty"`
	DamageImmunities      *TraitSet `json:"damage_immunities,omitempty"`
	DamageVulnerabilities *TraitSet `json:"damage_vulnerabilities,omitempty"`
	ConditionImmunities   *TraitSet `json:"condition_immunities,omitempty"`

	Senses        []NamedValue `json:"senses,omitempty"`
	SpecialSenses string       `json:"special_senses,omitempty"`
	Languages     *Languages   `json:"languages,omitempty"`
	Challenge     *Challenge   `json:"challenge,omitempty"`

	Features         []Entry `json:"features,omitempty"`
	Actions          []Entry `json:"actions,omitempty"`
	BonusActions     []Entry `json:"bonus_actions,omitempty"`
	Reactions        []Entry `json:"reactions,omitempty"`
	LegendaryActions []Entry `json:"legendary_actions,omitempty"`
	LairActions      []Entry `json:"lair_actions,omitempty"`
	MythicActions    []Entry `json:"mythic_actions,omitempty"`
	VillainActions   []Entry `json:"villain_actions,omitempty"`
	UtilitySpells    []Entry `json:"utility_spells,omitempty"`

	Spellcasting        *Spellcasting `json:"spellcasting,omitempty"`
	InnateSpellcasting  *Spellcasting `json:"innate_spellcasting,omitempty"`
	UtilitySpellcasting *Spellcasting `json:"utility_spellcasting,omitempty"`

	LegendaryActionCount int `json:"legendary_action_count,omitempty"`
	LegendaryResistances int `json:"legendary_resistances,omitempty"`
	LairInitiative       int `json:"lair_initiative,omitempty"`
}

// NamedValue pairs a name with a number: a speed mode, an ability score,
// a skill total or a sense range.
type NamedValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RacialDetails is the "Small humanoid (goblinoid), neutral evil" line
type RacialDetails struct {
	Size       string `json:"size,omitempty"`
	SwarmSize  string `json:"swarm_size,omitempty"`
	Type       string `json:"type,omitempty"`
	CustomType string `json:"custom_type,omitempty"`
	Race       string `json:"race,omitempty"`
	Alignment  string `json:"alignment,omitempty"`
}

// Armor is an armor class with what grants it
type Armor struct {
	Class   int      `json:"class"`
	Types   []string `json:"types,omitempty"`
	Natural bool     `json:"natural,omitempty"`
}

// Roll is a printed value with the dice formula it averages
type Roll struct {
	Value   int    `json:"value"`
	Formula string `json:"formula,omitempty"`
	// Average holds the printed value when Value has been replaced by a roll
	Average int `json:"average,omitempty"`
}

// TraitSet splits a damage or condition clause into vocabulary keywords and
// whatever text they could not account for.
type TraitSet struct {
	Known  []string `json:"known,omitempty"`
	Custom string   `json:"custom,omitempty"`
}

// IsEmpty reports whether neither part was populated
func (t *TraitSet) IsEmpty() bool {
	return t == nil || (len(t.Known) == 0 && t.Custom == "")
}

// Languages splits a languages line into known keywords and free text
type Languages struct {
	Known   []string `json:"known,omitempty"`
	Unknown []string `json:"unknown,omitempty"`
}

// Challenge is the challenge rating line
type Challenge struct {
	Rating float64 `json:"rating"`
	XP     int     `json:"xp,omitempty"`
	Role   string  `json:"role,omitempty"`
}

// Entry is one titled item inside a prose block. Body is display text;
// bulleted lists are rendered as <p> paragraphs.
type Entry struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Details *Details `json:"details,omitempty"`
}

// DescriptionTitle labels prose that precedes the first titled entry
const DescriptionTitle = "Description"

// Details are the mechanical annotations recognized inside an entry
type Details struct {
	Recharge    int          `json:"recharge,omitempty"`
	PerDay      int          `json:"per_day,omitempty"`
	Cost        int          `json:"cost,omitempty"`
	AttackBonus *int         `json:"attack_bonus,omitempty"`
	Reach       int          `json:"reach,omitempty"`
	Range       int          `json:"range,omitempty"`
	LongRange   int          `json:"long_range,omitempty"`
	SaveDC      int          `json:"save_dc,omitempty"`
	SaveAbility string       `json:"save_ability,omitempty"`
	Damage      []DamageRoll `json:"damage,omitempty"`
}

// DamageRoll is "7 (1d6 + 4) slashing damage"
type DamageRoll struct {
	Value   int    `json:"value"`
	Formula string `json:"formula,omitempty"`
	Type    string `json:"type,omitempty"`
}

// Spellcasting is one spell passage: leading prose followed by header groups
type Spellcasting struct {
	Description string       `json:"description,omitempty"`
	Level       int          `json:"level,omitempty"`
	Ability     string       `json:"ability,omitempty"`
	SaveDC      int          `json:"save_dc,omitempty"`
	Groups      []SpellGroup `json:"groups,omitempty"`
}

// SpellGroup is "1st level (4 slots): detect magic, magic missile"
type SpellGroup struct {
	Header string   `json:"header"`
	Spells []string `json:"spells"`
	Slots  int      `json:"slots,omitempty"`
	PerDay int      `json:"per_day,omitempty"`
	AtWill bool     `json:"at_will,omitempty"`
}

// HasHover reports whether the hover pseudo-mode was recorded in speeds
func (c *Creature) HasHover() bool {
	for _, s := range c.Speed {
		if s.Name == SpeedHover {
			return true
		}
	}
	return false
}

// Ability returns the score for an ability identifier such as "dex"
func (c *Creature) Ability(name string) (int, bool) {
	for _, a := range c.Abilities {
		if a.Name == name {
			return a.Value, true
		}
	}
	return 0, false
}
