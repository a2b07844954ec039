package character

// AllocationPolicy determines how level-up attribute points are spent without
// manual intervention.
type AllocationPolicy string

const (
	// PolicyManual banks the point as an unspent attribute point.
	PolicyManual AllocationPolicy = "manual"
	// PolicyStrength, PolicyAgility, PolicyIntellect, and PolicyStamina each
	// target a single fixed attribute.
	PolicyStrength  AllocationPolicy = "strength"
	PolicyAgility   AllocationPolicy = "agility"
	PolicyIntellect AllocationPolicy = "intellect"
	PolicyStamina   AllocationPolicy = "stamina"
	// PolicyStrStam alternates strength (even levels) and stamina (odd).
	PolicyStrStam AllocationPolicy = "strength_stamina"
	// PolicyAgiStam alternates agility (even levels) and stamina (odd).
	PolicyAgiStam AllocationPolicy = "agility_stamina"
)

// Valid reports whether p is a recognized allocation policy.
func (p AllocationPolicy) Valid() bool {
	switch p {
	case PolicyManual, PolicyStrength, PolicyAgility, PolicyIntellect,
		PolicyStamina, PolicyStrStam, PolicyAgiStam:
		return true
	}
	return false
}

// Target returns the attribute a level-up point should land on at the given
// level, or "" for PolicyManual (the point stays unspent).
//
// Postcondition: alternation policies are keyed by level parity, so the same
// level always yields the same attribute.
func (p AllocationPolicy) Target(level int) Attribute {
	switch p {
	case PolicyStrength:
		return Strength
	case PolicyAgility:
		return Agility
	case PolicyIntellect:
		return Intellect
	case PolicyStamina:
		return Stamina
	case PolicyStrStam:
		if level%2 == 0 {
			return Strength
		}
		return Stamina
	case PolicyAgiStam:
		if level%2 == 0 {
			return Agility
		}
		return Stamina
	}
	return ""
}
