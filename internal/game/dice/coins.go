package dice

import (
	"fmt"
	"strings"
)

const (
	// CopperPerSilver is the number of base-unit Copper in one Silver.
	CopperPerSilver = 100
	// CopperPerGold is the number of base-unit Copper in one Gold (100 Silver).
	CopperPerGold = 10000
)

// DecomposeCoins converts a total copper count into display tiers.
//
// Precondition: total >= 0.
// Postcondition: gold*10000 + silver*100 + copper == total; 0 <= silver < 100;
// 0 <= copper < 100.
func DecomposeCoins(total int) (gold, silver, copper int) {
	gold = total / CopperPerGold
	remainder := total % CopperPerGold
	silver = remainder / CopperPerSilver
	copper = remainder % CopperPerSilver
	return gold, silver, copper
}

// FormatCoins returns a human-readable currency string for the given total
// copper.
//
// Precondition: total >= 0.
// Postcondition: returned string omits zero-valued higher tiers (except
// Copper, which always appears).
func FormatCoins(total int) string {
	gold, silver, copper := DecomposeCoins(total)

	var parts []string
	if gold > 0 {
		parts = append(parts, fmt.Sprintf("%dg", gold))
	}
	if silver > 0 {
		parts = append(parts, fmt.Sprintf("%ds", silver))
	}
	parts = append(parts, fmt.Sprintf("%dc", copper))

	return strings.Join(parts, " ")
}
