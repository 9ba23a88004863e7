// internal/system/combat.go
package system

import "go-coin-rush/internal/component"

// ApplyContactDamage снимает одну единицу здоровья за касание врага.
// Второе значение — true, если здоровье закончилось.
func ApplyContactDamage(p component.Player) (component.Player, bool) {
	p.Health--
	if p.Health <= 0 {
		p.Health = 0
		return p, true
	}
	return p, false
}
