// component/tower.go
package component

import "go-shape-defense/internal/types"

// TowerKind — центральная башня или построенная игроком
type TowerKind int

const (
	TowerCentral TowerKind = iota
	TowerPlaced
)

func (k TowerKind) String() string {
	if k == TowerCentral {
		return "central"
	}
	return "placed"
}

type Tower struct {
	ID   types.EntityID
	Kind TowerKind
	Position
	Health
	Weapon Weapon

	Radius    float64
	RegenRate float64 // Пассивная регенерация за тик (только построенные башни)

	Firing  Flash // Вспышка выстрела
	Damaged Flash // Вспышка получения урона
}
