package component

// UpgradeKind — идентификатор улучшения из каталога
type UpgradeKind string

// UpgradeLedger — уровни улучшений и пассивные накопители
type UpgradeLedger struct {
	Levels        map[UpgradeKind]int
	PassiveIncome float64 // Валюта за тик
	PlayerRegen   float64 // HP игрока за тик
	CentralRegen  float64 // HP центральной башни за тик
}

// Level возвращает текущий уровень улучшения.
func (l *UpgradeLedger) Level(kind UpgradeKind) int {
	return l.Levels[kind]
}
