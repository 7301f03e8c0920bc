package repo

import (
	"luckywheel/internal/pg"
	attemptrepo "luckywheel/internal/repo/attempt-repo"
	banrepo "luckywheel/internal/repo/ban-repo"
	historyrepo "luckywheel/internal/repo/history-repo"
	inventoryrepo "luckywheel/internal/repo/inventory-repo"
	ledgerrepo "luckywheel/internal/repo/ledger-repo"
	settingsrepo "luckywheel/internal/repo/settings-repo"
)

// Repositories holds the concrete stores. The fields stay concrete because
// the inventory, ledger, history, settings and ban repos each back both the
// lottery and admin service interfaces.
type Repositories struct {
	Attempts  *attemptrepo.Repository
	Inventory *inventoryrepo.Repository
	Ledger    *ledgerrepo.Repository
	History   *historyrepo.Repository
	Settings  *settingsrepo.Repository
	Bans      *banrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Attempts:  attemptrepo.New(conn),
		Inventory: inventoryrepo.New(conn),
		Ledger:    ledgerrepo.New(conn),
		History:   historyrepo.New(conn),
		Settings:  settingsrepo.New(conn, txManager),
		Bans:      banrepo.New(conn),
	}
}
