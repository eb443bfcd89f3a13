package repository

import (
	"context"

	"harbormaster/internal/app/ds"
	"harbormaster/internal/app/guard"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates docks, haulers and ships if they do not exist. Safe to run
// on every start.
func (r *Repository) Migrate(ctx context.Context) error {
	// docks before ships: ships.dock_id references docks.id
	return r.db.WithContext(ctx).AutoMigrate(&ds.Dock{}, &ds.Hauler{}, &ds.Ship{})
}

type seedShip struct {
	name string
	kind string
	dock int // index into seedDocks
}

var (
	seedDocks = []ds.Dock{
		{Location: "North Harbor", Capacity: 5},
		{Location: "South Harbor", Capacity: 3},
		{Location: "East Harbor", Capacity: 7},
	}
	seedHaulers = []ds.Hauler{
		{Name: "Oceanic Haulers", Capacity: 10},
		{Name: "Maritime Transport", Capacity: 15},
		{Name: "Sea Logistics", Capacity: 8},
	}
	seedShips = []seedShip{
		{"Serenity", "Firefly-class transport ship", 0},
		{"Rocinante", "Corvette-class frigate", 1},
		{"Millennium Falcon", "YT-1300 light freighter", 2},
		{"Black Pearl", "Pirate galleon", 0},
		{"Nautilus", "Submarine vessel", 1},
		{"Flying Dutchman", "Ghost ship", 2},
		{"Enterprise", "Constitution-class starship", 0},
		{"Voyager", "Intrepid-class starship", 1},
		{"Defiant", "Escort-class warship", 2},
		{"Galactica", "Battlestar", 0},
		{"Bebop", "Fishing trawler", 1},
		{"Normandy", "Stealth frigate", 2},
		{"Pillar of Autumn", "Halcyon-class cruiser", 0},
		{"Nostromo", "Commercial towing vessel", 1},
		{"Sulaco", "Military transport", 2},
		{"Highwind", "Airship", 0},
		{"Argo", "Ancient Greek galley", 1},
		{"Nebuchadnezzar", "Hovership", 2},
	}
)

// Seed fills each empty table with sample rows; tables that already hold rows
// are left alone. Seeded ships are berthed only at docks seeded in the same
// run, and ships whose dock is full are seeded unberthed.
func (r *Repository) Seed(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var docks []ds.Dock
		empty, err := tableEmpty(tx, &ds.Dock{})
		if err != nil {
			return err
		}
		if empty {
			docks = make([]ds.Dock, len(seedDocks))
			copy(docks, seedDocks)
			if err := tx.Create(&docks).Error; err != nil {
				return err
			}
		}

		var haulers []ds.Hauler
		empty, err = tableEmpty(tx, &ds.Hauler{})
		if err != nil {
			return err
		}
		if empty {
			haulers = make([]ds.Hauler, len(seedHaulers))
			copy(haulers, seedHaulers)
			if err := tx.Create(&haulers).Error; err != nil {
				return err
			}
		}

		var ships []ds.Ship
		empty, err = tableEmpty(tx, &ds.Ship{})
		if err != nil {
			return err
		}
		if empty {
			ships = seedFleet(docks)
			if err := tx.Omit("Dock").Create(&ships).Error; err != nil {
				return err
			}
		}

		if len(docks)+len(haulers)+len(ships) == 0 {
			logrus.Info("seed skipped: tables are not empty")
			return nil
		}
		logrus.Infof("seeded %d docks, %d haulers, %d ships", len(docks), len(haulers), len(ships))
		return nil
	})
}

func tableEmpty(tx *gorm.DB, model interface{}) (bool, error) {
	var n int64
	if err := tx.Model(model).Count(&n).Error; err != nil {
		return false, err
	}
	return n == 0, nil
}

// seedFleet builds the sample ships. docks is empty when the docks table was
// not seeded in this run; every ship is then unberthed.
func seedFleet(docks []ds.Dock) []ds.Ship {
	occupancy := make([]int, len(docks))
	ships := make([]ds.Ship, 0, len(seedShips))
	for _, s := range seedShips {
		ship := ds.Ship{Name: s.name, Type: s.kind}
		if s.dock < len(docks) {
			dockID := docks[s.dock].ID
			if guard.CanAdmitNewShip(&dockID, occupancy[s.dock], docks[s.dock].Capacity) {
				ship.DockID = &dockID
				occupancy[s.dock]++
			}
		}
		ships = append(ships, ship)
	}
	return ships
}
