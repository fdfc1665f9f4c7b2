// Built-in reference rows seeded on first init.
package reference

import (
	"database/sql"
	"fmt"
	"os"
)

type seedMaterial struct {
	name        string
	description string
	ignitionC   string
	flashPointC string
}

type seedInitiator struct {
	name        string
	description string
	category    string
}

var seedMaterials = []seedMaterial{
	{"Dřevěný hranol", "Smrkové stavební dřevo, hraněné", "350", "300"},
	{"Smrkové řezivo", "Prkna a latě, vlhkost do 15 %", "340", "295"},
	{"Papír novinový", "Volně ložený potištěný papír", "185", "150"},
	{"Kabel PVC", "Silový kabel s PVC izolací", "390", "330"},
	{"Benzín automobilový", "Kapalina I. třídy nebezpečnosti", "280", "-20"},
	{"Motorová nafta", "Kapalina III. třídy nebezpečnosti", "250", "56"},
	{"Polystyren pěnový", "Izolační desky EPS", "450", "350"},
	{"Polyuretanová pěna", "Měkčená PUR pěna, čalounění", "415", "310"},
	{"Seno", "Slisované, vlhkost do 20 %", "210", "170"},
	{"Bavlněná tkanina", "Textilie bez úpravy", "255", "210"},
}

var seedInitiators = []seedInitiator{
	{"Nedopalek cigarety", "Doutnající tabákový výrobek", "žhnoucí"},
	{"Svíčka", "Otevřený plamen malého výkonu", "plamen"},
	{"Otevřený plamen", "Zapalovač, hořák, sirka", "plamen"},
	{"Elektrický oblouk", "Zkrat nebo přechodový odpor", "elektrická"},
	{"Jiskra ze svařování", "Úlet žhavých částic při sváření", "žhnoucí"},
	{"Žhavé částice z komína", "Úlet z nedostatečně udržovaného komína", "žhnoucí"},
	{"Blesk", "Atmosférický výboj", "přírodní"},
	{"Samovznícení", "Biologické nebo chemické samozahřívání", "samovolná"},
}

// Seed creates the reference database with the built-in rows. An existing
// database is left untouched so locally extended reference data survives
// re-init.
func Seed(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat reference database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("creating reference database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("creating reference schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range seedMaterials {
		if _, err := tx.Exec(
			"INSERT INTO materials (name, description, ignition_c, flash_point_c) VALUES (?, ?, ?, ?)",
			m.name, m.description, m.ignitionC, m.flashPointC,
		); err != nil {
			return fmt.Errorf("seeding material %q: %w", m.name, err)
		}
	}
	for _, i := range seedInitiators {
		if _, err := tx.Exec(
			"INSERT INTO initiators (name, description, category) VALUES (?, ?, ?)",
			i.name, i.description, i.category,
		); err != nil {
			return fmt.Errorf("seeding initiator %q: %w", i.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
