package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adso-sena/agenda/internal/contacts"
)

// SeedFile is the YAML layout of a seed file:
//
//	contactos:
//	  - nombre: Camila Pérez
//	    telefono: "300 123 4567"
//	    correo: camila@sena.edu.co
//	    etiqueta: Trabajo
type SeedFile struct {
	Contactos []contacts.Contact `yaml:"contactos"`
}

// LoadSeed reads the contacts listed in a YAML seed file.
func LoadSeed(path string) ([]contacts.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return seed.Contactos, nil
}

// Seed inserts items when the store is empty. It returns how many were inserted.
func Seed(ctx context.Context, s Store, items []contacts.Contact) (int, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i, c := range items {
		if _, err := s.Create(ctx, c); err != nil {
			return i, fmt.Errorf("seed contact %d: %w", i, err)
		}
	}
	return len(items), nil
}
