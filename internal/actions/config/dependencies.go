package config

import (
	"fmt"

	"github.com/footprint-tools/verbparse/internal/config"
)

type Deps struct {
	// Path is the config file every command reads and edits.
	Path     string
	Load     func(string) (map[string]string, error)
	Update   func(string, func([]string) []string) error
	Set      func([]string, string, string) ([]string, bool)
	Unset    func([]string, string) ([]string, bool)
	Validate func(map[string]string) error
	IsKnown  func(string) bool
	Keys     []config.Key
	Printf   func(string, ...any) (int, error)
	Println  func(...any) (int, error)
}

func DefaultDeps(path string) Deps {
	return Deps{
		Path:     path,
		Load:     config.Load,
		Update:   config.Update,
		Set:      config.Set,
		Unset:    config.Unset,
		Validate: validate,
		IsKnown:  config.IsKnown,
		Keys:     config.Keys,
		Printf:   fmt.Printf,
		Println:  fmt.Println,
	}
}

func validate(cfg map[string]string) error {
	_, err := config.ToSettings(cfg)
	return err
}
