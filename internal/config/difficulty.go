package config

import (
	"fmt"
	"strings"
)

type Difficulty struct {
	Name          string
	Width, Height int
	Mines         int
}

var (
	Easy   = Difficulty{Name: "Easy", Width: 8, Height: 8, Mines: 10}
	Normal = Difficulty{Name: "Normal", Width: 16, Height: 16, Mines: 40}
	Hard   = Difficulty{Name: "Hard", Width: 30, Height: 16, Mines: 99}
)

func Presets() []Difficulty {
	return []Difficulty{Easy, Normal, Hard}
}

func LookupDifficulty(name string) (Difficulty, error) {
	for _, d := range Presets() {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}
