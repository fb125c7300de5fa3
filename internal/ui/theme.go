// Package ui maps agendas to their presentation metadata. The lookup lives
// here so the domain type carries identity only, no presentation.
package ui

import "github.com/posilife/posilife/internal/model"

var agendaIcons = map[model.Agenda]string{
	model.AgendaStudy:         "book.fill",
	model.AgendaJob:           "briefcase.fill",
	model.AgendaHealth:        "heart.fill",
	model.AgendaMotivation:    "star.fill",
	model.AgendaMindfulness:   "leaf.fill",
	model.AgendaSuccess:       "trophy.fill",
	model.AgendaRelationships: "person.2.fill",
	model.AgendaCreativity:    "paintbrush.fill",
	model.AgendaFitness:       "figure.run",
	model.AgendaGeneral:       "sparkles",
}

var agendaColors = map[model.Agenda]string{
	model.AgendaStudy:         "blue",
	model.AgendaJob:           "purple",
	model.AgendaHealth:        "red",
	model.AgendaMotivation:    "orange",
	model.AgendaMindfulness:   "green",
	model.AgendaSuccess:       "yellow",
	model.AgendaRelationships: "pink",
	model.AgendaCreativity:    "indigo",
	model.AgendaFitness:       "cyan",
	model.AgendaGeneral:       "gray",
}

var agendaThemes = map[model.Agenda][]string{
	model.AgendaStudy:         {"softBlue", "lightBlue", "paleBlue"},
	model.AgendaJob:           {"lavender", "lightLavender", "paleLavender"},
	model.AgendaHealth:        {"rose", "lightRose", "paleRose"},
	model.AgendaMotivation:    {"peach", "lightPeach", "palePeach"},
	model.AgendaMindfulness:   {"sage", "lightSage", "paleSage"},
	model.AgendaSuccess:       {"gold", "lightGold", "paleGold"},
	model.AgendaRelationships: {"blushPink", "lightBlush", "paleBlush"},
	model.AgendaCreativity:    {"lilac", "lightLilac", "paleLilac"},
	model.AgendaFitness:       {"aqua", "lightAqua", "paleAqua"},
	model.AgendaGeneral:       {"softGray", "lightGray", "paleGray"},
}

// AgendaIcon returns the display icon identifier for the agenda.
func AgendaIcon(a model.Agenda) string { return agendaIcons[a] }

// AgendaColor returns the accent color name for the agenda.
func AgendaColor(a model.Agenda) string { return agendaColors[a] }

// AgendaTheme returns the gradient color names for the agenda.
func AgendaTheme(a model.Agenda) []string {
	theme := agendaThemes[a]
	out := make([]string, len(theme))
	copy(out, theme)
	return out
}
