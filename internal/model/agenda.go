package model

import "strings"

// Agenda is the life-focus area a goal concentrates on.
type Agenda string

const (
	AgendaStudy         Agenda = "Study"
	AgendaJob           Agenda = "Job"
	AgendaHealth        Agenda = "Health"
	AgendaMotivation    Agenda = "Motivation"
	AgendaMindfulness   Agenda = "Mindfulness"
	AgendaSuccess       Agenda = "Success"
	AgendaRelationships Agenda = "Relationships"
	AgendaCreativity    Agenda = "Creativity"
	AgendaFitness       Agenda = "Fitness"
	AgendaGeneral       Agenda = "General"
)

// Agendas is the canonical enumeration order. Tie-breaks and listings
// iterate in this order so results are deterministic.
var Agendas = []Agenda{
	AgendaStudy,
	AgendaJob,
	AgendaHealth,
	AgendaMotivation,
	AgendaMindfulness,
	AgendaSuccess,
	AgendaRelationships,
	AgendaCreativity,
	AgendaFitness,
	AgendaGeneral,
}

func (a Agenda) IsValid() bool {
	for _, known := range Agendas {
		if a == known {
			return true
		}
	}
	return false
}

func (a Agenda) String() string { return string(a) }

// DefaultAgenda is used when user input is missing/invalid.
const DefaultAgenda = AgendaGeneral

// ParseAgenda parses user input to an Agenda, case-insensitively.
// Empty or unrecognized input returns DefaultAgenda.
func ParseAgenda(input string) Agenda {
	s := strings.TrimSpace(input)
	if s == "" {
		return DefaultAgenda
	}
	for _, known := range Agendas {
		if strings.EqualFold(s, string(known)) {
			return known
		}
	}
	return DefaultAgenda
}
